package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitormoschetta/go-gemini-chat/internal/model"
	"github.com/vitormoschetta/go-gemini-chat/internal/server"
)

// Palavras-chave que forçam cada tipo de falha no mock
const (
	TriggerError = "#error"
	TriggerHTML  = "#html"
	TriggerEmpty = "#empty"
)

// Handler contém as dependências necessárias para os handlers HTTP
type Handler struct {
	server *server.Server
}

// NewHandler cria uma nova instância do Handler
func NewHandler(srv *server.Server) *Handler {
	return &Handler{
		server: srv,
	}
}

// HandleRoot retorna informações sobre o serviço
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"service": "Gemini API mock",
		"addr":    h.server.Addr,
		"endpoints": map[string]interface{}{
			"generate": map[string]interface{}{
				"url":         "/v1beta/models/{model}:generateContent?key=<any>",
				"method":      "POST",
				"description": "Echoes the last user message",
				"triggers":    []string{TriggerError, TriggerHTML, TriggerEmpty},
			},
			"health": map[string]interface{}{
				"url":    "/health",
				"method": "GET",
			},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// HandleHealth retorna o status de saúde do servidor
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleGenerate imita o generateContent: ecoa a última mensagem do usuário
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	modelName, action, ok := strings.Cut(chi.URLParam(r, "modelAction"), ":")
	if !ok || action != "generateContent" || modelName == "" {
		writeAPIError(w, http.StatusNotFound, "NOT_FOUND", "Method not found.")
		return
	}

	if apiKey(r) == "" {
		writeAPIError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "API key not valid. Please pass a valid API key.")
		return
	}

	var req model.GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		writeAPIError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid JSON payload received.")
		return
	}
	defer r.Body.Close()

	if len(req.Contents) == 0 {
		writeAPIError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "* GenerateContentRequest.contents: contents is not specified")
		return
	}

	last := lastUserText(req.Contents)
	log.Printf("Generate %s: %d contents, last user message: %q", modelName, len(req.Contents), last)

	switch {
	case strings.Contains(last, TriggerError):
		writeAPIError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Mock error requested")
	case strings.Contains(last, TriggerHTML):
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html><body><h1>502 Bad Gateway</h1></body></html>"))
	case strings.Contains(last, TriggerEmpty):
		writeJSON(w, http.StatusOK, model.GenerateContentResponse{Candidates: []model.Candidate{}})
	default:
		reply := fmt.Sprintf("Echo (%d messages): %s", len(req.Contents), last)
		writeJSON(w, http.StatusOK, model.GenerateContentResponse{
			Candidates: []model.Candidate{{
				Content: model.Content{
					Role:  model.RoleModel,
					Parts: []model.Part{{Text: reply}},
				},
				FinishReason: "STOP",
			}},
			ModelVersion: modelName,
			ResponseID:   uuid.NewString(),
		})
	}
}

// a API aceita a key na query ou no header (o SDK usa o header)
func apiKey(r *http.Request) string {
	if key := r.URL.Query().Get("key"); key != "" {
		return key
	}
	return r.Header.Get("x-goog-api-key")
}

func lastUserText(contents []model.Content) string {
	for i := len(contents) - 1; i >= 0; i-- {
		c := contents[i]
		if c.Role != model.RoleUser || len(c.Parts) == 0 {
			continue
		}
		return c.Parts[0].Text
	}
	return ""
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, model.ErrorResponse{
		Error: model.APIErrorBody{
			Code:    status,
			Message: message,
			Status:  code,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
