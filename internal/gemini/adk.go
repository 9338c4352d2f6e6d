package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	adkmodel "google.golang.org/adk/model"
	adkgemini "google.golang.org/adk/model/gemini"
	"google.golang.org/genai"

	"github.com/vitormoschetta/go-gemini-chat/internal/config"
)

// ADKClient envia o histórico pelo modelo Gemini do ADK e converte o
// resultado de volta para o corpo JSON do generateContent, para que o chat
// trate as duas implementações da mesma forma.
type ADKClient struct {
	llm       adkmodel.LLM
	modelName string
	logger    *log.Logger
}

// NewADKClient cria o modelo do ADK usando o mesmo cliente HTTP (CA bundle e timeout) do REST.
func NewADKClient(ctx context.Context, cfg *config.Config, logger *log.Logger) (*ADKClient, error) {
	httpClient, err := NewHTTPClient(cfg.CABundlePath, cfg.Timeout())
	if err != nil {
		return nil, err
	}

	llm, err := adkgemini.NewModel(ctx, cfg.Model, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: "v1beta",
		},
	})
	if err != nil {
		return nil, &InitError{Op: "create ADK model", Err: err}
	}

	return newADKClient(llm, cfg.Model, logger), nil
}

func newADKClient(llm adkmodel.LLM, modelName string, logger *log.Logger) *ADKClient {
	return &ADKClient{
		llm:       llm,
		modelName: modelName,
		logger:    orDiscard(logger),
	}
}

// Send recebe o mesmo payload do RESTClient.
// Erros da API viram um corpo {"error": ...}; os demais são de transporte.
func (c *ADKClient) Send(ctx context.Context, payload []byte) ([]byte, error) {
	var req struct {
		Contents []*genai.Content `json:"contents"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	llmRequest := adkmodel.LLMRequest{
		Model:    c.modelName,
		Contents: req.Contents,
		Config:   &genai.GenerateContentConfig{},
	}

	c.logger.Printf("ADK request: model=%s contents=%d", c.modelName, len(req.Contents))

	var lastResponse *adkmodel.LLMResponse
	for response, err := range c.llm.GenerateContent(ctx, &llmRequest, false) {
		if err != nil {
			var apiErr genai.APIError
			if errors.As(err, &apiErr) {
				c.logger.Printf("ADK API error: code=%d status=%s", apiErr.Code, apiErr.Status)
				return encodeAPIError(apiErr)
			}
			return nil, err
		}
		if response != nil {
			lastResponse = response
		}
	}

	return encodeResponse(lastResponse)
}

func encodeAPIError(apiErr genai.APIError) ([]byte, error) {
	return json.Marshal(map[string]any{"error": apiErr})
}

// encodeResponse reproduz o formato {"candidates":[{"content":...}]}.
// Sem conteúdo, devolve candidates vazio.
func encodeResponse(resp *adkmodel.LLMResponse) ([]byte, error) {
	candidates := []map[string]any{}
	if resp != nil && resp.Content != nil {
		candidates = append(candidates, map[string]any{"content": resp.Content})
	}
	return json.Marshal(map[string]any{"candidates": candidates})
}
