package model

// Tipos usados pelo servidor mock para responder no formato da API Gemini.

// Candidate é uma resposta candidata do modelo
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
	Index        int     `json:"index"`
}

// GenerateContentResponse é o corpo de sucesso do generateContent
type GenerateContentResponse struct {
	Candidates   []Candidate `json:"candidates"`
	ModelVersion string      `json:"modelVersion,omitempty"`
	ResponseID   string      `json:"responseId,omitempty"`
}

// APIErrorBody é o objeto retornado em "error"
type APIErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ErrorResponse é o corpo de erro da API
type ErrorResponse struct {
	Error APIErrorBody `json:"error"`
}
