package model

// Role identifica o autor de uma mensagem na conversa
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message é um turno da conversa. Não deve ser alterada depois de criada.
type Message struct {
	Role Role
	Text string
}

// Part é um trecho de texto dentro de um Content
type Part struct {
	Text string `json:"text"`
}

// Content representa uma mensagem no formato do generateContent
type Content struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// GenerateContentRequest é o corpo enviado ao endpoint generateContent
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

// NewRequest monta o payload a partir do histórico completo, na ordem.
func NewRequest(messages []Message) GenerateContentRequest {
	contents := make([]Content, 0, len(messages))
	for _, m := range messages {
		contents = append(contents, Content{
			Role:  m.Role,
			Parts: []Part{{Text: m.Text}},
		})
	}
	return GenerateContentRequest{Contents: contents}
}
