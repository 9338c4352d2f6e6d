package service

import (
	"github.com/google/uuid"

	"github.com/vitormoschetta/go-gemini-chat/internal/model"
)

// Conversation guarda o histórico de uma sessão de chat em memória.
// Só cresce: não há limite nem remoção, e tudo se perde quando o processo termina.
// O histórico inteiro vai em cada requisição, então o payload cresce linearmente.
type Conversation struct {
	ID       string
	messages []model.Message
}

// NewConversation cria uma conversa vazia com um ID novo
func NewConversation() *Conversation {
	return &Conversation{
		ID:       generateConversationID(),
		messages: []model.Message{},
	}
}

// Append adiciona uma mensagem ao final do histórico
func (c *Conversation) Append(role model.Role, text string) {
	c.messages = append(c.messages, model.Message{Role: role, Text: text})
}

// Messages devolve uma cópia do histórico, na ordem de inserção
func (c *Conversation) Messages() []model.Message {
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len retorna quantas mensagens existem no histórico
func (c *Conversation) Len() int {
	return len(c.messages)
}

func generateConversationID() string {
	return uuid.NewString()
}
