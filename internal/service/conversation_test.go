package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitormoschetta/go-gemini-chat/internal/model"
)

func TestNewConversation(t *testing.T) {
	c := NewConversation()

	_, err := uuid.Parse(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Messages())
	assert.NotEqual(t, c.ID, NewConversation().ID)
}

func TestConversation_AppendKeepsOrder(t *testing.T) {
	c := NewConversation()
	c.Append(model.RoleUser, "one")
	c.Append(model.RoleModel, "two")
	c.Append(model.RoleUser, "three")

	assert.Equal(t, []model.Message{
		{Role: model.RoleUser, Text: "one"},
		{Role: model.RoleModel, Text: "two"},
		{Role: model.RoleUser, Text: "three"},
	}, c.Messages())
}

func TestConversation_MessagesIsACopy(t *testing.T) {
	c := NewConversation()
	c.Append(model.RoleUser, "original")

	msgs := c.Messages()
	msgs[0].Text = "changed"

	assert.Equal(t, "original", c.Messages()[0].Text)
}
