package store

import (
	"context"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
)

// Messages holds the history of the single active conversation. Switching
// peers re-fetches and replaces; conversations are never merged
// client-side.
type Messages struct {
	client api.Client

	peerID   string
	messages []models.Message
}

func NewMessages(client api.Client) *Messages {
	return &Messages{client: client}
}

// Fetch replaces the history with the full conversation with peerID.
// There is no pagination.
func (m *Messages) Fetch(ctx context.Context, peerID string) error {
	msgs, err := m.client.Messages(ctx, peerID)
	if err != nil {
		return err
	}
	m.peerID = peerID
	m.messages = msgs
	return nil
}

// Send posts a message and appends the server's echo. The append waits
// for confirmation; nothing is shown that the server has not stored.
func (m *Messages) Send(ctx context.Context, peerID, text string) error {
	msg, err := m.client.SendMessage(ctx, peerID, text)
	if err != nil {
		return err
	}
	m.messages = append(m.messages, *msg)
	return nil
}

// Clear drops the conversation, e.g. when leaving the chat screen.
func (m *Messages) Clear() {
	m.peerID = ""
	m.messages = nil
}

func (m *Messages) PeerID() string        { return m.peerID }
func (m *Messages) All() []models.Message { return m.messages }
