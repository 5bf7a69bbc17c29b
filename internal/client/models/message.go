package models

import "time"

// Message is one direct message in a two-party conversation. Messages are
// immutable once created and ordered by creation time.
type Message struct {
	ID        string    `json:"_id"`
	Sender    User      `json:"sender"`
	Receiver  User      `json:"receiver"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
