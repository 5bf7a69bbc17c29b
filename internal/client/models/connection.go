package models

// ConnectionStatus is the lifecycle state of a connection request.
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

// Connection is a directed request from Requester to Recipient. Accepted
// connections are what both parties see as bandmates.
type Connection struct {
	ID        string           `json:"_id"`
	Requester User             `json:"requester"`
	Recipient User             `json:"recipient"`
	Status    ConnectionStatus `json:"status"`
}

// Other returns the party that is not selfID. This is display convenience
// only; the server remains the source of truth for both sides.
func (c *Connection) Other(selfID string) User {
	if c.Requester.ID == selfID {
		return c.Recipient
	}
	return c.Requester
}

// Involves reports whether the given user is either party of the
// connection.
func (c *Connection) Involves(userID string) bool {
	return c.Requester.ID == userID || c.Recipient.ID == userID
}
