package store

import (
	"context"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
)

// CandidateStatus is the render-time relationship between the current
// user and a directory candidate. It is derived by scanning this store,
// never kept as state of its own.
type CandidateStatus int

const (
	StatusNone CandidateStatus = iota
	StatusRequestSent
	StatusBandmate
)

// Connections holds the three connection collections: accepted bandmates,
// incoming pending requests, and outgoing sent requests.
type Connections struct {
	client api.Client

	bandmates []models.Connection
	pending   []models.Connection
	sent      []models.Connection
}

func NewConnections(client api.Client) *Connections {
	return &Connections{client: client}
}

// SendRequest proposes a connection and appends the created record to the
// sent list.
func (c *Connections) SendRequest(ctx context.Context, recipientID string) error {
	conn, err := c.client.SendConnectionRequest(ctx, recipientID)
	if err != nil {
		return err
	}
	c.sent = append(c.sent, *conn)
	return nil
}

// Respond resolves an incoming request. An accepted connection joins the
// bandmates list; either way the request leaves the pending list. Callers
// should re-fetch the affected lists afterwards to pick up server-side
// effects, there is no atomic merge.
func (c *Connections) Respond(ctx context.Context, id string, status models.ConnectionStatus) error {
	conn, err := c.client.RespondToRequest(ctx, id, status)
	if err != nil {
		return err
	}

	if conn.Status == models.ConnectionAccepted {
		c.bandmates = append(c.bandmates, *conn)
	}

	kept := c.pending[:0]
	for _, p := range c.pending {
		if p.ID != conn.ID {
			kept = append(kept, p)
		}
	}
	c.pending = kept
	return nil
}

// FetchBandmates replaces the accepted list wholesale.
func (c *Connections) FetchBandmates(ctx context.Context) error {
	conns, err := c.client.Bandmates(ctx)
	if err != nil {
		return err
	}
	c.bandmates = conns
	return nil
}

// FetchPending replaces the incoming request list wholesale.
func (c *Connections) FetchPending(ctx context.Context) error {
	conns, err := c.client.PendingRequests(ctx)
	if err != nil {
		return err
	}
	c.pending = conns
	return nil
}

// FetchSent replaces the outgoing request list wholesale.
func (c *Connections) FetchSent(ctx context.Context) error {
	conns, err := c.client.SentRequests(ctx)
	if err != nil {
		return err
	}
	c.sent = conns
	return nil
}

func (c *Connections) Bandmates() []models.Connection { return c.bandmates }
func (c *Connections) Pending() []models.Connection   { return c.pending }
func (c *Connections) Sent() []models.Connection      { return c.sent }

// StatusFor derives the relationship with a candidate: bandmate when an
// accepted connection involves them, request-sent when an outgoing
// request targets them, none otherwise.
func (c *Connections) StatusFor(candidateID string) CandidateStatus {
	for _, conn := range c.bandmates {
		if conn.Involves(candidateID) {
			return StatusBandmate
		}
	}
	for _, conn := range c.sent {
		if conn.Recipient.ID == candidateID {
			return StatusRequestSent
		}
	}
	return StatusNone
}
