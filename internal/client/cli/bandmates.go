package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/bandmate/internal/client/models"
)

// Bandmates renders the bandmates screen: accepted connections plus
// incoming pending requests.
func (a *App) Bandmates(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.connections.FetchBandmates(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	if err := a.connections.FetchPending(ctx); err != nil {
		log.Println(err.Error())
		return err
	}

	pending := a.connections.Pending()
	if len(pending) > 0 {
		fmt.Println("Pending requests:")
		for i, req := range pending {
			fmt.Printf("[%d] %s (%s) <%s>\n", i+1, req.Requester.Name, req.Requester.City, req.Requester.Email)
		}
	}

	mates := a.connections.Bandmates()
	if len(mates) == 0 {
		fmt.Println("No bandmates yet. Go find some ('discover').")
		return nil
	}

	selfID := a.session.UserID()
	fmt.Println("Bandmates:")
	for i, conn := range mates {
		other := conn.Other(selfID)
		fmt.Printf("[%d] %s (%s)\n", i+1, other.Name, other.City)
	}
	return nil
}

// SentRequests lists outgoing requests still awaiting an answer.
func (a *App) SentRequests(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.connections.FetchSent(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	sent := a.connections.Sent()
	if len(sent) == 0 {
		fmt.Println("No outgoing requests.")
		return nil
	}
	for i, req := range sent {
		fmt.Printf("[%d] %s (%s)\n", i+1, req.Recipient.Name, req.Status)
	}
	return nil
}

// Accept resolves a pending request positively and re-fetches both lists
// afterwards; the server may have side effects a single response payload
// does not carry.
func (a *App) Accept(ctx context.Context) error {
	return a.respond(ctx, models.ConnectionAccepted)
}

// Reject declines a pending request.
func (a *App) Reject(ctx context.Context) error {
	return a.respond(ctx, models.ConnectionRejected)
}

func (a *App) respond(ctx context.Context, status models.ConnectionStatus) error {
	if !a.requireLogin() {
		return nil
	}
	pending := a.connections.Pending()
	if len(pending) == 0 {
		fmt.Println("No pending requests ('bandmates' refreshes the list).")
		return nil
	}

	i, err := GetIndex(a.reader, fmt.Sprintf("Which request to mark %s?", status), len(pending), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.connections.Respond(ctx, pending[i].ID, status); err != nil {
		log.Println(err.Error())
		return err
	}

	// keep counts consistent after the mutation
	if err := a.connections.FetchPending(ctx); err != nil {
		log.Println(err.Error())
	}
	if status == models.ConnectionAccepted {
		if err := a.connections.FetchBandmates(ctx); err != nil {
			log.Println(err.Error())
		}
	}

	fmt.Printf("Request %s.\n", status)
	return nil
}
