package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/bandmate/internal/client/models"
)

// Chat opens a conversation with one bandmate: full history first, then a
// line-per-message loop. An empty line leaves the conversation. Each sent
// message is appended only after the server confirms it.
func (a *App) Chat(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	if err := a.connections.FetchBandmates(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	mates := a.connections.Bandmates()
	if len(mates) == 0 {
		fmt.Println("No bandmates to chat with yet.")
		return nil
	}

	selfID := a.session.UserID()
	for i, conn := range mates {
		fmt.Printf("[%d] %s\n", i+1, conn.Other(selfID).Name)
	}

	i, err := GetIndex(a.reader, "Chat with whom?", len(mates), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	peer := mates[i].Other(selfID)

	// switching peers always re-fetches; conversations are never merged
	if err := a.messages.Fetch(ctx, peer.ID); err != nil {
		log.Println(err.Error())
		return err
	}
	a.renderConversation(peer, selfID)

	for {
		line, err := getSimpleText(a.reader, "Message (empty line to leave)", os.Stdout)
		if err != nil {
			return err
		}
		if line == "" {
			a.messages.Clear()
			return nil
		}
		if err := a.messages.Send(ctx, peer.ID, line); err != nil {
			log.Println(err.Error())
			continue
		}
	}
}

func (a *App) renderConversation(peer models.User, selfID string) {
	fmt.Printf("--- chat with %s ---\n", peer.Name)
	for _, m := range a.messages.All() {
		who := peer.Name
		if m.Sender.ID == selfID {
			who = "you"
		}
		fmt.Printf("%s %s: %s\n", m.CreatedAt.Local().Format("15:04"), who, m.Content)
	}
}
