package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/store"
)

// Discover shows the unfiltered musician directory with the relationship
// status for each candidate.
func (a *App) Discover(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.directory.List(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	// sent requests feed the per-candidate status column
	if err := a.connections.FetchSent(ctx); err != nil {
		log.Println(err.Error())
	}
	if err := a.connections.FetchBandmates(ctx); err != nil {
		log.Println(err.Error())
	}
	a.renderDirectory()
	return nil
}

// Search narrows the directory server-side by city, instrument and/or
// genre. Leaving every filter empty behaves like a plain listing.
func (a *App) Search(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	city, err := getSimpleText(a.reader, "City (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	instrument, err := getSimpleText(a.reader, "Instrument (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	genre, err := getSimpleText(a.reader, "Genre (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	filters := api.SearchFilters{City: city, Instrument: instrument, Genre: genre}
	if err := a.directory.Search(ctx, filters); err != nil {
		log.Println(err.Error())
		return err
	}
	a.renderDirectory()
	return nil
}

// ClearFilters returns to the unfiltered listing.
func (a *App) ClearFilters(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.directory.List(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	a.renderDirectory()
	return nil
}

func (a *App) renderDirectory() {
	users := a.directory.Users()
	if len(users) == 0 {
		fmt.Println("No musicians found.")
		return
	}

	selfID := a.session.UserID()
	for i, u := range users {
		if u.ID == selfID {
			continue
		}
		status := ""
		switch a.connections.StatusFor(u.ID) {
		case store.StatusBandmate:
			status = " [bandmate]"
		case store.StatusRequestSent:
			status = " [request sent]"
		}
		fmt.Printf("[%d] %s (%s)%s\n", i+1, u.Name, u.City, status)
		if len(u.Instruments) > 0 {
			fmt.Println("    plays: " + strings.Join(u.Instruments, ", "))
		}
		if len(u.Genres) > 0 {
			fmt.Println("    into: " + strings.Join(u.Genres, ", "))
		}
	}
}

// Connect sends a connection request to a musician from the last listed
// directory snapshot.
func (a *App) Connect(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	users := a.directory.Users()
	if len(users) == 0 {
		fmt.Println("Find someone first ('discover' or 'search').")
		return nil
	}

	i, err := GetIndex(a.reader, "Connect with which musician?", len(users), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.connections.SendRequest(ctx, users[i].ID); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Request sent to %s.\n", users[i].Name)
	return nil
}
