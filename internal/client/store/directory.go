package store

import (
	"context"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
)

// Directory holds the list of discoverable musicians. Every operation
// replaces the list wholesale with the server's result; filtering and
// ranking happen server-side.
type Directory struct {
	client api.Client
	users  []models.User
}

func NewDirectory(client api.Client) *Directory {
	return &Directory{client: client}
}

// List replaces the snapshot with the unfiltered directory.
func (d *Directory) List(ctx context.Context) error {
	users, err := d.client.ListUsers(ctx)
	if err != nil {
		return err
	}
	d.users = users
	return nil
}

// Search replaces the snapshot with a server-side filtered result. An
// empty filter set behaves exactly like List.
func (d *Directory) Search(ctx context.Context, filters api.SearchFilters) error {
	if filters.Empty() {
		return d.List(ctx)
	}
	users, err := d.client.SearchUsers(ctx, filters)
	if err != nil {
		return err
	}
	d.users = users
	return nil
}

// ByCity replaces the snapshot with musicians from one city.
func (d *Directory) ByCity(ctx context.Context, city string) error {
	users, err := d.client.UsersByCity(ctx, city)
	if err != nil {
		return err
	}
	d.users = users
	return nil
}

// Clear drops the snapshot.
func (d *Directory) Clear() {
	d.users = nil
}

func (d *Directory) Users() []models.User { return d.users }

// Find returns the user with the given id from the current snapshot.
func (d *Directory) Find(id string) (models.User, bool) {
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
