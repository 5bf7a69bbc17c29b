package store

import (
	"context"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
)

// Profile holds the currently viewed profile: own or another user's.
type Profile struct {
	client api.Client

	user           *models.User
	posts          []models.Post
	postsCount     int
	bandmatesCount int
}

func NewProfile(client api.Client) *Profile {
	return &Profile{client: client}
}

// Fetch replaces the viewed profile wholesale. An empty userID means
// "self".
func (p *Profile) Fetch(ctx context.Context, userID string) error {
	resp, err := p.client.Profile(ctx, userID)
	if err != nil {
		return err
	}
	p.user = &resp.User
	p.posts = resp.Posts
	p.postsCount = resp.PostsCount
	p.bandmatesCount = resp.BandmatesCount
	return nil
}

// Update edits the own profile and replaces the viewed user with the
// server's response.
func (p *Profile) Update(ctx context.Context, update api.ProfileUpdate) error {
	user, err := p.client.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}
	p.user = user
	return nil
}

func (p *Profile) User() *models.User   { return p.user }
func (p *Profile) Posts() []models.Post { return p.posts }
func (p *Profile) PostsCount() int      { return p.postsCount }
func (p *Profile) BandmatesCount() int  { return p.bandmatesCount }
