// Package api implements the client side of the Bandmate REST API. Each
// method performs exactly one HTTP round trip; there are no retries,
// caching or request coalescing. The server owns all business logic.
package api

import (
	"context"

	"github.com/dmitrijs2005/bandmate/internal/client/models"
)

// RegisterRequest is the payload for account creation. Instruments and
// genres arrive already parsed from comma-separated form input.
type RegisterRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	City        string   `json:"city"`
	Instruments []string `json:"instruments"`
	Genres      []string `json:"genres"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token string         `json:"token"`
	User  models.Account `json:"user"`
}

// SearchFilters narrows the user directory server-side. Zero-value fields
// are omitted from the query; an empty filter set behaves like a plain
// listing.
type SearchFilters struct {
	City       string
	Instrument string
	Genre      string
}

// Empty reports whether no filter is set.
func (f SearchFilters) Empty() bool {
	return f.City == "" && f.Instrument == "" && f.Genre == ""
}

// ProfileResponse bundles a profile page: the user plus their posts and
// the two counters shown on the screen.
type ProfileResponse struct {
	User           models.User   `json:"user"`
	Posts          []models.Post `json:"posts"`
	PostsCount     int           `json:"postsCount"`
	BandmatesCount int           `json:"bandmatesCount"`
}

// ProfileUpdate is the payload for profile edits. The server replies with
// the full updated user.
type ProfileUpdate struct {
	Name           string   `json:"name"`
	Bio            string   `json:"bio"`
	City           string   `json:"city"`
	Instruments    []string `json:"instruments"`
	Genres         []string `json:"genres"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
}

// Client is the full surface of the Bandmate API as consumed by the
// stores. Implementations attach the bearer token set via SetToken to
// every request that requires it.
type Client interface {
	Close() error

	// SetToken arms (or with "" disarms) the bearer token attached to
	// authenticated requests.
	SetToken(token string)

	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, filters SearchFilters) ([]models.User, error)
	UsersByCity(ctx context.Context, city string) ([]models.User, error)

	SendConnectionRequest(ctx context.Context, recipientID string) (*models.Connection, error)
	RespondToRequest(ctx context.Context, id string, status models.ConnectionStatus) (*models.Connection, error)
	Bandmates(ctx context.Context) ([]models.Connection, error)
	PendingRequests(ctx context.Context) ([]models.Connection, error)
	SentRequests(ctx context.Context) ([]models.Connection, error)

	Messages(ctx context.Context, peerID string) ([]models.Message, error)
	SendMessage(ctx context.Context, peerID, content string) (*models.Message, error)

	Feed(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, content, image string) (*models.Post, error)
	LikePost(ctx context.Context, postID string) (int, error)
	AddComment(ctx context.Context, postID, text string) (*models.Comment, error)
	EditPost(ctx context.Context, postID, content, image string) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) error

	Profile(ctx context.Context, userID string) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error)
}
