// Package store holds the client-side state: one store per domain, each a
// point-in-time snapshot of server collections plus the operations that
// refresh it. Stores are created at application startup, share the API
// client, and are confined to the command loop goroutine; they are not
// safe for concurrent use.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
	"github.com/dmitrijs2005/bandmate/internal/client/session"
	"github.com/dmitrijs2005/bandmate/internal/common"
)

// Session holds the current identity and bearer token. The token is the
// only piece of state that survives restarts; it is persisted on
// login/register and removed on logout.
type Session struct {
	client api.Client
	repo   session.Repository

	token   string
	account *models.Account
}

func NewSession(client api.Client, repo session.Repository) *Session {
	return &Session{client: client, repo: repo}
}

// Register creates an account and, like Login, leaves the session armed
// with the returned token.
func (s *Session) Register(ctx context.Context, req api.RegisterRequest) error {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

// Login authenticates and arms the session.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

func (s *Session) establish(ctx context.Context, resp *api.AuthResponse) error {
	s.token = resp.Token
	s.account = &resp.User
	s.client.SetToken(resp.Token)

	if err := s.repo.Set(ctx, session.KeyToken, []byte(resp.Token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	return nil
}

// Logout clears the in-memory identity and the persisted token.
func (s *Session) Logout(ctx context.Context) error {
	s.token = ""
	s.account = nil
	s.client.SetToken("")
	return s.repo.Delete(ctx, session.KeyToken)
}

// Restore loads a previously persisted token at startup. Expired or
// malformed tokens are discarded along with their persisted copy; the
// session then simply starts logged out. The account stays unknown until
// a profile fetch, since only the token is persisted.
func (s *Session) Restore(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, session.KeyToken)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	token := string(raw)
	if err := session.CheckToken(token); err != nil {
		if errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrInvalidToken) {
			return s.repo.Delete(ctx, session.KeyToken)
		}
		return err
	}

	s.token = token
	s.client.SetToken(token)
	return nil
}

// LoggedIn reports whether a token is present. Every authenticated screen
// checks this before dispatching.
func (s *Session) LoggedIn() bool {
	return s.token != ""
}

func (s *Session) Token() string { return s.token }

// Account returns the authenticated identity, or nil for a restored
// session that has not fetched its profile yet.
func (s *Session) Account() *models.Account { return s.account }

// SetAccount fills in the identity for a restored session once the own
// profile has been fetched.
func (s *Session) SetAccount(a *models.Account) { s.account = a }

// UserID is the current user's id: from the account when known, otherwise
// from the token's subject claim.
func (s *Session) UserID() string {
	if s.account != nil {
		return s.account.ID
	}
	if s.token != "" {
		return session.Subject(s.token)
	}
	return ""
}
