package store

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
	"github.com/dmitrijs2005/bandmate/internal/client/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestSession_LoginStoresTokenAndAccount(t *testing.T) {
	client := &fakeClient{
		LoginResp: &api.AuthResponse{
			Token: "t1",
			User:  models.Account{ID: "u1", Name: "A"},
		},
	}
	repo := newFakeRepo()
	s := NewSession(client, repo)

	err := s.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", client.LastLoginUser)
	assert.Equal(t, "t1", s.Token())
	require.NotNil(t, s.Account())
	assert.Equal(t, "u1", s.Account().ID)
	assert.Equal(t, "A", s.Account().Name)
	assert.True(t, s.LoggedIn())

	// the api client is armed so protected requests attach the token
	assert.Equal(t, "t1", client.Token)
	// and the token survives restarts
	assert.Equal(t, []byte("t1"), repo.data[session.KeyToken])
}

func TestSession_LoginFailureLeavesSessionEmpty(t *testing.T) {
	client := &fakeClient{LoginErr: &api.APIError{Status: 401, Message: "Invalid credentials"}}
	s := NewSession(client, newFakeRepo())

	err := s.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid credentials")
	assert.False(t, s.LoggedIn())
	assert.Nil(t, s.Account())
}

func TestSession_RegisterEstablishesSession(t *testing.T) {
	client := &fakeClient{
		RegisterResp: &api.AuthResponse{
			Token: "t2",
			User:  models.Account{ID: "u2", Name: "B"},
		},
	}
	repo := newFakeRepo()
	s := NewSession(client, repo)

	req := api.RegisterRequest{
		Name:        "B",
		Email:       "b@c.com",
		Password:    "pw",
		Instruments: []string{"drums"},
		Genres:      []string{"jazz"},
	}
	require.NoError(t, s.Register(context.Background(), req))

	assert.Equal(t, req, client.LastRegister)
	assert.True(t, s.LoggedIn())
	assert.Equal(t, []byte("t2"), repo.data[session.KeyToken])
}

func TestSession_LogoutClearsEverything(t *testing.T) {
	client := &fakeClient{
		LoginResp: &api.AuthResponse{Token: "t1", User: models.Account{ID: "u1"}},
	}
	repo := newFakeRepo()
	s := NewSession(client, repo)
	require.NoError(t, s.Login(context.Background(), "a@b.com", "x"))

	require.NoError(t, s.Logout(context.Background()))

	assert.False(t, s.LoggedIn())
	assert.Nil(t, s.Account())
	assert.Empty(t, s.Token())
	assert.Empty(t, client.Token)
	assert.NotContains(t, repo.data, session.KeyToken)
}

func TestSession_RestoreValidToken(t *testing.T) {
	token := signedToken(t, "u1", time.Now().Add(time.Hour))
	client := &fakeClient{}
	repo := newFakeRepo()
	repo.data[session.KeyToken] = []byte(token)

	s := NewSession(client, repo)
	require.NoError(t, s.Restore(context.Background()))

	assert.True(t, s.LoggedIn())
	assert.Equal(t, token, client.Token)
	// the account is unknown until a profile fetch, but the id is
	// recoverable from the token
	assert.Nil(t, s.Account())
	assert.Equal(t, "u1", s.UserID())
}

func TestSession_RestoreExpiredTokenDiscards(t *testing.T) {
	token := signedToken(t, "u1", time.Now().Add(-time.Hour))
	repo := newFakeRepo()
	repo.data[session.KeyToken] = []byte(token)

	s := NewSession(&fakeClient{}, repo)
	require.NoError(t, s.Restore(context.Background()))

	assert.False(t, s.LoggedIn())
	assert.NotContains(t, repo.data, session.KeyToken)
}

func TestSession_RestoreNoToken(t *testing.T) {
	s := NewSession(&fakeClient{}, newFakeRepo())
	require.NoError(t, s.Restore(context.Background()))
	assert.False(t, s.LoggedIn())
}
