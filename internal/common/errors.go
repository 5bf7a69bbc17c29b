// Package common contains shared constants and sentinel errors used across
// the Bandmate client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNotFound is returned when a referenced entity is absent
	// from the local snapshot.
	ErrNotFound = errors.New("not found")

	// ErrNotLoggedIn guards operations that require a session token.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrEmptyPost rejects posts with neither content nor image.
	ErrEmptyPost = errors.New("post needs content or an image")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)
