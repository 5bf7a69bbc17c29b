package session

import (
	"time"

	"github.com/dmitrijs2005/bandmate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// timeNow is a test seam for expiry checks.
var timeNow = time.Now

// CheckToken screens a persisted bearer token before it gets attached to
// requests again. The signature is not (and cannot be) verified here; the
// server does that on every call. We only parse the claims to drop tokens
// that are already expired instead of replaying them.
func CheckToken(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return common.ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return common.ErrInvalidToken
	}
	// a token without exp is taken at face value
	if exp == nil {
		return nil
	}
	if exp.Before(timeNow()) {
		return common.ErrTokenExpired
	}
	return nil
}

// Subject extracts the user id (sub claim) from a token without verifying
// it. Returns "" when absent.
func Subject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
