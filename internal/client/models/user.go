// Package models defines the wire entities mirrored from the Bandmate API.
// Every collection held client-side is a re-fetchable snapshot of server
// state; nothing here is derived from anything else.
package models

import "strings"

// Account is the authenticated identity returned by the auth endpoints.
// Note the server serializes its id as "id" here, unlike directory
// entities which carry a Mongo-style "_id".
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// User is a musician profile as listed by the directory and profile
// endpoints.
type User struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	City           string   `json:"city"`
	Bio            string   `json:"bio,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Instruments    []string `json:"instruments"`
	Genres         []string `json:"genres"`
}

// SplitList parses comma-separated form input ("guitar, bass") into a
// trimmed list with empty items dropped. Instruments and genres are
// entered this way on the register and profile screens.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
