package models

import "time"

// Comment is a single comment embedded in a post.
type Comment struct {
	ID        string    `json:"_id"`
	Author    User      `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a feed entry. Content and Image are individually optional but
// the server rejects posts carrying neither. Likes holds liker ids as
// returned by the feed endpoint; after a like operation the server only
// reports a count, so the slice may be re-materialized as placeholders of
// the right length.
type Post struct {
	ID        string    `json:"_id"`
	Author    User      `json:"author"`
	Content   string    `json:"content,omitempty"`
	Image     string    `json:"image,omitempty"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedBy reports whether the given user id is present in the likes
// collection. Placeholder entries never match.
func (p *Post) LikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
