package store

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
	"github.com/dmitrijs2005/bandmate/internal/common"
)

// Posts holds the feed in the order the server returned it
// (reverse-chronological).
type Posts struct {
	client api.Client
	posts  []models.Post
}

func NewPosts(client api.Client) *Posts {
	return &Posts{client: client}
}

// FetchFeed replaces the feed wholesale.
func (p *Posts) FetchFeed(ctx context.Context) error {
	posts, err := p.client.Feed(ctx)
	if err != nil {
		return err
	}
	p.posts = posts
	return nil
}

// Create publishes a post and prepends the result. At least one of
// content and image must be present; an empty post is rejected locally
// and never dispatched.
func (p *Posts) Create(ctx context.Context, content, image string) error {
	content = strings.TrimSpace(content)
	if content == "" && image == "" {
		return common.ErrEmptyPost
	}

	post, err := p.client.CreatePost(ctx, content, image)
	if err != nil {
		return err
	}
	p.posts = append([]models.Post{*post}, p.posts...)
	return nil
}

// Like records a like. The server only reports the resulting count, so
// the likes collection is re-materialized as a placeholder slice of that
// length; individual likers are not tracked past the last feed fetch.
func (p *Posts) Like(ctx context.Context, postID string) error {
	count, err := p.client.LikePost(ctx, postID)
	if err != nil {
		return err
	}

	post := p.find(postID)
	if post == nil {
		return common.ErrNotFound
	}
	post.Likes = make([]string, count)
	return nil
}

// AddComment appends the server-created comment to the matching post.
func (p *Posts) AddComment(ctx context.Context, postID, text string) error {
	comment, err := p.client.AddComment(ctx, postID, text)
	if err != nil {
		return err
	}

	post := p.find(postID)
	if post == nil {
		return common.ErrNotFound
	}
	post.Comments = append(post.Comments, *comment)
	return nil
}

// Edit replaces the matching post wholesale with the server's updated
// representation. Only the author may edit; the server enforces that.
func (p *Posts) Edit(ctx context.Context, postID, content, image string) error {
	updated, err := p.client.EditPost(ctx, postID, content, image)
	if err != nil {
		return err
	}

	for i := range p.posts {
		if p.posts[i].ID == updated.ID {
			p.posts[i] = *updated
			break
		}
	}
	return nil
}

// Delete removes the post by identity, leaving the relative order of the
// rest unchanged.
func (p *Posts) Delete(ctx context.Context, postID string) error {
	if err := p.client.DeletePost(ctx, postID); err != nil {
		return err
	}

	kept := p.posts[:0]
	for _, post := range p.posts {
		if post.ID != postID {
			kept = append(kept, post)
		}
	}
	p.posts = kept
	return nil
}

func (p *Posts) All() []models.Post { return p.posts }

func (p *Posts) find(id string) *models.Post {
	for i := range p.posts {
		if p.posts[i].ID == id {
			return &p.posts[i]
		}
	}
	return nil
}
