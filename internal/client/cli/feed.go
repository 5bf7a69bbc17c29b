package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/bandmate/internal/client/imaging"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
	"github.com/dmitrijs2005/bandmate/internal/common"
)

// fileDataURL is a test seam for the image pipeline.
var fileDataURL = imaging.FileDataURL

// Feed fetches and renders the feed screen.
func (a *App) Feed(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.posts.FetchFeed(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	a.renderFeed()
	return nil
}

func (a *App) renderFeed() {
	posts := a.posts.All()
	if len(posts) == 0 {
		fmt.Println("The feed is empty. Be the first to post!")
		return
	}
	for i := range posts {
		a.renderPost(i, &posts[i])
	}
}

func (a *App) renderPost(i int, p *models.Post) {
	fmt.Printf("[%d] %s (%s)\n", i+1, p.Author.Name, p.CreatedAt.Local().Format("Jan 2 15:04"))
	if p.Content != "" {
		fmt.Println("    " + p.Content)
	}
	if p.Image != "" {
		fmt.Println("    [image attached]")
	}
	fmt.Printf("    %d likes, %d comments\n", len(p.Likes), len(p.Comments))
	for _, c := range p.Comments {
		fmt.Printf("      %s: %s\n", c.Author.Name, c.Text)
	}
}

// NewPost publishes a post with text, an image, or both. The image is
// downscaled and encoded locally before it goes anywhere near the wire.
func (a *App) NewPost(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	content, err := getSimpleText(a.reader, "What's on your mind? (may be empty if posting an image)", os.Stdout)
	if err != nil {
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Image file (empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	var image string
	if imagePath != "" {
		image, err = fileDataURL(imagePath)
		if err != nil {
			log.Printf("Failed to process image: %s", err.Error())
			return err
		}
	}

	if err := a.posts.Create(ctx, content, image); err != nil {
		if errors.Is(err, common.ErrEmptyPost) {
			fmt.Println("A post needs some text or an image.")
			return nil
		}
		log.Println(err.Error())
		return err
	}

	fmt.Println("Posted!")
	return nil
}

// pickPost resolves a user-entered feed position to a post. The feed must
// have been fetched first.
func (a *App) pickPost(prompt string) (*models.Post, error) {
	posts := a.posts.All()
	if len(posts) == 0 {
		fmt.Println("Fetch the feed first ('feed').")
		return nil, common.ErrNotFound
	}
	i, err := GetIndex(a.reader, prompt, len(posts), os.Stdout)
	if err != nil {
		return nil, err
	}
	return &posts[i], nil
}

func (a *App) LikePost(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	post, err := a.pickPost("Like which post?")
	if err != nil {
		return err
	}
	if err := a.posts.Like(ctx, post.ID); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Now at %d likes.\n", len(post.Likes))
	return nil
}

func (a *App) Comment(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	post, err := a.pickPost("Comment on which post?")
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Your comment", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	if err := a.posts.AddComment(ctx, post.ID, text); err != nil {
		log.Println(err.Error())
		return err
	}
	return nil
}

// EditPost edits one of the user's own posts. Non-authors get rejected by
// the server; the CLI does not second-guess authorship beyond the server's
// answer.
func (a *App) EditPost(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	post, err := a.pickPost("Edit which post?")
	if err != nil {
		return err
	}

	content, err := getSimpleText(a.reader, "New content", os.Stdout)
	if err != nil {
		return err
	}
	imagePath, err := getSimpleText(a.reader, "New image file (empty keeps the current one)", os.Stdout)
	if err != nil {
		return err
	}

	image := post.Image
	if imagePath != "" {
		image, err = fileDataURL(imagePath)
		if err != nil {
			log.Printf("Failed to process image: %s", err.Error())
			return err
		}
	}

	if err := a.posts.Edit(ctx, post.ID, content, image); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Updated.")
	return nil
}

func (a *App) DeletePost(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	post, err := a.pickPost("Delete which post?")
	if err != nil {
		return err
	}
	confirm, err := getSimpleText(a.reader, "Delete this post? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		return nil
	}
	if err := a.posts.Delete(ctx, post.ID); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
