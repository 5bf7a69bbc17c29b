package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
)

// Profile shows the own profile, or another musician's when a directory
// position is given at the prompt.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	var userID string
	if users := a.directory.Users(); len(users) > 0 {
		s, err := getSimpleText(a.reader, "Musician number from the last listing (empty for your own profile)", os.Stdout)
		if err != nil {
			return err
		}
		if s != "" {
			var idx int
			if _, err := fmt.Sscanf(s, "%d", &idx); err != nil || idx < 1 || idx > len(users) {
				fmt.Printf("Enter a number between 1 and %d.\n", len(users))
				return nil
			}
			userID = users[idx-1].ID
		}
	}

	if err := a.profile.Fetch(ctx, userID); err != nil {
		log.Println(err.Error())
		return err
	}

	u := a.profile.User()
	if userID == "" && a.session.Account() == nil {
		// a restored session learns who it is from the first self fetch
		a.session.SetAccount(&models.Account{ID: u.ID, Name: u.Name, Email: u.Email})
	}

	fmt.Printf("%s (%s)\n", u.Name, u.City)
	if u.Bio != "" {
		fmt.Println(u.Bio)
	}
	if len(u.Instruments) > 0 {
		fmt.Println("plays: " + strings.Join(u.Instruments, ", "))
	}
	if len(u.Genres) > 0 {
		fmt.Println("into: " + strings.Join(u.Genres, ", "))
	}
	fmt.Printf("%d posts, %d bandmates\n", a.profile.PostsCount(), a.profile.BandmatesCount())

	for i := range a.profile.Posts() {
		a.renderPost(i, &a.profile.Posts()[i])
	}
	return nil
}

// UpdateProfile edits the own profile. Empty answers keep the current
// values; instruments and genres are comma-separated.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	// start from the current server-side state
	if err := a.profile.Fetch(ctx, ""); err != nil {
		log.Println(err.Error())
		return err
	}
	current := a.profile.User()

	name, err := getSimpleText(a.reader, fmt.Sprintf("Stage name [%s]", current.Name), os.Stdout)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "Bio", os.Stdout)
	if err != nil {
		return err
	}
	city, err := getSimpleText(a.reader, fmt.Sprintf("City [%s]", current.City), os.Stdout)
	if err != nil {
		return err
	}
	instruments, err := getSimpleText(a.reader, fmt.Sprintf("Instruments [%s]", strings.Join(current.Instruments, ", ")), os.Stdout)
	if err != nil {
		return err
	}
	genres, err := getSimpleText(a.reader, fmt.Sprintf("Genres [%s]", strings.Join(current.Genres, ", ")), os.Stdout)
	if err != nil {
		return err
	}
	picturePath, err := getSimpleText(a.reader, "Profile picture file (empty keeps the current one)", os.Stdout)
	if err != nil {
		return err
	}

	update := api.ProfileUpdate{
		Name:        current.Name,
		Bio:         current.Bio,
		City:        current.City,
		Instruments: current.Instruments,
		Genres:      current.Genres,
	}
	if name != "" {
		update.Name = name
	}
	if bio != "" {
		update.Bio = bio
	}
	if city != "" {
		update.City = city
	}
	if instruments != "" {
		update.Instruments = models.SplitList(instruments)
	}
	if genres != "" {
		update.Genres = models.SplitList(genres)
	}
	if picturePath != "" {
		picture, err := fileDataURL(picturePath)
		if err != nil {
			log.Printf("Failed to process image: %s", err.Error())
			return err
		}
		update.ProfilePicture = picture
	}

	if err := a.profile.Update(ctx, update); err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}
