package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
	"github.com/dmitrijs2005/bandmate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks through the signup form: stage name, email, password,
// city, and comma-separated instruments and genres. On success the
// session is armed and the user lands straight in their account.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter stage name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	city, err := getSimpleText(a.reader, "Enter city", os.Stdout)
	if err != nil {
		return err
	}
	instruments, err := getSimpleText(a.reader, "Instruments (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}
	genres, err := getSimpleText(a.reader, "Genres (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}

	req := api.RegisterRequest{
		Name:        name,
		Email:       email,
		Password:    string(password),
		City:        city,
		Instruments: models.SplitList(instruments),
		Genres:      models.SplitList(genres),
	}

	if err := a.session.Register(ctx, req); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Welcome to the band, " + name + "!")
	return nil
}

// Login prompts for credentials and authenticates. A failure is terminal
// for this attempt; the user just runs the command again.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	return nil
}

// Logout clears the in-memory session and the persisted token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
