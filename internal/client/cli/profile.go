package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/okoshkin/feedline/internal/client/models"
	"github.com/okoshkin/feedline/internal/filex"
)

// MinInterests is the smallest interest selection the backend accepts.
// Validation lives here, above the session manager, matching where the
// product enforces it.
const MinInterests = 3

// Interests persists the selected interest tags.
func (a *App) Interests(ctx context.Context, args []string) error {
	tags := make([]string, 0, len(args))
	for _, t := range args {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) < MinInterests {
		printlnFn(fmt.Sprintf("Please choose at least %d interests to continue.", MinInterests))
		return fmt.Errorf("at least %d interests required", MinInterests)
	}

	if err := a.session.CompleteInterests(ctx, tags); err != nil {
		printlnFn("Saving interests failed:", err)
		return err
	}
	printlnFn("Interests saved.")
	return nil
}

// EditProfile prompts for the optional profile fields and submits them.
// Empty answers leave a field unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	bio, err := getSimpleText(a.reader, "Bio (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	website, err := getSimpleText(a.reader, "Website (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	fields := models.ProfileUpdate{Bio: bio, Website: website, Location: location}
	if err := a.session.CompleteProfile(ctx, fields); err != nil {
		printlnFn("Profile update failed:", err)
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

// Upload reads an image file, uploads it as a base64 data URI, and attaches
// the hosted URL to the profile as the new picture.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: upload <path-to-image>")
		return fmt.Errorf("usage: upload <path>")
	}

	dataURI, err := filex.LoadImageDataURI(args[0])
	if err != nil {
		printlnFn("Could not read image:", err)
		return err
	}

	hosted, err := a.client.Upload(ctx, dataURI)
	if err != nil {
		printlnFn("Upload failed:", err)
		return err
	}

	if err := a.session.UpdateUser(ctx, models.User{ProfilePicture: hosted}); err != nil {
		printlnFn("Uploaded, but updating the profile picture failed:", err)
		return err
	}
	printlnFn("Profile picture uploaded: " + hosted)
	return nil
}

// Search looks up users matching the query.
func (a *App) Search(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	users, err := a.session.SearchUsers(ctx, query)
	if err != nil {
		printlnFn("Search failed:", err)
		return err
	}
	a.printUsers(users)
	return nil
}

// Suggested lists users the backend recommends following.
func (a *App) Suggested(ctx context.Context) error {
	users, err := a.session.SuggestedUsers(ctx)
	if err != nil {
		printlnFn("Could not fetch suggestions:", err)
		return err
	}
	a.printUsers(users)
	return nil
}

func (a *App) printUsers(users []models.User) {
	if len(users) == 0 {
		printlnFn("No users found.")
		return
	}
	for _, u := range users {
		line := fmt.Sprintf("%s (@%s)", u.FullName, u.Username)
		if u.Bio != "" {
			line += " - " + u.Bio
		}
		printlnFn(line)
	}
}
