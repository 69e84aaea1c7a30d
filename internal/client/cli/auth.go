package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/okoshkin/feedline/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the signup fields and creates an account. A
// successful signup leaves the user logged in (the backend returns a token).
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
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

	creds := models.SignupCredentials{FullName: name, Email: email, Password: password}
	if err := a.session.Signup(ctx, creds); err != nil {
		fmt.Println("Signup failed:", err)
		return err
	}

	fmt.Println("Success! You are now logged in.")
	return nil
}

// Login prompts for credentials and authenticates against the backend.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	st := a.session.State()
	fmt.Printf("Logged in as %s (@%s)\n", st.User.FullName, st.User.Username)
	return nil
}

// Logout notifies the backend best-effort and clears local credentials.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Println("Logout finished with a warning:", err)
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the current session identity.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.State()
	if !st.IsAuthenticated {
		fmt.Println("Not logged in.")
		return nil
	}
	u := st.User
	fmt.Printf("%s (@%s) <%s>\n", u.FullName, u.Username, u.Email)
	if u.Bio != "" {
		fmt.Println("  bio:", u.Bio)
	}
	if u.Location != "" {
		fmt.Println("  location:", u.Location)
	}
	if u.Website != "" {
		fmt.Println("  website:", u.Website)
	}
	if len(u.Interests) > 0 {
		fmt.Println("  interests:", u.Interests)
	}
	return nil
}
