package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ShowFeed(ctx context.Context) error
	ShowReels(ctx context.Context) error
	Like(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Share(ctx context.Context, args []string) error
	Interests(ctx context.Context, args []string) error
	EditProfile(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Suggested(ctx context.Context) error
}

func (a *App) getStatus() string {
	st := a.session.State()
	if st.User != nil {
		return fmt.Sprintf("(@%s)", st.User.Username)
	}
	return ""
}

// Root runs the interactive loop until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("feedline CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("feedline %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		if !dispatch(ctx, a, scanner.Text()) {
			return
		}
	}
}

// dispatch parses one input line and runs the matching command. It returns
// false when the loop should stop. Errors returned by command handlers are
// ignored here; handlers print their own diagnostics, which keeps the loop
// resilient and focused on I/O.
func dispatch(ctx context.Context, a execIface, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: feed, reels, like <n>, comment <n> <text>, share <n>,")
			printlnFn("  interests <tag...>, editprofile, upload <path>, search <q>, suggest,")
			printlnFn("  whoami, logout, exit")
		} else {
			printlnFn("Available commands: register, login, exit")
		}

	case "register":
		_ = a.Register(ctx)
	case "login":
		_ = a.Login(ctx)
	case "logout":
		_ = a.Logout(ctx)
	case "whoami", "profile":
		_ = a.WhoAmI(ctx)
	case "feed":
		_ = a.ShowFeed(ctx)
	case "reels":
		_ = a.ShowReels(ctx)
	case "like":
		_ = a.Like(ctx, args)
	case "comment":
		_ = a.Comment(ctx, args)
	case "share":
		_ = a.Share(ctx, args)
	case "interests":
		_ = a.Interests(ctx, args)
	case "editprofile":
		_ = a.EditProfile(ctx)
	case "upload":
		_ = a.Upload(ctx, args)
	case "search":
		_ = a.Search(ctx, args)
	case "suggest":
		_ = a.Suggested(ctx)
	case "exit", "quit":
		printlnFn("Bye!")
		return false
	default:
		printlnFn("Unknown command:", cmd)
	}
	return true
}
