package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/okoshkin/feedline/internal/client/feed"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// ShowFeed fetches and displays the post feed.
func (a *App) ShowFeed(ctx context.Context) error {
	records, err := a.client.ListPosts(ctx)
	if err != nil {
		printlnFn("Could not fetch posts:", err)
		return err
	}

	posts := a.transformer(false).Posts(records)
	a.store.SetPosts(posts)
	a.current = a.store.Posts()
	a.printItems(a.current)
	return nil
}

// ShowReels fetches and displays the reels feed, resolving video URLs.
func (a *App) ShowReels(ctx context.Context) error {
	records, err := a.client.ListVideos(ctx)
	if err != nil {
		printlnFn("Could not fetch reels:", err)
		return err
	}

	reels := a.transformer(true).Reels(ctx, records)
	a.store.SetReels(reels)
	a.current = a.store.Reels()
	a.printItems(a.current)
	return nil
}

// Like toggles the like on the n-th item of the last displayed list.
func (a *App) Like(ctx context.Context, args []string) error {
	item, err := a.pick(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	updated, err := a.store.ToggleLike(ctx, item.ID)
	if err != nil {
		printlnFn("Like failed, change rolled back:", err)
		return err
	}
	if updated.IsLiked {
		printlnFn(fmt.Sprintf("Liked (%d likes)", updated.Likes))
	} else {
		printlnFn(fmt.Sprintf("Unliked (%d likes)", updated.Likes))
	}
	return nil
}

// Comment appends a comment to the n-th item of the last displayed list.
func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: comment <n> <text>")
		return fmt.Errorf("usage: comment <n> <text>")
	}
	item, err := a.pick(args[:1])
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		printlnFn("Comment text must not be empty")
		return fmt.Errorf("empty comment")
	}

	st := a.session.State()
	if st.User == nil {
		printlnFn("Log in before commenting")
		return fmt.Errorf("not logged in")
	}

	updated, err := a.store.AddComment(ctx, item.ID, text, *st.User)
	if err != nil {
		printlnFn("Comment failed, change rolled back:", err)
		return err
	}
	printlnFn(fmt.Sprintf("Comment added (%d comments)", updated.Comments))
	return nil
}

// Share shares the n-th item of the last displayed list.
func (a *App) Share(ctx context.Context, args []string) error {
	item, err := a.pick(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	updated, err := a.store.Share(ctx, item.ID)
	if err != nil {
		printlnFn("Share failed, change rolled back:", err)
		return err
	}
	printlnFn(fmt.Sprintf("Shared (%d shares)", updated.Shares))
	return nil
}

// pick maps a 1-based ordinal argument to an item of the last displayed list.
func (a *App) pick(args []string) (feed.Post, error) {
	if len(args) == 0 {
		return feed.Post{}, fmt.Errorf("missing item number; show the feed first and pass its ordinal")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.current) {
		return feed.Post{}, fmt.Errorf("no item %q in the last shown list (1-%d)", args[0], len(a.current))
	}
	return a.current[n-1], nil
}

func (a *App) printItems(items []feed.Post) {
	if len(items) == 0 {
		printlnFn("Nothing here yet.")
		return
	}
	for i, p := range items {
		liked := " "
		if p.IsLiked {
			liked = "*"
		}
		printlnFn(fmt.Sprintf("%2d. [%s] %s (@%s) - %s", i+1, liked, p.Name, p.Username, p.Time))
		printlnFn("      " + p.Content)
		if p.VideoURL != "" {
			printlnFn("      video: " + p.VideoURL)
		}
		printlnFn(fmt.Sprintf("      %d likes, %d comments, %d shares", p.Likes, p.Comments, p.Shares))
		for _, c := range p.List {
			printlnFn(fmt.Sprintf("        %s: %s (%s)", c.Name, c.Text, c.Time))
		}
	}
}
