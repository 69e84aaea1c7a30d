package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/okoshkin/feedline/internal/client/api"
	"github.com/okoshkin/feedline/internal/client/config"
	"github.com/okoshkin/feedline/internal/client/credstore"
	"github.com/okoshkin/feedline/internal/client/feed"
	"github.com/okoshkin/feedline/internal/client/session"
	"github.com/okoshkin/feedline/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client. Feed commands display numbered lists;
// current tracks the last list shown so that "like 2" style commands can map
// an ordinal back to an item id.
type App struct {
	config  *config.Config
	session session.Session
	store   *feed.Store
	client  api.Client
	log     logging.Logger

	db       *sql.DB
	resolver feed.VideoResolver
	reader   *bufio.Reader

	current []feed.Post
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.Default())

	db, err := credstore.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	client := api.NewRESTClient(c.BaseURL, credstore.NewTokenProvider(db), c.RequestTimeout)
	sess := session.NewManager(client, db, log)

	return &App{
		config:   c,
		session:  sess,
		store:    feed.NewStore(client, log),
		client:   client,
		log:      log,
		db:       db,
		resolver: feed.NewStreamableResolver(c.StreamableAPIURL, c.RequestTimeout),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any stored session and enters the REPL. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Initialize(ctx)
	if st := a.session.State(); st.IsAuthenticated {
		fmt.Printf("Welcome back, %s!\n", st.User.FullName)
	}

	a.Root(ctx)
}

func (a *App) Close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

// transformer builds a fresh Transformer for the current viewer; the viewer
// id feeds the liked flag derivation.
func (a *App) transformer(withResolver bool) *feed.Transformer {
	viewerID := ""
	if st := a.session.State(); st.User != nil {
		viewerID = st.User.ID
	}
	var r feed.VideoResolver
	if withResolver {
		r = a.resolver
	}
	return feed.NewTransformer(viewerID, a.config.DefaultAvatarURL, r)
}
