package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/okoshkin/feedline/internal/client/api"
	"github.com/okoshkin/feedline/internal/client/credstore"
	"github.com/okoshkin/feedline/internal/client/models"
	"github.com/okoshkin/feedline/internal/dbx"
	"github.com/okoshkin/feedline/internal/logging"
)

// State is a point-in-time snapshot of the session. User is a copy; mutating
// it does not affect the manager.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
}

// Session defines the operations screens call on the session manager.
//
// Contract:
//   - Initialize: rehydrate from the credential store and revalidate; all
//     failure paths converge to the unauthenticated terminal state.
//   - Login/Signup: authenticate, normalize the returned profile, persist
//     token+user, mark authenticated.
//   - Logout: best-effort backend notification, unconditional local purge.
//   - UpdateUser: shallow-merge into the current user, memory and store.
//   - CompleteInterests/CompleteProfile: authorized mutations that adopt the
//     server's authoritative fields on success.
//   - AuthHeaders: read the token from the store on every call, never cache.
type Session interface {
	State() State
	Initialize(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, creds models.SignupCredentials) error
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, partial models.User) error
	CompleteInterests(ctx context.Context, interests []string) error
	CompleteProfile(ctx context.Context, fields models.ProfileUpdate) error
	AuthHeaders(ctx context.Context) (map[string]string, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	SuggestedUsers(ctx context.Context) ([]models.User, error)
}

// Manager is the concrete Session backed by an api.Client and the local
// credential database. All state transitions go through its mutex; concurrent
// network responses serialize into sequential updates, last write wins.
type Manager struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	mu            sync.Mutex
	user          *models.User
	authenticated bool
	loading       bool
}

func NewManager(client api.Client, db *sql.DB, log logging.Logger) *Manager {
	return &Manager{client: client, db: db, log: log}
}

func (m *Manager) repo() credstore.Repository {
	return credstore.NewSQLiteRepository(m.db)
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := State{IsAuthenticated: m.authenticated, IsLoading: m.loading}
	if m.user != nil {
		u := *m.user
		u.Interests = append([]string(nil), m.user.Interests...)
		s.User = &u
	}
	return s
}

// Initialize runs once at startup. It reads the cached token and user
// snapshot, revalidates the token against GET /profile, and adopts the
// server's (possibly richer) profile. Any failure (missing data, network
// error, rejected token) purges the store and leaves the session in the
// unauthenticated terminal state. It never panics or returns an error.
func (m *Manager) Initialize(ctx context.Context) {
	repo := m.repo()

	token, err := repo.Get(ctx, credstore.KeyAuthToken)
	if err != nil {
		m.log.Error(ctx, "credential store read failed", "err", err)
		m.resetUnauthenticated()
		return
	}
	raw, err := repo.Get(ctx, credstore.KeyUserData)
	if err != nil {
		m.log.Error(ctx, "credential store read failed", "err", err)
		m.resetUnauthenticated()
		return
	}
	if len(token) == 0 || len(raw) == 0 {
		m.log.Info(ctx, "no stored session")
		m.resetUnauthenticated()
		return
	}

	var cached models.User
	if err := json.Unmarshal(raw, &cached); err != nil {
		m.log.Warn(ctx, "stored user snapshot is unreadable, purging", "err", err)
		m.purge(ctx)
		m.resetUnauthenticated()
		return
	}

	wire, err := m.client.Profile(ctx)
	if err != nil {
		m.log.Warn(ctx, "token revalidation failed, purging credentials", "err", err)
		m.purge(ctx)
		m.resetUnauthenticated()
		return
	}

	user := cached
	if wire != nil {
		user = wire.Normalize()
	}
	if err := m.persistUser(ctx, user); err != nil {
		m.log.Error(ctx, "failed to refresh user snapshot", "err", err)
	}

	m.mu.Lock()
	m.user = &user
	m.authenticated = true
	m.loading = false
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "email", user.Email)
}

func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.setLoading(true)

	res, err := m.client.SignIn(ctx, email, password)
	if err != nil {
		m.setLoading(false)
		return err
	}

	user := res.User.Normalize()
	if user.Email == "" {
		user.Email = email
	}
	if err := m.adoptAuth(ctx, res.Token, user); err != nil {
		m.setLoading(false)
		return err
	}
	m.log.Info(ctx, "login successful", "email", user.Email)
	return nil
}

func (m *Manager) Signup(ctx context.Context, creds models.SignupCredentials) error {
	m.setLoading(true)

	res, err := m.client.SignUp(ctx, creds.FullName, creds.Email, creds.Password)
	if err != nil {
		m.setLoading(false)
		return err
	}

	user := res.User.Normalize()
	if user.Email == "" {
		user.Email = creds.Email
	}
	if user.FullName == "" || user.FullName == "User" {
		if creds.FullName != "" {
			user.FullName = creds.FullName
		}
	}
	if err := m.adoptAuth(ctx, res.Token, user); err != nil {
		m.setLoading(false)
		return err
	}
	m.log.Info(ctx, "signup successful", "email", user.Email)
	return nil
}

// adoptAuth durably stores token and user in one transaction and then flips
// the in-memory state to authenticated. Ordering matters: if persistence
// fails the session must remain unauthenticated.
func (m *Manager) adoptAuth(ctx context.Context, token string, user models.User) error {
	snapshot, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user snapshot: %w", err)
	}

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credstore.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, credstore.KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, credstore.KeyUserData, snapshot)
	})
	if err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}

	m.mu.Lock()
	m.user = &user
	m.authenticated = true
	m.loading = false
	m.mu.Unlock()
	return nil
}

// Logout notifies the backend on a best-effort basis, then unconditionally
// purges local credentials and resets the session.
func (m *Manager) Logout(ctx context.Context) error {
	token, err := m.repo().Get(ctx, credstore.KeyAuthToken)
	if err == nil && len(token) > 0 {
		if err := m.client.Logout(ctx); err != nil {
			m.log.Warn(ctx, "backend logout failed, continuing with client logout", "err", err)
		}
	}

	purgeErr := m.purge(ctx)
	m.resetUnauthenticated()

	if purgeErr != nil {
		return fmt.Errorf("clear credentials: %w", purgeErr)
	}
	m.log.Info(ctx, "logged out")
	return nil
}

// UpdateUser shallow-merges partial into the current user, in memory and in
// the credential store. When no user is set it silently no-ops; the skip is
// logged at debug level.
func (m *Manager) UpdateUser(ctx context.Context, partial models.User) error {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		m.log.Debug(ctx, "UpdateUser skipped, no user in session")
		return nil
	}
	merged := m.user.Merge(partial)
	m.mu.Unlock()

	if err := m.persistUser(ctx, merged); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = &merged
	m.mu.Unlock()
	return nil
}

func (m *Manager) CompleteInterests(ctx context.Context, interests []string) error {
	m.setLoading(true)

	wire, err := m.client.SaveInterests(ctx, interests)
	if err != nil {
		m.setLoading(false)
		return err
	}

	partial := models.User{Interests: interests, HasCompletedInterests: true}
	if wire != nil {
		partial.Interests = wire.Interests
		partial.HasCompletedInterests = wire.HasCompletedInterests
	}
	if err := m.mergeAndPersist(ctx, partial); err != nil {
		m.setLoading(false)
		return err
	}
	m.setLoading(false)
	return nil
}

func (m *Manager) CompleteProfile(ctx context.Context, fields models.ProfileUpdate) error {
	m.setLoading(true)

	wire, err := m.client.UpdateProfile(ctx, fields)
	if err != nil {
		m.setLoading(false)
		return err
	}

	// Prefer the server's authoritative record; fall back to echoing the
	// request fields when the response carries no user.
	var partial models.User
	if wire != nil {
		partial = wire.Normalize()
	} else {
		partial = models.User{
			Bio:            fields.Bio,
			Website:        fields.Website,
			Location:       fields.Location,
			ProfilePicture: fields.ProfilePicture,
			CoverPhoto:     fields.CoverPhoto,
		}
	}
	if err := m.mergeAndPersist(ctx, partial); err != nil {
		m.setLoading(false)
		return err
	}
	m.setLoading(false)
	return nil
}

// AuthHeaders reads the token from the credential store and builds the
// headers every authorized request must carry. The token is never cached, so
// a logout or expiry is observed by the next call.
func (m *Manager) AuthHeaders(ctx context.Context) (map[string]string, error) {
	token, err := m.repo().Get(ctx, credstore.KeyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if len(token) == 0 {
		return nil, api.ErrNoCredentials
	}
	return map[string]string{
		"Authorization": "Bearer " + string(token),
		"Content-Type":  "application/json",
	}, nil
}

func (m *Manager) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	wire, err := m.client.SearchUsers(ctx, query)
	if err != nil {
		return nil, err
	}
	return normalizeAll(wire), nil
}

func (m *Manager) SuggestedUsers(ctx context.Context) ([]models.User, error) {
	wire, err := m.client.SuggestedUsers(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeAll(wire), nil
}

func normalizeAll(wire []models.WireUser) []models.User {
	users := make([]models.User, len(wire))
	for i, w := range wire {
		users[i] = w.Normalize()
	}
	return users
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

func (m *Manager) resetUnauthenticated() {
	m.mu.Lock()
	m.user = nil
	m.authenticated = false
	m.loading = false
	m.mu.Unlock()
}

func (m *Manager) purge(ctx context.Context) error {
	return m.repo().Clear(ctx)
}

func (m *Manager) persistUser(ctx context.Context, user models.User) error {
	snapshot, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user snapshot: %w", err)
	}
	return m.repo().Set(ctx, credstore.KeyUserData, snapshot)
}

func (m *Manager) mergeAndPersist(ctx context.Context, partial models.User) error {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return nil
	}
	merged := m.user.Merge(partial)
	m.mu.Unlock()

	if err := m.persistUser(ctx, merged); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = &merged
	m.mu.Unlock()
	return nil
}
