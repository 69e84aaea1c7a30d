package credstore

import (
	"context"
	"database/sql"
)

// TokenProvider adapts the credential store to api.TokenSource. Every call
// hits the database, so a purge performed by logout or failed revalidation
// is visible to the very next request.
type TokenProvider struct {
	db *sql.DB
}

func NewTokenProvider(db *sql.DB) *TokenProvider {
	return &TokenProvider{db: db}
}

func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	value, err := NewSQLiteRepository(p.db).Get(ctx, KeyAuthToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}
