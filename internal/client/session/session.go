// Package session keeps who is logged in. The bearer credential is written
// to the local state database so it survives restarts; the username lives
// only in memory.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/checklist/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/checklist/internal/dbx"
)

const (
	keyAuthToken = "auth_token"
	keyIsAdmin   = "is_admin"
)

// Session is the explicit login context handed to services and the CLI.
// It is not safe for concurrent use.
type Session struct {
	db       *sql.DB
	repo     metadata.Factory
	token    string
	username string
	isAdmin  bool
}

func New(db *sql.DB) *Session {
	return &Session{db: db, repo: metadata.NewSQLiteRepository}
}

// Token returns the bearer credential, or "" when logged out.
func (s *Session) Token() string { return s.token }

func (s *Session) Username() string { return s.username }

func (s *Session) IsAdmin() bool { return s.isAdmin }

func (s *Session) LoggedIn() bool { return s.token != "" }

// Start records a successful login. Anything left over from an earlier
// login is dropped and the credential and admin flag are persisted together.
func (s *Session) Start(ctx context.Context, username, token string, isAdmin bool) error {
	admin := []byte("0")
	if isAdmin {
		admin = []byte("1")
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyIsAdmin, admin)
	})
	if err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	s.token = token
	s.username = username
	s.isAdmin = isAdmin
	return nil
}

// Restore loads a credential persisted by an earlier run. It reports whether
// one was found. The username is recovered from the token's claims when the
// token is a JWT; otherwise it stays empty.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, keyAuthToken)
	if err != nil {
		return false, fmt.Errorf("load credential: %w", err)
	}
	if len(token) == 0 {
		return false, nil
	}
	admin, err := repo.Get(ctx, keyIsAdmin)
	if err != nil {
		return false, fmt.Errorf("load credential: %w", err)
	}

	s.token = string(token)
	s.isAdmin = string(admin) == "1"
	s.username = ""
	if c, ok := ParseClaims(s.token); ok {
		s.username = c.Username
		if c.IsAdmin != nil {
			s.isAdmin = *c.IsAdmin
		}
	}
	return true, nil
}

// End forgets the user and removes the persisted credential.
func (s *Session) End(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Delete(ctx, keyAuthToken); err != nil {
			return err
		}
		return repo.Delete(ctx, keyIsAdmin)
	})

	s.token = ""
	s.username = ""
	s.isAdmin = false

	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
