// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package authtest provides in-memory implementations of the auth repositories
// for use in tests of the users packages.
package authtest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/users/auth"
)

// Users is a thread-safe in-memory [auth.UserRepository].
//
// Create and Update enforce email and username uniqueness with the same
// constraint names as the users.account table.
type Users struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]auth.User

	// BlindLookups makes FindByEmail and FindByUsername always miss, which
	// simulates a concurrent insert that lands between the check and the write.
	BlindLookups bool
}

// NewUsers creates an empty repository.
func NewUsers() *Users {
	return &Users{rows: make(map[int64]auth.User)}
}

// Seed inserts a user directly and returns its assigned ID.
func (users *Users) Seed(user auth.User) int64 {
	users.mu.Lock()
	defer users.mu.Unlock()

	users.nextID++
	user.ID = users.nextID
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	users.rows[user.ID] = user
	return user.ID
}

func (users *Users) FindByID(_ context.Context, id int64) (*auth.User, error) {
	users.mu.Lock()
	defer users.mu.Unlock()

	if user, ok := users.rows[id]; ok {
		return &user, nil
	}
	return nil, apperr.NotFound(i18n.ErrUserNotFound)
}

func (users *Users) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	return users.find(func(user auth.User) bool { return user.Email == email })
}

func (users *Users) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	return users.find(func(user auth.User) bool { return user.Username == username })
}

func (users *Users) find(match func(auth.User) bool) (*auth.User, error) {
	users.mu.Lock()
	defer users.mu.Unlock()

	if !users.BlindLookups {
		for _, user := range users.rows {
			if match(user) {
				return &user, nil
			}
		}
	}
	return nil, apperr.NotFound(i18n.ErrUserNotFound)
}

func (users *Users) Create(_ context.Context, user *auth.User) error {
	users.mu.Lock()
	defer users.mu.Unlock()

	if err := users.checkUnique(0, user); err != nil {
		return err
	}

	users.nextID++
	user.ID = users.nextID
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	users.rows[user.ID] = *user
	return nil
}

func (users *Users) Update(_ context.Context, user *auth.User) error {
	users.mu.Lock()
	defer users.mu.Unlock()

	if _, ok := users.rows[user.ID]; !ok {
		return apperr.NotFound(i18n.ErrUserNotFound)
	}
	if err := users.checkUnique(user.ID, user); err != nil {
		return err
	}

	user.UpdatedAt = time.Now()
	users.rows[user.ID] = *user
	return nil
}

func (users *Users) checkUnique(selfID int64, candidate *auth.User) error {
	for id, user := range users.rows {
		if id == selfID {
			continue
		}
		switch {
		case user.Email == candidate.Email:
			return uniqueViolation("account_email_key")
		case user.Username == candidate.Username:
			return uniqueViolation("account_username_key")
		}
	}
	return nil
}

func uniqueViolation(constraint string) error {
	return fmt.Errorf("insert account: %w", &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: constraint,
	})
}

// RefreshTokens is an in-memory [auth.RefreshTokenRepository]. Expiry is not
// simulated.
type RefreshTokens struct {
	mu     sync.Mutex
	tokens map[string]int64
}

// NewRefreshTokens creates an empty token store.
func NewRefreshTokens() *RefreshTokens {
	return &RefreshTokens{tokens: make(map[string]int64)}
}

// Len returns the number of live tokens.
func (store *RefreshTokens) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.tokens)
}

func (store *RefreshTokens) Set(_ context.Context, tokenHash string, userID int64, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.tokens[tokenHash] = userID
	return nil
}

func (store *RefreshTokens) Consume(_ context.Context, tokenHash string) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	userID, ok := store.tokens[tokenHash]
	if !ok {
		return 0, apperr.Unauthorized(i18n.ErrAuthInvalidRefresh)
	}
	delete(store.tokens, tokenHash)
	return userID, nil
}

func (store *RefreshTokens) Delete(_ context.Context, tokenHash string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.tokens, tokenHash)
	return nil
}

// Tokens is a deterministic [auth.TokenProvider].
type Tokens struct{}

func (Tokens) GenerateAccessToken(userID int64, username, _ string, _ time.Duration) (string, error) {
	return fmt.Sprintf("access-%d-%s", userID, username), nil
}
