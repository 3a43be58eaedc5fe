// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package profiletest provides an in-memory [profile.Repository] for tests.
package profiletest

import (
	"context"
	"sync"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/users/profile"
)

type edge struct {
	follower int64
	followee int64
}

// Repository stores profiles and follow edges in maps.
type Repository struct {
	mu       sync.Mutex
	nextID   int64
	profiles map[int64]profile.Profile
	edges    map[edge]struct{}
}

// New creates an empty repository.
func New() *Repository {
	return &Repository{
		profiles: make(map[int64]profile.Profile),
		edges:    make(map[edge]struct{}),
	}
}

// Add registers a member and returns its ID.
func (repository *Repository) Add(username string) int64 {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	repository.profiles[repository.nextID] = profile.Profile{ID: repository.nextID, Username: username}
	return repository.nextID
}

func (repository *Repository) FindByUsername(_ context.Context, username string, viewerID int64) (*profile.Profile, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for id, candidate := range repository.profiles {
		if candidate.Username == username {
			candidate.Following = repository.follows(viewerID, id)
			return &candidate, nil
		}
	}
	return nil, apperr.NotFound(i18n.ErrProfileNotFound)
}

func (repository *Repository) FindByIDs(_ context.Context, ids []int64, viewerID int64) (map[int64]profile.Profile, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	result := make(map[int64]profile.Profile, len(ids))
	for _, id := range ids {
		if candidate, ok := repository.profiles[id]; ok {
			candidate.Following = repository.follows(viewerID, id)
			result[id] = candidate
		}
	}
	return result, nil
}

func (repository *Repository) Follow(_ context.Context, followerID, followeeID int64) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	key := edge{followerID, followeeID}
	if _, ok := repository.edges[key]; ok {
		return false, nil
	}
	repository.edges[key] = struct{}{}
	return true, nil
}

func (repository *Repository) Unfollow(_ context.Context, followerID, followeeID int64) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	key := edge{followerID, followeeID}
	if _, ok := repository.edges[key]; !ok {
		return false, nil
	}
	delete(repository.edges, key)
	return true, nil
}

// Followees returns the IDs followerID follows.
func (repository *Repository) Followees(followerID int64) []int64 {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var ids []int64
	for key := range repository.edges {
		if key.follower == followerID {
			ids = append(ids, key.followee)
		}
	}
	return ids
}

func (repository *Repository) follows(followerID, followeeID int64) bool {
	_, ok := repository.edges[edge{followerID, followeeID}]
	return ok
}
