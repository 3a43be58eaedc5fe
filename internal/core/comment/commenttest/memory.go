// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package commenttest provides an in-memory [comment.Repository] for tests.
package commenttest

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/scribe/internal/core/comment"
	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
)

// Repository keeps comments in insertion order.
type Repository struct {
	mu       sync.Mutex
	nextID   int64
	clock    time.Time
	comments []comment.Comment
}

// New creates an empty repository.
func New() *Repository {
	return &Repository{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Len returns the number of stored comments.
func (repository *Repository) Len() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.comments)
}

func (repository *Repository) Create(_ context.Context, entity *comment.Comment) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.nextID++
	repository.clock = repository.clock.Add(time.Minute)

	entity.ID = repository.nextID
	entity.CreatedAt = repository.clock
	entity.UpdatedAt = repository.clock
	repository.comments = append(repository.comments, *entity)
	return nil
}

func (repository *Repository) ListByArticle(_ context.Context, articleID int64) ([]*comment.Comment, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	result := make([]*comment.Comment, 0)
	for _, stored := range repository.comments {
		if stored.ArticleID == articleID {
			result = append(result, &stored)
		}
	}
	return result, nil
}

func (repository *Repository) FindByID(_ context.Context, id int64) (*comment.Comment, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(id)
	if index < 0 {
		return nil, apperr.NotFound(i18n.ErrCommentNotFound)
	}
	found := repository.comments[index]
	return &found, nil
}

func (repository *Repository) Delete(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(id)
	if index < 0 {
		return apperr.NotFound(i18n.ErrCommentNotFound)
	}
	repository.comments = slices.Delete(repository.comments, index, index+1)
	return nil
}

// DeleteByArticle drops every comment of articleID, as the foreign key
// cascade on core.comment.articleid does.
func (repository *Repository) DeleteByArticle(articleID int64) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.comments = slices.DeleteFunc(repository.comments, func(stored comment.Comment) bool {
		return stored.ArticleID == articleID
	})
}

func (repository *Repository) indexOf(id int64) int {
	return slices.IndexFunc(repository.comments, func(stored comment.Comment) bool {
		return stored.ID == id
	})
}
