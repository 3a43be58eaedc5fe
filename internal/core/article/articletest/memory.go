// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package articletest provides an in-memory [article.Repository] for tests.
package articletest

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/scribe/internal/core/article"
	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
)

// slugWidth mirrors the VARCHAR(255) core.article.slug column.
const slugWidth = 255

// Directory resolves follow edges for the feed filter.
// *profiletest.Repository satisfies it.
type Directory interface {
	Followees(followerID int64) []int64
}

// Repository keeps articles in a map keyed by ID.
type Repository struct {
	mu        sync.Mutex
	nextID    int64
	clock     time.Time
	articles  map[int64]article.Article
	tags      map[string]struct{}
	usernames map[int64]string
	directory Directory

	// BlindSlugs makes SlugExists always report false, simulating a lost race.
	BlindSlugs bool

	// OnDelete runs after an article is removed, standing in for the
	// ON DELETE CASCADE foreign keys of dependent tables.
	OnDelete func(articleID int64)
}

// New creates an empty repository. directory may be nil when feeds are not used.
func New(directory Directory) *Repository {
	return &Repository{
		clock:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		articles:  make(map[int64]article.Article),
		tags:      make(map[string]struct{}),
		usernames: make(map[int64]string),
		directory: directory,
	}
}

// Author records the username of an author ID for the author filter.
func (repository *Repository) Author(id int64, username string) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.usernames[id] = username
}

// Tags returns every tag name ever connected, sorted.
func (repository *Repository) Tags() []string {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	names := make([]string, 0, len(repository.tags))
	for name := range repository.tags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of stored articles.
func (repository *Repository) Len() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.articles)
}

func (repository *Repository) SlugExists(_ context.Context, slug string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.BlindSlugs {
		return false, nil
	}
	_, ok := repository.bySlug(slug)
	return ok, nil
}

func (repository *Repository) Create(_ context.Context, entity *article.Article) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if len(entity.Slug) > slugWidth {
		return apperr.Internal(fmt.Errorf("article_create: %w", &pgconn.PgError{
			Code:       pgerrcode.StringDataRightTruncationDataException,
			ColumnName: "slug",
		}))
	}
	if _, ok := repository.bySlug(entity.Slug); ok {
		return apperr.Conflict(i18n.ErrConflict).WithCause(fmt.Errorf("article_create: %w", &pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "article_slug_key",
		}))
	}

	repository.nextID++
	repository.clock = repository.clock.Add(time.Minute)

	entity.ID = repository.nextID
	entity.CreatedAt = repository.clock
	entity.UpdatedAt = repository.clock

	stored := *entity
	stored.TagList = slices.Sorted(slices.Values(entity.TagList))
	for _, name := range stored.TagList {
		repository.tags[name] = struct{}{}
	}
	repository.articles[stored.ID] = stored
	return nil
}

func (repository *Repository) FindBySlug(_ context.Context, slug string) (*article.Article, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.bySlug(slug)
	if !ok {
		return nil, apperr.NotFound(i18n.ErrArticleNotFoundBySlug, slug)
	}
	return copyOf(stored), nil
}

func (repository *Repository) Update(_ context.Context, entity *article.Article) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.articles[entity.ID]
	if !ok {
		return apperr.NotFound(i18n.ErrArticleNotFoundBySlug, entity.Slug)
	}

	repository.clock = repository.clock.Add(time.Minute)
	stored.Title = entity.Title
	stored.Description = entity.Description
	stored.Body = entity.Body
	stored.UpdatedAt = repository.clock
	repository.articles[entity.ID] = stored

	entity.UpdatedAt = stored.UpdatedAt
	return nil
}

// Delete removes the article and runs [Repository.OnDelete]. Tag names stay
// in the tag set.
func (repository *Repository) Delete(_ context.Context, id int64) error {
	repository.mu.Lock()
	if _, ok := repository.articles[id]; !ok {
		repository.mu.Unlock()
		return apperr.NotFound(i18n.ErrArticleNotFound)
	}
	delete(repository.articles, id)
	repository.mu.Unlock()

	if repository.OnDelete != nil {
		repository.OnDelete(id)
	}
	return nil
}

func (repository *Repository) List(_ context.Context, filter article.Filter) ([]*article.Article, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var followed []int64
	if filter.FollowedBy != 0 && repository.directory != nil {
		followed = repository.directory.Followees(filter.FollowedBy)
	}

	matches := make([]article.Article, 0, len(repository.articles))
	for _, stored := range repository.articles {
		if filter.Tag != "" && !slices.Contains(stored.TagList, filter.Tag) {
			continue
		}
		if filter.Author != "" && repository.usernames[stored.AuthorID] != filter.Author {
			continue
		}
		if filter.FollowedBy != 0 && !slices.Contains(followed, stored.AuthorID) {
			continue
		}
		matches = append(matches, stored)
	}

	slices.SortFunc(matches, func(a, b article.Article) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	total := len(matches)
	start := min(filter.Offset, total)
	end := total
	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}

	page := make([]*article.Article, 0, end-start)
	for _, stored := range matches[start:end] {
		page = append(page, copyOf(stored))
	}
	return page, total, nil
}

func (repository *Repository) bySlug(slug string) (article.Article, bool) {
	for _, stored := range repository.articles {
		if stored.Slug == slug {
			return stored, true
		}
	}
	return article.Article{}, false
}

func copyOf(stored article.Article) *article.Article {
	stored.TagList = slices.Clone(stored.TagList)
	if stored.TagList == nil {
		stored.TagList = []string{}
	}
	return &stored
}
