// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jackc/pgerrcode"

	"github.com/taibuivan/scribe/internal/core/tag"
	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/dberr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/platform/metrics"
	"github.com/taibuivan/scribe/internal/platform/sanitize"
	"github.com/taibuivan/scribe/internal/platform/sec"
	"github.com/taibuivan/scribe/internal/platform/validate"
	"github.com/taibuivan/scribe/internal/users/profile"
	"github.com/taibuivan/scribe/pkg/slice"
	"github.com/taibuivan/scribe/pkg/slug"
)

// # Contracts

// AuthorDirectory resolves author profiles as seen by a viewer.
// [profile.Service] satisfies it.
type AuthorDirectory interface {
	Authors(context context.Context, viewerID int64, ids []int64) (map[int64]profile.Profile, error)
}

// # Service

// Service implements the article use cases.
type Service struct {
	repository Repository
	authors    AuthorDirectory
	sanitizer  sanitize.Sanitizer
	recorder   metrics.Recorder
	suffix     slug.SuffixFunc
}

// Option customizes a [Service].
type Option func(*Service)

// WithSuffixFunc replaces the random slug suffix source.
func WithSuffixFunc(suffix slug.SuffixFunc) Option {
	return func(service *Service) {
		service.suffix = suffix
	}
}

// NewService constructs the article [Service].
func NewService(
	repository Repository,
	authors AuthorDirectory,
	sanitizer sanitize.Sanitizer,
	recorder metrics.Recorder,
	options ...Option,
) *Service {
	service := &Service{
		repository: repository,
		authors:    authors,
		sanitizer:  sanitizer,
		recorder:   recorder,
		suffix:     slug.RandomSuffix,
	}
	for _, option := range options {
		option(service)
	}
	return service
}

// # Inputs

// CreateInput carries a new article.
type CreateInput struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

// UpdateInput carries a partial article update. Nil fields are kept.
type UpdateInput struct {
	Title       *string
	Description *string
	Body        *string
}

// # Use Cases

/*
Create publishes a new article for authorID.

Description: Validates the payload, sanitizes the body, allocates a unique
slug and persists the article with its tags in one transaction.

Parameters:
  - context: context.Context
  - authorID: int64
  - input: CreateInput

Returns:
  - *Article: The created article with author profile
  - err: Validation, Conflict (slug race) or storage failures
*/
func (service *Service) Create(context context.Context, authorID int64, input CreateInput) (*Article, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Body = service.sanitizer.Sanitize(input.Body)
	input.TagList = tag.Normalize(input.TagList)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, TitleMaxLen).
		Required(FieldDescription, input.Description).
		MaxLen(FieldDescription, input.Description, DescriptionMaxLen).
		Required(FieldBody, input.Body)
	if input.Title != "" {
		validator.Custom(FieldTitle, slug.From(input.Title) == "", i18n.ValTitleSymbols)
	}
	validateTags(validator, input.TagList)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	allocated, err := service.allocateSlug(context, input.Title)
	if err != nil {
		return nil, err
	}

	article := &Article{
		Slug:        allocated,
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		TagList:     input.TagList,
		AuthorID:    authorID,
	}
	if article.TagList == nil {
		article.TagList = []string{}
	}

	if err := service.repository.Create(context, article); err != nil {
		if dberr.ConstraintName(err, pgerrcode.UniqueViolation) == constraintSlug {
			return nil, apperr.Conflict(i18n.ErrArticleSlugTaken, article.Slug).WithCause(err)
		}
		return nil, fmt.Errorf("article_service_create_failed: %w", err)
	}

	// Response lists tags alphabetically, as reads do.
	slices.Sort(article.TagList)

	if err := service.hydrate(context, authorID, article); err != nil {
		return nil, err
	}

	service.recorder.RecordEvent(metrics.EventArticleCreated)
	ctxutil.GetLogger(context).InfoContext(context, "article_created",
		slog.Int64("article_id", article.ID),
		slog.String("slug", article.Slug),
		slog.Int("tag_count", len(article.TagList)),
	)

	return article, nil
}

/*
Get returns the article identified by slug as seen by viewerID.

Returns:
  - *Article: The article with author profile
  - err: apperr.NotFound when the slug is unknown
*/
func (service *Service) Get(context context.Context, viewerID int64, slug string) (*Article, error) {
	article, err := service.repository.FindBySlug(context, slug)
	if err != nil {
		return nil, err
	}

	if err := service.hydrate(context, viewerID, article); err != nil {
		return nil, err
	}
	return article, nil
}

/*
Update changes the title, description or body of an article.

Description: Lookup happens before the ownership check, and both happen before
any validation or write. The slug is immutable.

Parameters:
  - context: context.Context
  - actorID: int64
  - slug: string
  - input: UpdateInput

Returns:
  - *Article: The updated article
  - err: NotFound, Forbidden, Validation or storage failures
*/
func (service *Service) Update(context context.Context, actorID int64, slug string, input UpdateInput) (*Article, error) {
	article, err := service.repository.FindBySlug(context, slug)
	if err != nil {
		return nil, err
	}

	if err := sec.RequireOwner(actorID, article.AuthorID, i18n.ErrArticleNotAuthor); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, TitleMaxLen)
		article.Title = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		validator.Required(FieldDescription, description).MaxLen(FieldDescription, description, DescriptionMaxLen)
		article.Description = description
	}
	if input.Body != nil {
		body := service.sanitizer.Sanitize(*input.Body)
		validator.Required(FieldBody, body)
		article.Body = body
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.Update(context, article); err != nil {
		return nil, fmt.Errorf("article_service_update_failed: %w", err)
	}

	if err := service.hydrate(context, actorID, article); err != nil {
		return nil, err
	}

	service.recorder.RecordEvent(metrics.EventArticleUpdated)
	ctxutil.GetLogger(context).InfoContext(context, "article_updated",
		slog.Int64("article_id", article.ID),
		slog.String("slug", article.Slug),
	)

	return article, nil
}

/*
Delete removes an article, its tag links and its comments.

Description: NotFound is checked before Forbidden. The storage layer runs the
detach and delete steps in a single transaction.
*/
func (service *Service) Delete(context context.Context, actorID int64, slug string) error {
	article, err := service.repository.FindBySlug(context, slug)
	if err != nil {
		return err
	}

	if err := sec.RequireOwner(actorID, article.AuthorID, i18n.ErrArticleNotAuthor); err != nil {
		return err
	}

	if err := service.repository.Delete(context, article.ID); err != nil {
		return fmt.Errorf("article_service_delete_failed: %w", err)
	}

	service.recorder.RecordEvent(metrics.EventArticleDeleted)
	ctxutil.GetLogger(context).InfoContext(context, "article_deleted",
		slog.Int64("article_id", article.ID),
		slog.String("slug", article.Slug),
	)

	return nil
}

/*
List returns a page of articles matching filter and the total count.

Parameters:
  - context: context.Context
  - viewerID: int64 (0 when anonymous)
  - filter: Filter

Returns:
  - []*Article: Page of hydrated articles
  - int: Total matching articles
  - err: Storage failures
*/
func (service *Service) List(context context.Context, viewerID int64, filter Filter) ([]*Article, int, error) {
	filter.Tag = strings.TrimSpace(filter.Tag)
	filter.Author = strings.TrimSpace(filter.Author)

	articles, total, err := service.repository.List(context, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("article_service_list_failed: %w", err)
	}

	if err := service.hydrate(context, viewerID, articles...); err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// Feed lists articles written by authors that viewerID follows.
func (service *Service) Feed(context context.Context, viewerID int64, limit, offset int) ([]*Article, int, error) {
	return service.List(context, viewerID, Filter{FollowedBy: viewerID, Limit: limit, Offset: offset})
}

// # Helpers

// hydrate fills the author profile of every article in one lookup.
func (service *Service) hydrate(context context.Context, viewerID int64, articles ...*Article) error {
	if len(articles) == 0 {
		return nil
	}

	ids := slice.Map(articles, func(article *Article) int64 { return article.AuthorID })
	authors, err := service.authors.Authors(context, viewerID, ids)
	if err != nil {
		return fmt.Errorf("article_service_authors_failed: %w", err)
	}

	for _, article := range articles {
		article.Author = authors[article.AuthorID]
	}
	return nil
}

func validateTags(validator *validate.Validator, names []string) {
	for _, name := range names {
		if name == "" {
			validator.Custom(FieldTagList, true, i18n.ValTagName)
			return
		}
		if len([]rune(name)) > tag.NameMaxLen {
			validator.MaxLen(FieldTagList, name, tag.NameMaxLen)
			return
		}
	}
}
