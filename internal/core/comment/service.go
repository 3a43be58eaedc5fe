// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/scribe/internal/core/article"
	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/platform/metrics"
	"github.com/taibuivan/scribe/internal/platform/sanitize"
	"github.com/taibuivan/scribe/internal/platform/sec"
	"github.com/taibuivan/scribe/internal/platform/validate"
	"github.com/taibuivan/scribe/pkg/slice"
)

// ArticleFinder resolves the parent article of a thread.
// [article.Repository] satisfies it.
type ArticleFinder interface {
	FindBySlug(context context.Context, slug string) (*article.Article, error)
}

// Service implements the comment use cases.
type Service struct {
	repository Repository
	articles   ArticleFinder
	authors    article.AuthorDirectory
	sanitizer  sanitize.Sanitizer
	recorder   metrics.Recorder
}

// NewService constructs the comment [Service].
func NewService(
	repository Repository,
	articles ArticleFinder,
	authors article.AuthorDirectory,
	sanitizer sanitize.Sanitizer,
	recorder metrics.Recorder,
) *Service {
	return &Service{
		repository: repository,
		articles:   articles,
		authors:    authors,
		sanitizer:  sanitizer,
		recorder:   recorder,
	}
}

/*
Add posts a comment on the article identified by slug.

Parameters:
  - context: context.Context
  - authorID: int64
  - slug: string
  - body: string

Returns:
  - *Comment: The stored comment with author profile
  - err: NotFound (unknown slug), Validation or storage failures
*/
func (service *Service) Add(context context.Context, authorID int64, slug, body string) (*Comment, error) {
	parent, err := service.articles.FindBySlug(context, slug)
	if err != nil {
		return nil, err
	}

	body = service.sanitizer.Sanitize(body)

	validator := &validate.Validator{}
	if err := validator.Required(FieldBody, body).MaxLen(FieldBody, body, BodyMaxLen).Err(); err != nil {
		return nil, err
	}

	comment := &Comment{
		Body:      body,
		ArticleID: parent.ID,
		AuthorID:  authorID,
	}
	if err := service.repository.Create(context, comment); err != nil {
		return nil, fmt.Errorf("comment_service_create_failed: %w", err)
	}

	if err := service.hydrate(context, authorID, comment); err != nil {
		return nil, err
	}

	service.recorder.RecordEvent(metrics.EventCommentCreated)
	ctxutil.GetLogger(context).InfoContext(context, "comment_created",
		slog.Int64("comment_id", comment.ID),
		slog.String("slug", slug),
	)

	return comment, nil
}

// List returns the thread of the article identified by slug, oldest first.
func (service *Service) List(context context.Context, viewerID int64, slug string) ([]*Comment, error) {
	parent, err := service.articles.FindBySlug(context, slug)
	if err != nil {
		return nil, err
	}

	comments, err := service.repository.ListByArticle(context, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("comment_service_list_failed: %w", err)
	}

	if err := service.hydrate(context, viewerID, comments...); err != nil {
		return nil, err
	}
	return comments, nil
}

/*
Delete removes a comment from the article identified by slug.

Description: The article is resolved first, then the comment, which must
belong to that article. Only then is the author compared with actorID.

Returns:
  - err: NotFound, Forbidden or storage failures
*/
func (service *Service) Delete(context context.Context, actorID int64, slug string, commentID int64) error {
	parent, err := service.articles.FindBySlug(context, slug)
	if err != nil {
		return err
	}

	comment, err := service.repository.FindByID(context, commentID)
	if err != nil {
		return err
	}
	if comment.ArticleID != parent.ID {
		return apperr.NotFound(i18n.ErrCommentNotFound)
	}

	if err := sec.RequireOwner(actorID, comment.AuthorID, i18n.ErrCommentNotAuthor); err != nil {
		return err
	}

	if err := service.repository.Delete(context, comment.ID); err != nil {
		return fmt.Errorf("comment_service_delete_failed: %w", err)
	}

	service.recorder.RecordEvent(metrics.EventCommentDeleted)
	ctxutil.GetLogger(context).InfoContext(context, "comment_deleted",
		slog.Int64("comment_id", comment.ID),
		slog.String("slug", slug),
	)

	return nil
}

func (service *Service) hydrate(context context.Context, viewerID int64, comments ...*Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := slice.Map(comments, func(comment *Comment) int64 { return comment.AuthorID })
	authors, err := service.authors.Authors(context, viewerID, ids)
	if err != nil {
		return fmt.Errorf("comment_service_authors_failed: %w", err)
	}

	for _, comment := range comments {
		comment.Author = authors[comment.AuthorID]
	}
	return nil
}
