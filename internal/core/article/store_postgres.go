// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/scribe/internal/core/tag"
	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/database/schema"
	"github.com/taibuivan/scribe/internal/platform/dberr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/platform/postgres"
)

// PostgresRepository implements [Repository] with pgx.
//
// Multi-statement writes run through [postgres.WithTx]; tag rows are handled
// by the injected [tag.Linker] on the same transaction.
type PostgresRepository struct {
	db   postgres.Conn
	tags tag.Linker
}

// NewPostgresRepository creates an article repository.
func NewPostgresRepository(db postgres.Conn, tags tag.Linker) *PostgresRepository {
	return &PostgresRepository{db: db, tags: tags}
}

// articleSelect projects an article row with its aggregated tag names.
var articleSelect = fmt.Sprintf(`
	SELECT
		a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
		COALESCE((
			SELECT array_agg(t.%s ORDER BY t.%s)
			FROM %s t
			JOIN %s at ON t.%s = at.%s
			WHERE at.%s = a.%s
		), '{}') AS taglist`,
	schema.CoreArticle.ID,
	schema.CoreArticle.Slug,
	schema.CoreArticle.Title,
	schema.CoreArticle.Description,
	schema.CoreArticle.Body,
	schema.CoreArticle.AuthorID,
	schema.CoreArticle.CreatedAt,
	schema.CoreArticle.UpdatedAt,
	schema.CoreTag.Name, schema.CoreTag.Name,
	schema.CoreTag.Table,
	schema.CoreArticleTag.Table, schema.CoreTag.ID, schema.CoreArticleTag.TagID,
	schema.CoreArticleTag.ArticleID, schema.CoreArticle.ID,
)

func articleDest(article *Article) []any {
	return []any{
		&article.ID,
		&article.Slug,
		&article.Title,
		&article.Description,
		&article.Body,
		&article.AuthorID,
		&article.CreatedAt,
		&article.UpdatedAt,
		&article.TagList,
	}
}

// SlugExists checks the unique slug index.
func (repository *PostgresRepository) SlugExists(context context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CoreArticle.Table, schema.CoreArticle.Slug)

	var exists bool
	if err := repository.db.QueryRow(context, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "article_slug_exists")
	}
	return exists, nil
}

/*
Create persists an article and connects its tags.

Description: The insert and the tag upsert share one transaction. An empty tag
list issues no tag statement at all.

Parameters:
  - context: context.Context
  - article: *Article (Slug already allocated, TagList normalized)

Returns:
  - error: Conflict on a slug race, or storage failures
*/
func (repository *PostgresRepository) Create(ctx context.Context, article *Article) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s`,
		schema.CoreArticle.Table,
		schema.CoreArticle.Slug, schema.CoreArticle.Title, schema.CoreArticle.Description,
		schema.CoreArticle.Body, schema.CoreArticle.AuthorID,
		schema.CoreArticle.ID, schema.CoreArticle.CreatedAt, schema.CoreArticle.UpdatedAt,
	)

	err := postgres.WithTx(ctx, repository.db, func(ctx context.Context, tx postgres.DBTX) error {
		err := tx.QueryRow(ctx, query,
			article.Slug,
			article.Title,
			article.Description,
			article.Body,
			article.AuthorID,
		).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
		if err != nil {
			return err
		}

		if len(article.TagList) == 0 {
			return nil
		}
		return repository.tags.Connect(ctx, tx, article.ID, article.TagList)
	})

	return dberr.Wrap(err, "article_create")
}

// FindBySlug loads a single article by slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Article, error) {
	query := articleSelect + fmt.Sprintf(` FROM %s a WHERE a.%s = $1`,
		schema.CoreArticle.Table, schema.CoreArticle.Slug)

	article := &Article{}
	if err := repository.db.QueryRow(context, query, slug).Scan(articleDest(article)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(i18n.ErrArticleNotFoundBySlug, slug)
		}
		return nil, dberr.Wrap(err, "article_find_by_slug")
	}

	return article, nil
}

// Update rewrites the mutable text fields. The slug never changes.
func (repository *PostgresRepository) Update(context context.Context, article *Article) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = now()
		WHERE %s = $4
		RETURNING %s`,
		schema.CoreArticle.Table,
		schema.CoreArticle.Title, schema.CoreArticle.Description, schema.CoreArticle.Body,
		schema.CoreArticle.UpdatedAt,
		schema.CoreArticle.ID,
		schema.CoreArticle.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		article.Title,
		article.Description,
		article.Body,
		article.ID,
	).Scan(&article.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(i18n.ErrArticleNotFoundBySlug, article.Slug)
		}
		return dberr.Wrap(err, "article_update")
	}

	return nil
}

/*
Delete runs the deletion sequence.

Description:
 1. Detach every tag link (the join table does not cascade).
 2. Delete the article row; comments cascade.

Both steps commit together. If the row vanished in between (concurrent delete),
the transaction rolls back and NotFound is returned.
*/
func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreArticle.Table, schema.CoreArticle.ID)

	err := postgres.WithTx(ctx, repository.db, func(ctx context.Context, tx postgres.DBTX) error {
		if err := repository.tags.Detach(ctx, tx, id); err != nil {
			return err
		}

		commandTag, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if commandTag.RowsAffected() == 0 {
			return apperr.NotFound(i18n.ErrArticleNotFound)
		}
		return nil
	})

	return dberr.Wrap(err, "article_delete")
}

/*
List returns a filtered page of articles.

Description: COUNT(*) OVER() returns the total alongside the page so a single
query serves both. Filters are appended as positional arguments.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Article, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(articleSelect)
	queryBuilder.WriteString(`, COUNT(*) OVER() AS total_count`)
	queryBuilder.WriteString(fmt.Sprintf(` FROM %s a WHERE TRUE`, schema.CoreArticle.Table))

	// Tag filtering
	if filter.Tag != "" {
		queryBuilder.WriteString(fmt.Sprintf(`
			AND EXISTS (
				SELECT 1 FROM %s at
				JOIN %s t ON t.%s = at.%s
				WHERE at.%s = a.%s AND t.%s = $%d
			)`,
			schema.CoreArticleTag.Table,
			schema.CoreTag.Table, schema.CoreTag.ID, schema.CoreArticleTag.TagID,
			schema.CoreArticleTag.ArticleID, schema.CoreArticle.ID, schema.CoreTag.Name, argID,
		))
		args = append(args, filter.Tag)
		argID++
	}

	// Author filtering
	if filter.Author != "" {
		queryBuilder.WriteString(fmt.Sprintf(`
			AND a.%s = (SELECT u.%s FROM %s u WHERE u.%s = $%d)`,
			schema.CoreArticle.AuthorID,
			schema.UserAccount.ID, schema.UserAccount.Table, schema.UserAccount.Username, argID,
		))
		args = append(args, filter.Author)
		argID++
	}

	// Feed filtering
	if filter.FollowedBy != 0 {
		queryBuilder.WriteString(fmt.Sprintf(`
			AND a.%s IN (SELECT f.%s FROM %s f WHERE f.%s = $%d)`,
			schema.CoreArticle.AuthorID,
			schema.UserFollow.FollowingID, schema.UserFollow.Table, schema.UserFollow.FollowerID, argID,
		))
		args = append(args, filter.FollowedBy)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(` ORDER BY a.%s DESC, a.%s DESC`,
		schema.CoreArticle.CreatedAt, schema.CoreArticle.ID))
	queryBuilder.WriteString(fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argID, argID+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "article_list")
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	var totalCount int

	for rows.Next() {
		article := &Article{}
		if err := rows.Scan(append(articleDest(article), &totalCount)...); err != nil {
			return nil, 0, dberr.Wrap(err, "article_list_scan")
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "article_list_rows")
	}

	return articles, totalCount, nil
}
