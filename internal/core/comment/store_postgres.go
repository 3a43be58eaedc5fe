// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/database/schema"
	"github.com/taibuivan/scribe/internal/platform/dberr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/platform/postgres"
)

// PostgresRepository implements [Repository] with pgx.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository creates a comment repository.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var commentSelect = fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s`,
	schema.CoreComment.ID,
	schema.CoreComment.Body,
	schema.CoreComment.ArticleID,
	schema.CoreComment.AuthorID,
	schema.CoreComment.CreatedAt,
	schema.CoreComment.UpdatedAt,
	schema.CoreComment.Table,
)

func commentDest(comment *Comment) []any {
	return []any{
		&comment.ID,
		&comment.Body,
		&comment.ArticleID,
		&comment.AuthorID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	}
}

// Create persists a comment.
func (repository *PostgresRepository) Create(context context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s`,
		schema.CoreComment.Table,
		schema.CoreComment.Body, schema.CoreComment.ArticleID, schema.CoreComment.AuthorID,
		schema.CoreComment.ID, schema.CoreComment.CreatedAt, schema.CoreComment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		comment.Body,
		comment.ArticleID,
		comment.AuthorID,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)

	return dberr.Wrap(err, "comment_create")
}

// ListByArticle loads every comment of an article.
func (repository *PostgresRepository) ListByArticle(context context.Context, articleID int64) ([]*Comment, error) {
	query := commentSelect + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		schema.CoreComment.ArticleID, schema.CoreComment.CreatedAt, schema.CoreComment.ID)

	rows, err := repository.db.Query(context, query, articleID)
	if err != nil {
		return nil, dberr.Wrap(err, "comment_list")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		comment := &Comment{}
		if err := rows.Scan(commentDest(comment)...); err != nil {
			return nil, dberr.Wrap(err, "comment_list_scan")
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "comment_list_rows")
	}
	return comments, nil
}

// FindByID loads a single comment.
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Comment, error) {
	query := commentSelect + fmt.Sprintf(` WHERE %s = $1`, schema.CoreComment.ID)

	comment := &Comment{}
	if err := repository.db.QueryRow(context, query, id).Scan(commentDest(comment)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(i18n.ErrCommentNotFound)
		}
		return nil, dberr.Wrap(err, "comment_find_by_id")
	}
	return comment, nil
}

// Delete removes a comment by ID.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreComment.Table, schema.CoreComment.ID)

	commandTag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "comment_delete")
	}
	if commandTag.RowsAffected() == 0 {
		return apperr.NotFound(i18n.ErrCommentNotFound)
	}
	return nil
}
