// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"fmt"

	"github.com/taibuivan/scribe/internal/platform/database/schema"
	"github.com/taibuivan/scribe/internal/platform/dberr"
	"github.com/taibuivan/scribe/internal/platform/postgres"
)

// PostgresRepository implements [Repository] and [Linker].
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository creates a tag repository reading through db.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all tag names.
func (repository *PostgresRepository) List(context context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.CoreTag.Name, schema.CoreTag.Table, schema.CoreTag.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tags_rows")
	}

	return names, nil
}

// connectQuery upserts the names and links the resulting IDs in one round trip.
// The no-op DO UPDATE makes RETURNING yield the IDs of existing rows too.
var connectQuery = fmt.Sprintf(`
	WITH upserted AS (
		INSERT INTO %s (%s)
		SELECT unnest($2::text[])
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s
	)
	INSERT INTO %s (%s, %s)
	SELECT $1::bigint, %s FROM upserted
	ON CONFLICT DO NOTHING`,
	schema.CoreTag.Table, schema.CoreTag.Name,
	schema.CoreTag.Name, schema.CoreTag.Name, schema.CoreTag.Name,
	schema.CoreTag.ID,
	schema.CoreArticleTag.Table, schema.CoreArticleTag.ArticleID, schema.CoreArticleTag.TagID,
	schema.CoreTag.ID,
)

/*
Connect upserts tags by name and links them to the article.

Description: Must be called with the transaction that created the article.
Duplicate names in one call would make the upsert touch a row twice, so
callers pass [Normalize]d input.
*/
func (repository *PostgresRepository) Connect(context context.Context, db postgres.DBTX, articleID int64, names []string) error {
	if _, err := db.Exec(context, connectQuery, articleID, names); err != nil {
		return dberr.Wrap(err, "connect_tags")
	}
	return nil
}

// Detach removes the article's tag links.
func (repository *PostgresRepository) Detach(context context.Context, db postgres.DBTX, articleID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreArticleTag.Table, schema.CoreArticleTag.ArticleID)

	if _, err := db.Exec(context, query, articleID); err != nil {
		return dberr.Wrap(err, "detach_tags")
	}
	return nil
}
