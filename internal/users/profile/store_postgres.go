// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

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

// PostgresRepository implements [Repository] over users.account and users.follow.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewRepository creates a new PostgreSQL profile repository.
func NewRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// profileSelect projects a profile row; the viewer ID is always $1.
var profileSelect = fmt.Sprintf(`
	SELECT a.%s, a.%s, a.%s, a.%s,
		EXISTS (
			SELECT 1 FROM %s f
			WHERE f.%s = $1 AND f.%s = a.%s
		) AS following
	FROM %s a`,
	schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Bio, schema.UserAccount.Image,
	schema.UserFollow.Table,
	schema.UserFollow.FollowerID, schema.UserFollow.FollowingID, schema.UserAccount.ID,
	schema.UserAccount.Table,
)

func scanProfile(row pgx.Row) (Profile, error) {
	var profile Profile
	err := row.Scan(&profile.ID, &profile.Username, &profile.Bio, &profile.Image, &profile.Following)
	return profile, err
}

// FindByUsername retrieves a profile by handle with the viewer's follow state.
func (repository *PostgresRepository) FindByUsername(context context.Context, username string, viewerID int64) (*Profile, error) {
	query := profileSelect + fmt.Sprintf(` WHERE a.%s = $2`, schema.UserAccount.Username)

	profile, err := scanProfile(repository.db.QueryRow(context, query, viewerID, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(i18n.ErrProfileNotFound)
		}
		return nil, dberr.Wrap(err, "postgres_profile_find_by_username")
	}

	return &profile, nil
}

// FindByIDs batches profile lookups for article and comment authors.
func (repository *PostgresRepository) FindByIDs(context context.Context, ids []int64, viewerID int64) (map[int64]Profile, error) {
	profiles := make(map[int64]Profile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	query := profileSelect + fmt.Sprintf(` WHERE a.%s = ANY($2)`, schema.UserAccount.ID)

	rows, err := repository.db.Query(context, query, viewerID, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_profile_find_by_ids")
	}
	defer rows.Close()

	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "postgres_profile_scan")
		}
		profiles[profile.ID] = profile
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "postgres_profile_rows")
	}

	return profiles, nil
}

/*
Follow inserts a follow edge.

Description: ON CONFLICT DO NOTHING makes the existence check and the write a
single statement; zero affected rows means the edge was already present.
*/
func (repository *PostgresRepository) Follow(context context.Context, followerID, followeeID int64) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		schema.UserFollow.Table, schema.UserFollow.FollowerID, schema.UserFollow.FollowingID,
	)

	tag, err := repository.db.Exec(context, query, followerID, followeeID)
	if err != nil {
		return false, dberr.Wrap(err, "postgres_profile_follow")
	}

	return tag.RowsAffected() == 1, nil
}

// Unfollow deletes a follow edge and reports whether one existed.
func (repository *PostgresRepository) Unfollow(context context.Context, followerID, followeeID int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.UserFollow.Table, schema.UserFollow.FollowerID, schema.UserFollow.FollowingID)

	tag, err := repository.db.Exec(context, query, followerID, followeeID)
	if err != nil {
		return false, dberr.Wrap(err, "postgres_profile_unfollow")
	}

	return tag.RowsAffected() == 1, nil
}
