// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import "context"

// # Repository Contracts

// Repository defines the persistence contract for profiles and follow edges.
type Repository interface {

	/*
		FindByUsername loads a profile and whether viewerID follows it.

		Parameters:
		  - context: context.Context
		  - username: string
		  - viewerID: int64 (0 for anonymous viewers)

		Returns:
		  - *Profile: Hydrated profile
		  - error: apperr.NotFound or database failures
	*/
	FindByUsername(context context.Context, username string, viewerID int64) (*Profile, error)

	/*
		FindByIDs loads profiles for a set of users in a single query.

		Parameters:
		  - context: context.Context
		  - ids: []int64
		  - viewerID: int64

		Returns:
		  - map[int64]Profile: Profiles keyed by user ID; unknown IDs are absent
		  - error: Database failures
	*/
	FindByIDs(context context.Context, ids []int64, viewerID int64) (map[int64]Profile, error)

	/*
		Follow inserts the edge follower -> followee if it does not exist.

		Returns:
		  - bool: true when a new edge was created
		  - error: Database failures
	*/
	Follow(context context.Context, followerID, followeeID int64) (bool, error)

	/*
		Unfollow deletes the edge follower -> followee if it exists.

		Returns:
		  - bool: true when an edge was removed
		  - error: Database failures
	*/
	Unfollow(context context.Context, followerID, followeeID int64) (bool, error)
}
