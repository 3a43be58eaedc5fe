// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "github.com/taibuivan/scribe/internal/platform/apperr"

// # Ownership Guard

// Decision is the outcome of an ownership check.
type Decision int

const (
	// Deny means the actor may not mutate the resource.
	Deny Decision = iota

	// Allow means the actor owns the resource.
	Allow
)

// Authorize compares the acting user with the resource owner.
// Anonymous actors (ID 0) are always denied.
func Authorize(actorID, ownerID int64) Decision {
	if actorID == 0 || actorID != ownerID {
		return Deny
	}
	return Allow
}

/*
RequireOwner converts a [Deny] decision into a Forbidden error.

Callers must have already resolved the resource so that a missing resource
surfaces as NotFound before ownership is evaluated.

Parameters:
  - actorID: int64 (authenticated user)
  - ownerID: int64 (author of the resource)
  - denyKey: string (i18n key rendered on denial)

Returns:
  - error: apperr.Forbidden on denial, otherwise nil
*/
func RequireOwner(actorID, ownerID int64, denyKey string) error {
	if Authorize(actorID, ownerID) == Deny {
		return apperr.Forbidden(denyKey)
	}
	return nil
}
