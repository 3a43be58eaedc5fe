// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/platform/metrics"
	"github.com/taibuivan/scribe/pkg/slice"
)

// Service implements profile reads and the follow state machine.
type Service struct {
	repository Repository
	recorder   metrics.Recorder
}

// NewService constructs a new profile [Service].
func NewService(repository Repository, recorder metrics.Recorder) *Service {
	return &Service{repository: repository, recorder: recorder}
}

/*
Get returns the profile of username as seen by viewerID.

Parameters:
  - context: context.Context
  - viewerID: int64 (0 when anonymous)
  - username: string

Returns:
  - *Profile: Profile with the viewer's follow state
  - error: apperr.NotFound when no such user exists
*/
func (service *Service) Get(context context.Context, viewerID int64, username string) (*Profile, error) {
	return service.repository.FindByUsername(context, username, viewerID)
}

/*
Follow transitions (followerID, username) from NotFollowing to Following.

Description: The target is resolved first, so an unknown username is NotFound
even for self-referencing requests. Self-follow and repeated follow are
BadRequest.

Returns:
  - *Profile: Target profile with Following set
  - error: NotFound, BadRequest or storage failures
*/
func (service *Service) Follow(context context.Context, followerID int64, username string) (*Profile, error) {
	target, err := service.repository.FindByUsername(context, username, followerID)
	if err != nil {
		return nil, err
	}

	if target.ID == followerID {
		return nil, apperr.BadRequest(i18n.ErrProfileFollowSelf)
	}

	created, err := service.repository.Follow(context, followerID, target.ID)
	if err != nil {
		return nil, fmt.Errorf("profile_service_follow_failed: %w", err)
	}
	if !created {
		return nil, apperr.BadRequest(i18n.ErrProfileAlreadyFollowing, target.Username)
	}

	target.Following = true

	service.recorder.RecordEvent(metrics.EventUserFollowed)
	ctxutil.GetLogger(context).InfoContext(context, "user_followed",
		slog.Int64("follower_id", followerID),
		slog.Int64("followee_id", target.ID),
	)

	return target, nil
}

/*
Unfollow transitions (followerID, username) from Following to NotFollowing.

Returns:
  - *Profile: Target profile with Following cleared
  - error: NotFound, BadRequest or storage failures
*/
func (service *Service) Unfollow(context context.Context, followerID int64, username string) (*Profile, error) {
	target, err := service.repository.FindByUsername(context, username, followerID)
	if err != nil {
		return nil, err
	}

	if target.ID == followerID {
		return nil, apperr.BadRequest(i18n.ErrProfileUnfollowSelf)
	}

	removed, err := service.repository.Unfollow(context, followerID, target.ID)
	if err != nil {
		return nil, fmt.Errorf("profile_service_unfollow_failed: %w", err)
	}
	if !removed {
		return nil, apperr.BadRequest(i18n.ErrProfileNotFollowing, target.Username)
	}

	target.Following = false

	service.recorder.RecordEvent(metrics.EventUserUnfollowed)
	ctxutil.GetLogger(context).InfoContext(context, "user_unfollowed",
		slog.Int64("follower_id", followerID),
		slog.Int64("followee_id", target.ID),
	)

	return target, nil
}

/*
Authors resolves the author profiles of a batch of articles or comments.

Description: IDs are de-duplicated before hitting storage. Missing IDs are
absent from the result.
*/
func (service *Service) Authors(context context.Context, viewerID int64, ids []int64) (map[int64]Profile, error) {
	profiles, err := service.repository.FindByIDs(context, slice.Unique(ids), viewerID)
	if err != nil {
		return nil, fmt.Errorf("profile_service_authors_failed: %w", err)
	}
	return profiles, nil
}
