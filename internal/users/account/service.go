// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/platform/sec"
	"github.com/taibuivan/scribe/internal/platform/validate"
	"github.com/taibuivan/scribe/internal/users/auth"
	"github.com/taibuivan/scribe/pkg/pointer"
)

// # Service Layer

// Service orchestrates business logic for the current user's account.
type Service struct {
	userRepository auth.UserRepository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(userRepo auth.UserRepository) *Service {
	return &Service{userRepository: userRepo}
}

/*
Current retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *auth.User: The hydrated user
  - error: Not found or execution failures
*/
func (service *Service) Current(context context.Context, userID int64) (*auth.User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_current_failed: %w", err)
	}
	return user, nil
}

/*
Update applies a partial set of changes to the user's account.

Description: Email and username must not belong to another account. A new
password must be confirmed and is re-hashed before storage.

Parameters:
  - context: context.Context
  - userID: int64
  - input: UpdateInput

Returns:
  - *auth.User: The updated user
  - error: Validation, BadRequest (identity taken) or storage failures
*/
func (service *Service) Update(context context.Context, userID int64, input UpdateInput) (*auth.User, error) {
	normalize(&input)
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	if input.isEmpty() {
		return user, nil
	}

	if input.Email != nil && *input.Email != user.Email {
		if err := auth.EnsureUnused(service.userRepository.FindByEmail(context, *input.Email)); err != nil {
			return nil, orTaken(err, i18n.ErrUserEmailTaken)
		}
		user.Email = *input.Email
	}

	if input.Username != nil && *input.Username != user.Username {
		if err := auth.EnsureUnused(service.userRepository.FindByUsername(context, *input.Username)); err != nil {
			return nil, orTaken(err, i18n.ErrUserUsernameTaken)
		}
		user.Username = *input.Username
	}

	if input.Password != nil {
		hashed, err := sec.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("account_service_hash_failed: %w", err)
		}
		user.PasswordHash = hashed
	}

	if input.Bio != nil {
		user.Bio = emptyToNil(*input.Bio)
	}
	if input.Image != nil {
		user.Image = emptyToNil(*input.Image)
	}

	if err := service.userRepository.Update(context, user); err != nil {
		return nil, auth.IdentityConflict(err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_account_updated",
		slog.Int64("user_id", userID),
		slog.Bool("password_changed", input.Password != nil),
	)

	return user, nil
}

// orTaken maps [auth.ErrIdentityTaken] to a BadRequest carrying key.
func orTaken(err error, key string) error {
	if errors.Is(err, auth.ErrIdentityTaken) {
		return apperr.BadRequest(key)
	}
	return fmt.Errorf("account_service_identity_lookup_failed: %w", err)
}

func normalize(input *UpdateInput) {
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		input.Email = &email
	}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		input.Username = &username
	}
}

func validateUpdate(input UpdateInput) error {
	validator := &validate.Validator{}

	if input.Email != nil {
		validator.Required(auth.FieldEmail, *input.Email).Email(auth.FieldEmail, *input.Email)
	}
	if input.Username != nil {
		validator.Required(auth.FieldUsername, *input.Username).
			MinLen(auth.FieldUsername, *input.Username, auth.UsernameMinLen).
			MaxLen(auth.FieldUsername, *input.Username, auth.UsernameMaxLen)
	}
	if input.Password != nil {
		validator.MinLen(auth.FieldPassword, *input.Password, auth.PasswordMinLen)

		mismatch := pointer.Val(input.ConfirmPassword) != *input.Password
		validator.Custom(auth.FieldConfirmPassword, mismatch, i18n.ValMismatch)
	}
	if input.Bio != nil {
		validator.MaxLen(auth.FieldBio, *input.Bio, auth.BioMaxLen)
	}
	if input.Image != nil {
		validator.URL(auth.FieldImage, *input.Image)
	}

	return validator.Err()
}

func emptyToNil(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
