// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/dberr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/platform/metrics"
	"github.com/taibuivan/scribe/internal/platform/sec"
	"github.com/taibuivan/scribe/internal/platform/validate"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID int64, username, email string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed with care.
type Service struct {
	userRepository         UserRepository
	refreshTokenRepository RefreshTokenRepository
	tokenProvider          TokenProvider
	recorder               metrics.Recorder
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	refreshRepo RefreshTokenRepository,
	tokenProv TokenProvider,
	recorder metrics.Recorder,
) *Service {
	return &Service{
		userRepository:         userRepo,
		refreshTokenRepository: refreshRepo,
		tokenProvider:          tokenProv,
		recorder:               recorder,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Bio      *string
	Image    *string
}

func (input *RegisterInput) normalize() {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func (input RegisterInput) validate() error {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, UsernameMinLen).
		MaxLen(FieldUsername, input.Username, UsernameMaxLen).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, PasswordMinLen)

	if input.Bio != nil {
		validator.MaxLen(FieldBio, *input.Bio, BioMaxLen)
	}
	if input.Image != nil {
		validator.URL(FieldImage, *input.Image)
	}

	return validator.Err()
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Email and username must be unused. Duplicates are reported as
BadRequest, including the case where a concurrent registration wins the race
and the unique constraint fires.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Validation, BadRequest (identity taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	// Verify email uniqueness.
	if err := EnsureUnused(service.userRepository.FindByEmail(context, input.Email)); err != nil {
		if errors.Is(err, ErrIdentityTaken) {
			return nil, apperr.BadRequest(i18n.ErrUserEmailTaken)
		}
		return nil, fmt.Errorf("auth_service_email_lookup_failed: %w", err)
	}

	// Verify username uniqueness.
	if err := EnsureUnused(service.userRepository.FindByUsername(context, input.Username)); err != nil {
		if errors.Is(err, ErrIdentityTaken) {
			return nil, apperr.BadRequest(i18n.ErrUserUsernameTaken)
		}
		return nil, fmt.Errorf("auth_service_username_lookup_failed: %w", err)
	}

	// Prevent storing plain-text passwords.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Bio:          input.Bio,
		Image:        input.Image,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, IdentityConflict(err)
	}

	service.recorder.RecordEvent(metrics.EventUserRegistered)
	ctxutil.GetLogger(context).InfoContext(context, "user_registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// ErrIdentityTaken marks an email or username owned by another account.
var ErrIdentityTaken = errors.New("identity taken")

// EnsureUnused turns a successful user lookup into [ErrIdentityTaken].
// NotFound means the value is free; other errors pass through.
//
//	err := auth.EnsureUnused(users.FindByEmail(ctx, email))
func EnsureUnused(_ *User, err error) error {
	switch {
	case err == nil:
		return ErrIdentityTaken
	case apperr.IsNotFound(err):
		return nil
	default:
		return err
	}
}

// IdentityConflict maps a unique violation on users.account to the matching
// BadRequest. Other errors are returned unchanged.
func IdentityConflict(err error) error {
	switch dberr.ConstraintName(err, pgerrcode.UniqueViolation) {
	case constraintEmail:
		return apperr.BadRequest(i18n.ErrUserEmailTaken)
	case constraintUsername:
		return apperr.BadRequest(i18n.ErrUserUsernameTaken)
	default:
		return err
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// Session represents a successfully established user session.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *User
}

/*
Login validates user credentials and issues security tokens.

Description: Unknown email and wrong password produce the same Unauthorized
error to prevent account enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Session: Access and refresh tokens plus the user
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	validator := &validate.Validator{}
	if err := validator.Required(FieldEmail, email).Required(FieldPassword, input.Password).Err(); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized(i18n.ErrAuthBadCredentials)
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// bcrypt comparison is constant-time.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized(i18n.ErrAuthBadCredentials)
	}

	session, err := service.issue(context, user)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_logged_in", slog.Int64("user_id", user.ID))
	return session, nil
}

/*
Refresh implements the Refresh Token Rotation mechanism.

Description: The presented token is consumed atomically, so replaying it fails,
and a fresh access/refresh pair is issued.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - *Session: New session credentials
  - err: Unauthorized or storage failures
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*Session, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperr.Unauthorized(i18n.ErrAuthInvalidRefresh)
	}

	userID, err := service.refreshTokenRepository.Consume(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized(i18n.ErrAuthInvalidRefresh)
		}
		return nil, fmt.Errorf("auth_service_refresh_lookup_failed: %w", err)
	}

	return service.issue(context, user)
}

/*
Logout permanently revokes a refresh token.

Description: Idempotent; an unknown token is treated as already revoked.
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := service.refreshTokenRepository.Delete(context, sec.HashToken(refreshToken)); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	return nil
}

// issue creates an access token and a stored refresh token for user.
func (service *Service) issue(context context.Context, user *User) (*Session, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, user.Email, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken()
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	if err := service.refreshTokenRepository.Set(context, sec.HashToken(refreshToken), user.ID, constants.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_store_failed: %w", err)
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
