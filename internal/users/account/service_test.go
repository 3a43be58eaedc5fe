// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/platform/sec"
	"github.com/taibuivan/scribe/internal/users/account"
	"github.com/taibuivan/scribe/internal/users/auth"
	"github.com/taibuivan/scribe/internal/users/auth/authtest"
	"github.com/taibuivan/scribe/pkg/pointer"
)

func seed(t *testing.T) (*authtest.Users, int64, int64) {
	t.Helper()

	hash, err := sec.HashPassword("jakejake")
	require.NoError(t, err)

	users := authtest.NewUsers()
	jake := users.Seed(auth.User{Username: "jake", Email: "jake@example.com", PasswordHash: hash})
	anna := users.Seed(auth.User{Username: "anna", Email: "anna@example.com", PasswordHash: hash})
	return users, jake, anna
}

/*
TestService_Update verifies partial updates, uniqueness and password change.
*/
func TestService_Update(t *testing.T) {
	t.Run("partial_update_keeps_other_fields", func(t *testing.T) {
		users, jake, _ := seed(t)
		service := account.NewService(users)

		user, err := service.Update(context.Background(), jake, account.UpdateInput{
			Bio:   pointer.To("I like to skateboard"),
			Image: pointer.To("https://i.stack.imgur.com/xHWG8.jpg"),
		})
		require.NoError(t, err)

		assert.Equal(t, "jake", user.Username)
		assert.Equal(t, "jake@example.com", user.Email)
		assert.Equal(t, "I like to skateboard", pointer.Val(user.Bio))
	})

	t.Run("own_values_are_not_conflicts", func(t *testing.T) {
		users, jake, _ := seed(t)
		service := account.NewService(users)

		_, err := service.Update(context.Background(), jake, account.UpdateInput{
			Email:    pointer.To("JAKE@example.com"),
			Username: pointer.To("jake"),
		})
		assert.NoError(t, err)
	})

	t.Run("empty_bio_clears", func(t *testing.T) {
		users, jake, _ := seed(t)
		service := account.NewService(users)

		_, err := service.Update(context.Background(), jake, account.UpdateInput{Bio: pointer.To("bio")})
		require.NoError(t, err)

		user, err := service.Update(context.Background(), jake, account.UpdateInput{Bio: pointer.To("")})
		require.NoError(t, err)
		assert.Nil(t, user.Bio)
	})

	t.Run("password_change", func(t *testing.T) {
		users, jake, _ := seed(t)
		service := account.NewService(users)

		_, err := service.Update(context.Background(), jake, account.UpdateInput{
			Password:        pointer.To("new-password"),
			ConfirmPassword: pointer.To("new-password"),
		})
		require.NoError(t, err)

		user, err := service.Current(context.Background(), jake)
		require.NoError(t, err)
		assert.True(t, sec.CheckPasswordHash("new-password", user.PasswordHash))
	})

	tests := []struct {
		name  string
		input account.UpdateInput
		code  string
		key   string
	}{
		{
			name:  "email_owned_by_other",
			input: account.UpdateInput{Email: pointer.To("anna@example.com")},
			code:  apperr.CodeBadRequest,
			key:   i18n.ErrUserEmailTaken,
		},
		{
			name:  "username_owned_by_other",
			input: account.UpdateInput{Username: pointer.To("anna")},
			code:  apperr.CodeBadRequest,
			key:   i18n.ErrUserUsernameTaken,
		},
		{
			name:  "password_mismatch",
			input: account.UpdateInput{Password: pointer.To("new-password"), ConfirmPassword: pointer.To("other-password")},
			code:  apperr.CodeValidation,
			key:   i18n.ErrValidation,
		},
		{
			name:  "password_without_confirmation",
			input: account.UpdateInput{Password: pointer.To("new-password")},
			code:  apperr.CodeValidation,
			key:   i18n.ErrValidation,
		},
		{
			name:  "invalid_image",
			input: account.UpdateInput{Image: pointer.To("not a url")},
			code:  apperr.CodeValidation,
			key:   i18n.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, jake, _ := seed(t)
			service := account.NewService(users)

			_, err := service.Update(context.Background(), jake, tt.input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr, "got %v", err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.key, appErr.Key)
		})
	}
}

/*
TestService_Current verifies the missing-user path.
*/
func TestService_Current(t *testing.T) {
	users, _, _ := seed(t)
	service := account.NewService(users)

	_, err := service.Current(context.Background(), 99)
	assert.True(t, apperr.IsNotFound(err))
}
