// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles the private identity of the authenticated user.

It lets a member read their own account and change email, username, password,
bio and avatar image.

# Architecture

  - Domain: This package depends on the auth package for the User entity and
    its [auth.UserRepository].
  - Security: Every endpoint requires an authenticated session.
*/
package account

// UpdateInput defines the mutable subset of the account.
//
// A nil field is left untouched. An empty Bio or Image clears the value.
type UpdateInput struct {
	Email           *string
	Username        *string
	Password        *string
	ConfirmPassword *string
	Bio             *string
	Image           *string
}

// isEmpty reports whether the input carries no change at all.
func (input UpdateInput) isEmpty() bool {
	return input.Email == nil && input.Username == nil && input.Password == nil &&
		input.Bio == nil && input.Image == nil
}
