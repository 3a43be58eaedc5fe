// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the user identity and session management layer.

It defines the core User entity and the logic for registration, login,
refresh-token rotation and logout.

# Architecture

This layer is the "Truth" of the system for identities. The account and profile
packages build on the User entity defined here.
*/
package auth

import (
	"time"
)

// # Domain Entities

// User represents a registered member of the Scribe platform.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Bio          *string   `json:"bio"`
	Image        *string   `json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldBio             = "bio"
	FieldImage           = "image"
	FieldRefreshToken    = "refreshToken"
	FieldAccessToken     = "accessToken"
)

// # Constraints

const (
	// UsernameMinLen and UsernameMaxLen bound the public handle.
	UsernameMinLen = 3
	UsernameMaxLen = 50

	// PasswordMinLen is the minimum password length at registration and change.
	PasswordMinLen = 8

	// BioMaxLen bounds the free-text biography.
	BioMaxLen = 1000
)

// Constraint names from the users.account migration.
const (
	constraintEmail    = "account_email_key"
	constraintUsername = "account_username_key"
)
