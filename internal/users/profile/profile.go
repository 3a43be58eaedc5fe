// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile exposes the public face of a member and the follow relation
between members.

# Follow State Machine

Each ordered (follower, followee) pair is either NotFollowing or Following.
Follow is only valid from NotFollowing and Unfollow only from Following. Self
transitions and repeated transitions are rejected as BadRequest. The storage
layer decides the transition atomically (insert-if-absent, delete-if-present),
so two concurrent follows of the same pair cannot both succeed.
*/
package profile

// # Domain Entities

// Profile is the public projection of a user as seen by a viewer.
type Profile struct {
	// ID is internal and never serialized.
	ID        int64   `json:"-"`
	Username  string  `json:"username"`
	Bio       *string `json:"bio"`
	Image     *string `json:"image"`
	Following bool    `json:"following"`
}
