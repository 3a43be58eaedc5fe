// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package article implements the publishing core: article creation with slug
allocation and tag association, reads, listing, the followed-authors feed,
author-only updates and the transactional deletion sequence.

# Ownership

Every mutation resolves the article by slug first and only then compares the
acting user with the recorded author. A missing slug is therefore NotFound for
everyone, and an existing article owned by someone else is Forbidden.
*/
package article

import (
	"time"

	"github.com/taibuivan/scribe/internal/users/profile"
)

// # Domain Entities

// Article is a published piece of writing identified by its slug.
type Article struct {
	ID          int64           `json:"-"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Body        string          `json:"body"`
	TagList     []string        `json:"tagList"`
	AuthorID    int64           `json:"-"`
	Author      profile.Profile `json:"author"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Filter narrows an article listing. Zero values disable a criterion.
type Filter struct {
	// Tag keeps articles carrying this tag name.
	Tag string
	// Author keeps articles written by this username.
	Author string
	// FollowedBy keeps articles whose author is followed by this user ID.
	FollowedBy int64

	Limit  int
	Offset int
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldBody        = "body"
	FieldTagList     = "tagList"
)

// # Constraints

const (
	TitleMaxLen       = 255
	DescriptionMaxLen = 1000
)

// constraintSlug is the unique constraint on core.article.slug.
const constraintSlug = "article_slug_key"
