// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment implements discussion threads attached to articles.

Comments are addressed through their article slug. A comment ID that exists
but belongs to a different article is reported as NotFound, and only the
author of a comment may delete it.
*/
package comment

import (
	"time"

	"github.com/taibuivan/scribe/internal/users/profile"
)

// Comment is a reply posted on an article.
type Comment struct {
	ID        int64           `json:"id"`
	Body      string          `json:"body"`
	ArticleID int64           `json:"-"`
	AuthorID  int64           `json:"-"`
	Author    profile.Profile `json:"author"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

const (
	FieldBody = "body"

	BodyMaxLen = 5000
)
