// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import "context"

// Repository defines the persistence contract for comments.
type Repository interface {
	// Create inserts the comment and writes back ID and timestamps.
	Create(context context.Context, comment *Comment) error

	// ListByArticle returns the comments of an article, oldest first.
	ListByArticle(context context.Context, articleID int64) ([]*Comment, error)

	// FindByID returns apperr.NotFound when the comment does not exist.
	FindByID(context context.Context, id int64) (*Comment, error)

	// Delete removes a single comment.
	Delete(context context.Context, id int64) error
}
