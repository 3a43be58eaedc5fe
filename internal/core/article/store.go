// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import "context"

// # Repository Contracts

// Repository defines the persistence contract for articles.
type Repository interface {

	// SlugExists reports whether any article already uses slug.
	SlugExists(context context.Context, slug string) (bool, error)

	/*
		Create inserts the article and links article.TagList in one transaction.
		ID and timestamps are written back.

		Returns:
		  - error: unique violations keep their pgconn cause for classification
	*/
	Create(context context.Context, article *Article) error

	/*
		FindBySlug loads an article with its tag list. Author is not hydrated.

		Returns:
		  - error: apperr.NotFound with the slug as argument
	*/
	FindBySlug(context context.Context, slug string) (*Article, error)

	// Update persists title, description and body. UpdatedAt is written back.
	Update(context context.Context, article *Article) error

	/*
		Delete detaches the tag links and removes the article in one
		transaction. Comments are removed by the database cascade.
	*/
	Delete(context context.Context, id int64) error

	/*
		List returns one page of articles, newest first, and the total count
		matching the filter.
	*/
	List(context context.Context, filter Filter) ([]*Article, int, error)
}
