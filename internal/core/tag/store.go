// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"

	"github.com/taibuivan/scribe/internal/platform/postgres"
)

// Repository reads the tag vocabulary.
type Repository interface {
	// List returns every tag name in alphabetical order.
	List(context context.Context) ([]string, error)
}

// Linker connects tags to articles inside the caller's transaction.
type Linker interface {
	/*
		Connect creates the missing tags among names and links all of them to
		the article. Names must already be normalized and non-empty.
	*/
	Connect(context context.Context, db postgres.DBTX, articleID int64, names []string) error

	// Detach removes every tag link of the article. The tags themselves stay.
	Detach(context context.Context, db postgres.DBTX, articleID int64) error
}
