// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"fmt"

	"github.com/taibuivan/scribe/pkg/slug"
)

/*
allocateSlug derives the slug for a new article.

Description: The title is slugified. If the base slug is free it is used as
is; otherwise one random suffix is appended. The suffixed candidate is not
checked again, and a second collision surfaces as Conflict from the unique
index.

Parameters:
  - context: context.Context
  - title: string (already validated to produce a non-empty base)

Returns:
  - string: The slug to insert
  - error: Storage failures
*/
func (service *Service) allocateSlug(context context.Context, title string) (string, error) {
	base := slug.From(title)

	taken, err := service.repository.SlugExists(context, base)
	if err != nil {
		return "", fmt.Errorf("article_service_slug_check_failed: %w", err)
	}
	if !taken {
		return base, nil
	}

	return slug.WithSuffix(base, service.suffix()), nil
}
