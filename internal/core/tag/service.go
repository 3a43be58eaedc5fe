// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"fmt"
)

// Service serves the public tag vocabulary.
type Service struct {
	repo Repository
}

// NewService creates a tag service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every known tag name.
func (service *Service) List(context context.Context) ([]string, error) {
	names, err := service.repo.List(context)
	if err != nil {
		return nil, fmt.Errorf("tag_service_list_failed: %w", err)
	}
	return names, nil
}
