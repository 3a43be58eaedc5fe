// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/scribe/pkg/pagination"
)

/*
TestFromRequest covers defaults, clamping and raw offsets, including values
large enough to overflow page*limit.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		page   int
		limit  int
		offset int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit", "?page=3&limit=10", 3, 10, 20},
		{"garbage", "?page=abc&limit=xyz", 1, 20, 0},
		{"negative", "?page=-2&limit=-5", 1, 20, 0},
		{"over_max", "?limit=1000", 1, 20, 0},
		{"offset_wins", "?page=7&limit=10&offset=25", 3, 10, 25},
		{"huge_page", "?page=922337203685477581&limit=10", 214748365, 10, 2147483640},
		{"huge_page_default_limit", "?page=9223372036854775807", 107374183, 20, 2147483640},
		{"huge_offset", "?limit=10&offset=9223372036854775807", 214748365, 10, pagination.MaxOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/articles"+tt.query, nil))

			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
			assert.Equal(t, tt.offset, params.Offset())
			assert.GreaterOrEqual(t, params.Offset(), 0)
		})
	}
}

/*
TestNewMeta verifies the total page computation.
*/
func TestNewMeta(t *testing.T) {
	assert.Equal(t, 3, pagination.NewMeta(1, 10, 21).TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 10, 0).TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 5).TotalPages)
}
