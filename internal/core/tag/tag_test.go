// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/core/tag"
)

/*
TestNormalize verifies trimming and de-duplication.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, []string{}},
		{"trim_and_dedupe", []string{" go ", "go", "db", "go"}, []string{"go", "db"}},
		{"blank_kept_once", []string{"", "  ", "go"}, []string{"", "go"}},
		{"case_sensitive", []string{"Go", "go"}, []string{"Go", "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tag.Normalize(tt.input))
		})
	}
}

type staticRepository []string

func (repository staticRepository) List(context.Context) ([]string, error) {
	return repository, nil
}

/*
TestHandler verifies the keyed tag list payload.
*/
func TestHandler(t *testing.T) {
	router := tag.NewHandler(tag.NewService(staticRepository{"dragons", "training"})).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Tags []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"dragons", "training"}, body.Tags)
}
