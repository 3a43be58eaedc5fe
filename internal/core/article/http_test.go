// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/core/article"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/sec"
)

func serve(router http.Handler, method, path, body string, claims *sec.AuthClaims) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

type articleEnvelope struct {
	Article article.Article `json:"article"`
}

/*
TestHandler_Lifecycle drives create, read, list, update and delete over HTTP.
*/
func TestHandler_Lifecycle(t *testing.T) {
	f := setup()
	router := article.NewHandler(f.service).Routes(nil)
	jake := &sec.AuthClaims{UserID: f.jake, Username: "jake"}
	anna := &sec.AuthClaims{UserID: f.anna, Username: "anna"}

	created := serve(router, http.MethodPost, "/",
		`{"article":{"title":"How to train your dragon","description":"Ever wonder how?","body":"Very carefully.","tagList":["dragons","training"]}}`,
		jake)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var envelope articleEnvelope
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))
	assert.Equal(t, "how-to-train-your-dragon", envelope.Article.Slug)
	assert.Equal(t, []string{"dragons", "training"}, envelope.Article.TagList)
	assert.Equal(t, "jake", envelope.Article.Author.Username)

	fetched := serve(router, http.MethodGet, "/how-to-train-your-dragon", "", nil)
	require.Equal(t, http.StatusOK, fetched.Code)

	listed := serve(router, http.MethodGet, "/?tag=dragons&limit=5", "", nil)
	require.Equal(t, http.StatusOK, listed.Code)

	var page struct {
		Articles []article.Article `json:"articles"`
		Meta     struct {
			Limit int `json:"limit"`
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &page))
	assert.Len(t, page.Articles, 1)
	assert.Equal(t, 1, page.Meta.Total)
	assert.Equal(t, 5, page.Meta.Limit)

	forbidden := serve(router, http.MethodPut, "/how-to-train-your-dragon", `{"article":{"title":"Mine now"}}`, anna)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	updated := serve(router, http.MethodPut, "/how-to-train-your-dragon", `{"article":{"body":"With patience."}}`, jake)
	require.Equal(t, http.StatusOK, updated.Code)
	require.NoError(t, json.Unmarshal(updated.Body.Bytes(), &envelope))
	assert.Equal(t, "With patience.", envelope.Article.Body)

	deleted := serve(router, http.MethodDelete, "/how-to-train-your-dragon", "", jake)
	assert.Equal(t, http.StatusNoContent, deleted.Code)

	gone := serve(router, http.MethodGet, "/how-to-train-your-dragon", "", nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

/*
TestHandler_Errors covers authentication and payload failures.
*/
func TestHandler_Errors(t *testing.T) {
	f := setup()
	router := article.NewHandler(f.service).Routes(nil)
	jake := &sec.AuthClaims{UserID: f.jake, Username: "jake"}

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		claims *sec.AuthClaims
		status int
	}{
		{"anonymous_create", http.MethodPost, "/", `{"article":{"title":"x"}}`, nil, http.StatusUnauthorized},
		{"anonymous_feed", http.MethodGet, "/feed", "", nil, http.StatusUnauthorized},
		{"malformed_json", http.MethodPost, "/", `{"article":`, jake, http.StatusBadRequest},
		{"missing_fields", http.MethodPost, "/", `{"article":{}}`, jake, http.StatusBadRequest},
		{"update_unknown", http.MethodPut, "/ghost", `{"article":{"title":"x"}}`, jake, http.StatusNotFound},
		{"delete_unknown", http.MethodDelete, "/ghost", "", jake, http.StatusNotFound},
		{"empty_feed", http.MethodGet, "/feed", "", jake, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(router, tt.method, tt.path, tt.body, tt.claims)
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}
