// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/core/comment"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/sec"
)

/*
TestHandler drives the thread endpoints mounted under an article slug.
*/
func TestHandler(t *testing.T) {
	f := setup(t)

	router := chi.NewRouter()
	router.Mount("/{slug}/comments", comment.NewHandler(f.service).Routes())

	anna := &sec.AuthClaims{UserID: f.anna, Username: "anna"}
	jake := &sec.AuthClaims{UserID: f.jake, Username: "jake"}

	serve := func(method, path, body string, claims *sec.AuthClaims) *httptest.ResponseRecorder {
		request := httptest.NewRequest(method, path, strings.NewReader(body))
		if claims != nil {
			request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	created := serve(http.MethodPost, "/dragons/comments", `{"comment":{"body":"Great!"}}`, anna)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var envelope struct {
		Comment comment.Comment `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))
	assert.Equal(t, "Great!", envelope.Comment.Body)
	path := fmt.Sprintf("/dragons/comments/%d", envelope.Comment.ID)

	listed := serve(http.MethodGet, "/dragons/comments", "", nil)
	require.Equal(t, http.StatusOK, listed.Code)

	var thread struct {
		Comments []comment.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &thread))
	assert.Len(t, thread.Comments, 1)

	assert.Equal(t, http.StatusUnauthorized, serve(http.MethodPost, "/dragons/comments", `{"comment":{"body":"x"}}`, nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(http.MethodGet, "/ghost/comments", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodDelete, "/dragons/comments/abc", "", anna).Code)
	assert.Equal(t, http.StatusForbidden, serve(http.MethodDelete, path, "", jake).Code)
	assert.Equal(t, http.StatusNoContent, serve(http.MethodDelete, path, "", anna).Code)
	assert.Equal(t, http.StatusNotFound, serve(http.MethodDelete, path, "", anna).Code)
}
