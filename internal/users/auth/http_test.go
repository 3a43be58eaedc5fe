// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/sec"
	"github.com/taibuivan/scribe/internal/users/auth"
)

func serve(handler http.Handler, method, target, body string, claims *sec.AuthClaims) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Flow exercises register, login, refresh and logout over HTTP.
*/
func TestHandler_Flow(t *testing.T) {
	f := newFixture()
	router := auth.NewHandler(f.service).Routes()

	recorder := serve(router, http.MethodPost, "/register",
		`{"username":"jake","email":"jake@example.com","password":"jakejake","bio":"I work at statefarm"}`, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var registered struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &registered))
	assert.Equal(t, "jake", registered.User["username"])
	assert.Equal(t, "I work at statefarm", registered.User["bio"])
	assert.NotContains(t, registered.User, "passwordHash")

	recorder = serve(router, http.MethodPost, "/login", `{"email":"jake@example.com","password":"jakejake"}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var login struct {
		User         map[string]any `json:"user"`
		AccessToken  string         `json:"accessToken"`
		RefreshToken string         `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)

	recorder = serve(router, http.MethodPost, "/refresh", `{"refreshToken":"`+login.RefreshToken+`"}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var rotated struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rotated))

	// Logout requires a bearer identity.
	recorder = serve(router, http.MethodPost, "/logout", `{"refreshToken":"`+rotated.RefreshToken+`"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	claims := &sec.AuthClaims{UserID: 1, Username: "jake"}
	recorder = serve(router, http.MethodPost, "/logout", `{"refreshToken":"`+rotated.RefreshToken+`"}`, claims)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Zero(t, f.tokens.Len())
}

/*
TestHandler_Errors checks the error envelope of the public endpoints.
*/
func TestHandler_Errors(t *testing.T) {
	router := auth.NewHandler(newFixture().service).Routes()

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"malformed_json", "/register", `{"username":`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid_email", "/register", `{"username":"jake","email":"nope","password":"jakejake"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad_credentials", "/login", `{"email":"jake@example.com","password":"jakejake"}`, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown_refresh", "/refresh", `{"refreshToken":"unknown"}`, http.StatusUnauthorized, "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(router, http.MethodPost, tt.path, tt.body, nil)
			assert.Equal(t, tt.status, recorder.Code)

			var envelope struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, tt.code, envelope.Code)
			assert.NotEmpty(t, envelope.Message)
		})
	}
}
