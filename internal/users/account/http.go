// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/middleware"
	requestutil "github.com/taibuivan/scribe/internal/platform/request"
	"github.com/taibuivan/scribe/internal/platform/respond"
)

// Handler implements the HTTP layer for the current user's account.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account endpoints.
//
// # Endpoints
//   - GET   /  : Current user.
//   - PATCH /  : Partial update.
//   - PUT   /  : Same as PATCH; absent fields are kept.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.getCurrent)
	router.Patch("/", handler.update)
	router.Put("/", handler.update)

	return router
}

/*
GET /api/user.

Response:
  - 200: {"user": User}
  - 401: Authentication required
*/
func (handler *Handler) getCurrent(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Current(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, constants.FieldUser, user)
}

// updateRequest defines the expected JSON payload for account updates,
// wrapped as {"user": {...}}.
type updateRequest struct {
	User updateFields `json:"user"`
}

type updateFields struct {
	Email           *string `json:"email"`
	Username        *string `json:"username"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
	Bio             *string `json:"bio"`
	Image           *string `json:"image"`
}

/*
PATCH /api/user.

Request:
  - body: updateRequest (Partial JSON)

Response:
  - 200: {"user": User}
  - 400: Validation failure or identity taken by another account
  - 401: Authentication required
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	fields := input.User
	user, err := handler.accountService.Update(request.Context(), userID, UpdateInput{
		Email:           fields.Email,
		Username:        fields.Username,
		Password:        fields.Password,
		ConfirmPassword: fields.ConfirmPassword,
		Bio:             fields.Bio,
		Image:           fields.Image,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, constants.FieldUser, user)
}
