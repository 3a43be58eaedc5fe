// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/middleware"
	requestutil "github.com/taibuivan/scribe/internal/platform/request"
	"github.com/taibuivan/scribe/internal/platform/respond"
)

const paramUsername = "username"

// Handler implements the HTTP layer for profiles and follows.
type Handler struct {
	profileService *Service
}

// NewHandler constructs a new profile [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{profileService: service}
}

// Routes returns a [chi.Router] configured with the profile endpoints.
//
// # Endpoints
//   - GET    /{username}        : Public profile, following computed for the viewer.
//   - POST   /{username}/follow : Follow (auth).
//   - DELETE /{username}/follow : Unfollow (auth).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{username}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/{username}/follow", handler.follow)
		r.Delete("/{username}/follow", handler.unfollow)
	})

	return router
}

/*
GET /api/profiles/{username}.

Response:
  - 200: {"profile": Profile}
  - 404: Unknown username
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.profileService.Get(
		request.Context(),
		ctxutil.ViewerID(request.Context()),
		requestutil.Param(request, paramUsername),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, constants.FieldProfile, profile)
}

/*
POST /api/profiles/{username}/follow.

Response:
  - 200: {"profile": Profile} with following=true
  - 400: Self-follow or already following
  - 404: Unknown username
*/
func (handler *Handler) follow(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.Follow(request.Context(), userID, requestutil.Param(request, paramUsername))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, constants.FieldProfile, profile)
}

/*
DELETE /api/profiles/{username}/follow.

Response:
  - 200: {"profile": Profile} with following=false
  - 400: Self-unfollow or not following
  - 404: Unknown username
*/
func (handler *Handler) unfollow(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.Unfollow(request.Context(), userID, requestutil.Param(request, paramUsername))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, constants.FieldProfile, profile)
}
