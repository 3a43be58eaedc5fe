// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/middleware"
	requestutil "github.com/taibuivan/scribe/internal/platform/request"
	"github.com/taibuivan/scribe/internal/platform/respond"
)

const (
	paramSlug = "slug"
	paramID   = "id"
)

// Handler implements the comment HTTP endpoints. It is mounted under
// /api/articles/{slug}/comments, so the slug parameter is inherited.
type Handler struct {
	commentService *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{commentService: service}
}

// Routes returns a [chi.Router] configured with the comment endpoints.
//
// # Endpoints
//   - GET    /     : Thread of the article.
//   - POST   /     : Add a comment (auth).
//   - DELETE /{id} : Delete own comment (auth).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.add)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

type addRequest struct {
	Comment struct {
		Body string `json:"body"`
	} `json:"comment"`
}

/*
GET /api/articles/{slug}/comments.

Response:
  - 200: {"comments": [...]}
  - 404: Unknown slug
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	comments, err := handler.commentService.List(
		request.Context(),
		ctxutil.ViewerID(request.Context()),
		requestutil.Param(request, paramSlug),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, constants.FieldComments, comments)
}

/*
POST /api/articles/{slug}/comments.

Request:
  - Body: {"comment": {"body": "..."}}

Response:
  - 201: {"comment": Comment}
  - 400: Validation failure
  - 404: Unknown slug
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.commentService.Add(request.Context(), userID, requestutil.Param(request, paramSlug), input.Comment.Body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, constants.FieldComment, comment)
}

/*
DELETE /api/articles/{slug}/comments/{id}.

Response:
  - 204: No Content
  - 403: Not the author
  - 404: Unknown slug or comment
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	commentID, err := requestutil.Int64Param(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.commentService.Delete(request.Context(), userID, requestutil.Param(request, paramSlug), commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
