// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/scribe/internal/platform/constants"
	"github.com/taibuivan/scribe/internal/platform/ctxutil"
	"github.com/taibuivan/scribe/internal/platform/middleware"
	requestutil "github.com/taibuivan/scribe/internal/platform/request"
	"github.com/taibuivan/scribe/internal/platform/respond"
	"github.com/taibuivan/scribe/pkg/pagination"
)

const paramSlug = "slug"

// # Definitions & Constructors

// Handler implements the article HTTP endpoints.
type Handler struct {
	articleService *Service
}

// NewHandler constructs a new article [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{articleService: service}
}

// Routes returns a [chi.Router] configured with the article endpoints.
//
// # Endpoints
//   - GET    /       : List (tag, author, page, limit, offset).
//   - GET    /feed   : Articles of followed authors (auth).
//   - POST   /       : Create (auth).
//   - GET    /{slug} : Read.
//   - PUT    /{slug} : Update (author only).
//   - DELETE /{slug} : Delete (author only).
//
// extra routers are mounted under /{slug}, e.g. comments.
func (handler *Handler) Routes(extra map[string]http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{slug}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/feed", handler.feed)
		r.Post("/", handler.create)
		r.Put("/{slug}", handler.update)
		r.Delete("/{slug}", handler.delete)
	})

	for path, sub := range extra {
		router.Mount("/{slug}"+path, sub)
	}

	return router
}

// # Request Payloads

type createRequest struct {
	Article struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Body        string   `json:"body"`
		TagList     []string `json:"tagList"`
	} `json:"article"`
}

type updateRequest struct {
	Article struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
	} `json:"article"`
}

/*
GET /api/articles.

Request:
  - Query: tag, author, page, limit, offset

Response:
  - 200: {"articles": [...], "meta": Meta}
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := request.URL.Query()

	articles, total, err := handler.articleService.List(request.Context(), ctxutil.ViewerID(request.Context()), Filter{
		Tag:    query.Get("tag"),
		Author: query.Get("author"),
		Limit:  params.Limit,
		Offset: params.Offset(),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, constants.FieldArticles, articles, params.Meta(total))
}

/*
GET /api/articles/feed.

Response:
  - 200: {"articles": [...], "meta": Meta}
  - 401: Authentication required
*/
func (handler *Handler) feed(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	articles, total, err := handler.articleService.Feed(request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, constants.FieldArticles, articles, params.Meta(total))
}

/*
POST /api/articles.

Request:
  - Body: {"article": {title, description, body, tagList}}

Response:
  - 201: {"article": Article}
  - 400: Validation failure
  - 409: Slug race lost
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.articleService.Create(request.Context(), userID, CreateInput{
		Title:       input.Article.Title,
		Description: input.Article.Description,
		Body:        input.Article.Body,
		TagList:     input.Article.TagList,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, constants.FieldArticle, article)
}

/*
GET /api/articles/{slug}.

Response:
  - 200: {"article": Article}
  - 404: Unknown slug
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.articleService.Get(
		request.Context(),
		ctxutil.ViewerID(request.Context()),
		requestutil.Param(request, paramSlug),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, constants.FieldArticle, article)
}

/*
PUT /api/articles/{slug}.

Response:
  - 200: {"article": Article}
  - 403: Not the author
  - 404: Unknown slug
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

	article, err := handler.articleService.Update(request.Context(), userID, requestutil.Param(request, paramSlug), UpdateInput{
		Title:       input.Article.Title,
		Description: input.Article.Description,
		Body:        input.Article.Body,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, constants.FieldArticle, article)
}

/*
DELETE /api/articles/{slug}.

Response:
  - 204: No Content
  - 403: Not the author
  - 404: Unknown slug
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.articleService.Delete(request.Context(), userID, requestutil.Param(request, paramSlug)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
