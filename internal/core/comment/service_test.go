// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scribe/internal/core/article"
	"github.com/taibuivan/scribe/internal/core/article/articletest"
	"github.com/taibuivan/scribe/internal/core/comment"
	"github.com/taibuivan/scribe/internal/core/comment/commenttest"
	"github.com/taibuivan/scribe/internal/platform/apperr"
	"github.com/taibuivan/scribe/internal/platform/i18n"
	"github.com/taibuivan/scribe/internal/platform/metrics"
	"github.com/taibuivan/scribe/internal/platform/sanitize"
	"github.com/taibuivan/scribe/internal/users/profile"
	"github.com/taibuivan/scribe/internal/users/profile/profiletest"
)

type fixture struct {
	service  *comment.Service
	articles *article.Service
	comments *commenttest.Repository
	jake     int64
	anna     int64
}

// setup seeds two members and two articles: "dragons" and "castles", both by jake.
func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	people := profiletest.New()
	jake := people.Add("jake")
	anna := people.Add("anna")

	articles := articletest.New(people)
	for _, slug := range []string{"dragons", "castles"} {
		require.NoError(t, articles.Create(ctx, &article.Article{Slug: slug, Title: slug, AuthorID: jake}))
	}

	comments := commenttest.New()
	articles.OnDelete = comments.DeleteByArticle

	profiles := profile.NewService(people, metrics.Nop{})
	service := comment.NewService(comments, articles, profiles, sanitize.NewUGC(), metrics.Nop{})
	articleService := article.NewService(articles, profiles, sanitize.NewUGC(), metrics.Nop{})

	return fixture{service: service, articles: articleService, comments: comments, jake: jake, anna: anna}
}

func assertCode(t *testing.T, err error, code, key string) {
	t.Helper()
	appErr := apperr.As(err)
	require.NotNil(t, appErr, "expected app error, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, key, appErr.Key)
}

/*
TestAdd covers posting, sanitization and validation.
*/
func TestAdd(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	added, err := f.service.Add(ctx, f.anna, "dragons", `Nice <b>read</b><script>steal()</script>`)
	require.NoError(t, err)
	assert.NotZero(t, added.ID)
	assert.Equal(t, "Nice <b>read</b>", added.Body)
	assert.Equal(t, "anna", added.Author.Username)

	_, err = f.service.Add(ctx, f.anna, "ghost", "hello")
	assertCode(t, err, apperr.CodeNotFound, i18n.ErrArticleNotFoundBySlug)

	_, err = f.service.Add(ctx, f.anna, "dragons", "   ")
	assertCode(t, err, apperr.CodeValidation, i18n.ErrValidation)

	assert.Equal(t, 1, f.comments.Len())
}

/*
TestList verifies threads are scoped per article and ordered oldest first.
*/
func TestList(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	for _, body := range []string{"first", "second"} {
		_, err := f.service.Add(ctx, f.anna, "dragons", body)
		require.NoError(t, err)
	}
	_, err := f.service.Add(ctx, f.jake, "castles", "elsewhere")
	require.NoError(t, err)

	thread, err := f.service.List(ctx, 0, "dragons")
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "first", thread[0].Body)
	assert.Equal(t, "second", thread[1].Body)

	other, err := f.service.List(ctx, 0, "castles")
	require.NoError(t, err)
	assert.Len(t, other, 1)

	_, err = f.service.List(ctx, 0, "ghost")
	assertCode(t, err, apperr.CodeNotFound, i18n.ErrArticleNotFoundBySlug)
}

/*
TestDelete verifies lookup ordering and the author-only guard.
*/
func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	posted, err := f.service.Add(ctx, f.anna, "dragons", "mine")
	require.NoError(t, err)

	tests := []struct {
		name    string
		actor   int64
		slug    string
		comment int64
		code    string
		key     string
	}{
		{"unknown_article", f.jake, "ghost", posted.ID, apperr.CodeNotFound, i18n.ErrArticleNotFoundBySlug},
		{"unknown_comment", f.anna, "dragons", 999, apperr.CodeNotFound, i18n.ErrCommentNotFound},
		{"wrong_article", f.anna, "castles", posted.ID, apperr.CodeNotFound, i18n.ErrCommentNotFound},
		{"not_author", f.jake, "dragons", posted.ID, apperr.CodeForbidden, i18n.ErrCommentNotAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.service.Delete(ctx, tt.actor, tt.slug, tt.comment)
			assertCode(t, err, tt.code, tt.key)
			assert.Equal(t, 1, f.comments.Len())
		})
	}

	require.NoError(t, f.service.Delete(ctx, f.anna, "dragons", posted.ID))
	assert.Zero(t, f.comments.Len())
}

/*
TestArticleDeletion verifies that deleting an article takes its thread with it
while other threads stay intact.
*/
func TestArticleDeletion(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	posted, err := f.service.Add(ctx, f.anna, "dragons", "first")
	require.NoError(t, err)
	_, err = f.service.Add(ctx, f.jake, "dragons", "second")
	require.NoError(t, err)
	_, err = f.service.Add(ctx, f.anna, "castles", "elsewhere")
	require.NoError(t, err)
	require.Equal(t, 3, f.comments.Len())

	require.NoError(t, f.articles.Delete(ctx, f.jake, "dragons"))
	assert.Equal(t, 1, f.comments.Len())

	_, err = f.service.List(ctx, 0, "dragons")
	assertCode(t, err, apperr.CodeNotFound, i18n.ErrArticleNotFoundBySlug)

	err = f.service.Delete(ctx, f.anna, "dragons", posted.ID)
	assertCode(t, err, apperr.CodeNotFound, i18n.ErrArticleNotFoundBySlug)

	remaining, err := f.service.List(ctx, 0, "castles")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "elsewhere", remaining[0].Body)
}
