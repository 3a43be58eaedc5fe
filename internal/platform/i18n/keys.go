// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

// # Message Keys
//
// Keys are the only user-facing text identifiers the core is allowed to emit.
// The rendered string is chosen per request by the [Printer] in context.

// Common errors.
const (
	ErrInternal     = "errors.common.internal"
	ErrValidation   = "errors.common.validation"
	ErrInvalidJSON  = "errors.common.invalidJSON"
	ErrRateLimited  = "errors.common.rateLimited"
	ErrUnavailable  = "errors.common.unavailable"
	ErrNotFound     = "errors.common.notFound"
	ErrConflict     = "errors.common.conflict"
	ErrInvalidParam = "errors.common.invalidParam"
)

// Authentication errors.
const (
	ErrAuthRequired            = "errors.auth.required"
	ErrAuthInvalidHeader       = "errors.auth.invalidHeader"
	ErrAuthInvalidToken        = "errors.auth.invalidToken"
	ErrAuthBadCredentials      = "errors.auth.invalidCredentials"
	ErrAuthInvalidRefresh      = "errors.auth.invalidRefreshToken"
	ErrUserNotFound            = "errors.user.notFound"
	ErrUserEmailTaken          = "errors.user.emailTaken"
	ErrUserUsernameTaken       = "errors.user.usernameTaken"
	ErrProfileNotFound         = "errors.profile.notFound"
	ErrProfileFollowSelf       = "errors.profile.followSelf"
	ErrProfileUnfollowSelf     = "errors.profile.unfollowSelf"
	ErrProfileAlreadyFollowing = "errors.profile.alreadyFollowing"
	ErrProfileNotFollowing     = "errors.profile.notFollowing"
)

// Content errors.
const (
	ErrArticleNotFound       = "errors.article.notFound"
	ErrArticleNotFoundBySlug = "errors.article.notFoundWithSlug"
	ErrArticleNotAuthor      = "errors.article.notAuthor"
	ErrArticleSlugTaken      = "errors.article.slugTaken"
	ErrCommentNotFound       = "errors.comment.notFound"
	ErrCommentNotAuthor      = "errors.comment.notAuthor"
)

// Field validation messages.
const (
	ValRequired     = "validation.required"
	ValMaxLen       = "validation.maxLen"
	ValMinLen       = "validation.minLen"
	ValEmail        = "validation.email"
	ValURL          = "validation.url"
	ValMismatch     = "validation.passwordMismatch"
	ValTitleSymbols = "validation.titleSymbols"
	ValTagName      = "validation.tagName"
)
