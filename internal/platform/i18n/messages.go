// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

import "golang.org/x/text/language"

// messages holds the translation tables. English must define every key; other
// locales may omit entries and fall back to English.
var messages = map[language.Tag]map[string]string{
	language.English: {
		ErrInternal:     "An unexpected error occurred",
		ErrValidation:   "Validation failed",
		ErrInvalidJSON:  "Invalid JSON payload",
		ErrRateLimited:  "Too many requests. Try again in %ds.",
		ErrUnavailable:  "Service temporarily unavailable",
		ErrNotFound:     "Resource not found",
		ErrConflict:     "The resource conflicts with an existing record",
		ErrInvalidParam: "Invalid path parameter %s",

		ErrAuthRequired:            "Authentication required",
		ErrAuthInvalidHeader:       "Invalid authorization format",
		ErrAuthInvalidToken:        "Invalid or expired token",
		ErrAuthBadCredentials:      "Invalid email or password",
		ErrAuthInvalidRefresh:      "Invalid or expired refresh token",
		ErrUserNotFound:            "User not found",
		ErrUserEmailTaken:          "This email is already registered",
		ErrUserUsernameTaken:       "This username is already taken",
		ErrProfileNotFound:         "Profile not found",
		ErrProfileFollowSelf:       "You cannot follow yourself",
		ErrProfileUnfollowSelf:     "You cannot unfollow yourself",
		ErrProfileAlreadyFollowing: "You are already following %s",
		ErrProfileNotFollowing:     "You are not following %s",

		ErrArticleNotFound:       "Article not found",
		ErrArticleNotFoundBySlug: "Article with slug %s not found",
		ErrArticleNotAuthor:      "Only the author can modify this article",
		ErrArticleSlugTaken:      "An article with slug %s already exists",
		ErrCommentNotFound:       "Comment not found",
		ErrCommentNotAuthor:      "Only the author can delete this comment",

		ValRequired:     "This field is required",
		ValMaxLen:       "Maximum %d characters",
		ValMinLen:       "Minimum %d characters",
		ValEmail:        "Must be a valid email address",
		ValURL:          "Must be a valid URL",
		ValMismatch:     "Passwords do not match",
		ValTitleSymbols: "Title must contain at least one letter or digit",
		ValTagName:      "Tag names must not be empty",
	},
	language.Vietnamese: {
		ErrInternal:     "Đã xảy ra lỗi không mong muốn",
		ErrValidation:   "Dữ liệu không hợp lệ",
		ErrInvalidJSON:  "Nội dung JSON không hợp lệ",
		ErrRateLimited:  "Quá nhiều yêu cầu. Vui lòng thử lại sau %d giây.",
		ErrUnavailable:  "Dịch vụ tạm thời không khả dụng",
		ErrNotFound:     "Không tìm thấy tài nguyên",
		ErrConflict:     "Tài nguyên xung đột với một bản ghi đã tồn tại",
		ErrInvalidParam: "Tham số đường dẫn %s không hợp lệ",

		ErrAuthRequired:            "Yêu cầu đăng nhập",
		ErrAuthInvalidHeader:       "Định dạng xác thực không hợp lệ",
		ErrAuthInvalidToken:        "Mã truy cập không hợp lệ hoặc đã hết hạn",
		ErrAuthBadCredentials:      "Email hoặc mật khẩu không đúng",
		ErrAuthInvalidRefresh:      "Mã làm mới không hợp lệ hoặc đã hết hạn",
		ErrUserNotFound:            "Không tìm thấy người dùng",
		ErrUserEmailTaken:          "Email này đã được đăng ký",
		ErrUserUsernameTaken:       "Tên người dùng này đã được sử dụng",
		ErrProfileNotFound:         "Không tìm thấy hồ sơ",
		ErrProfileFollowSelf:       "Bạn không thể tự theo dõi chính mình",
		ErrProfileUnfollowSelf:     "Bạn không thể tự bỏ theo dõi chính mình",
		ErrProfileAlreadyFollowing: "Bạn đã theo dõi %s",
		ErrProfileNotFollowing:     "Bạn chưa theo dõi %s",

		ErrArticleNotFound:       "Không tìm thấy bài viết",
		ErrArticleNotFoundBySlug: "Không tìm thấy bài viết có slug %s",
		ErrArticleNotAuthor:      "Chỉ tác giả mới có thể chỉnh sửa bài viết này",
		ErrArticleSlugTaken:      "Đã tồn tại bài viết có slug %s",
		ErrCommentNotFound:       "Không tìm thấy bình luận",
		ErrCommentNotAuthor:      "Chỉ tác giả mới có thể xóa bình luận này",

		ValRequired:     "Trường này là bắt buộc",
		ValMaxLen:       "Tối đa %d ký tự",
		ValMinLen:       "Tối thiểu %d ký tự",
		ValEmail:        "Phải là địa chỉ email hợp lệ",
		ValURL:          "Phải là URL hợp lệ",
		ValMismatch:     "Mật khẩu xác nhận không khớp",
		ValTitleSymbols: "Tiêu đề phải chứa ít nhất một chữ cái hoặc chữ số",
		ValTagName:      "Tên thẻ không được để trống",
	},
}
