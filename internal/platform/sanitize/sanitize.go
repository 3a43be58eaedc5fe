// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sanitize strips unsafe HTML from user-authored text before it is stored.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// Sanitizer cleans user generated content.
type Sanitizer interface {
	Sanitize(raw string) string
}

// Policy wraps a bluemonday policy. It is safe for concurrent use.
type Policy struct {
	policy *bluemonday.Policy
}

// NewUGC builds the policy for article and comment bodies.
//
// Formatting markup (paragraphs, lists, links, code, images) survives; scripts,
// iframes, styles and event handler attributes are removed. Links get
// rel="nofollow noopener noreferrer".
func NewUGC() *Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return &Policy{policy: p}
}

// Sanitize returns the cleaned text.
func (s *Policy) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	return s.policy.Sanitize(raw)
}
