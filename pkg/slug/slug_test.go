// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/scribe/pkg/slug"
)

var urlSafe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

/*
TestFrom verifies the title-to-slug transformation.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_title", "How To Train A Dragon", "how-to-train-a-dragon"},
		{"punctuation", "Hello, World!!!", "hello-world"},
		{"accents", "Café Crème Brûlée", "cafe-creme-brulee"},
		{"vietnamese", "Tiếng Việt có dấu", "tieng-viet-co-dau"},
		{"special_letters", "Straße Æther Øl", "strasse-aether-ol"},
		{"apostrophe", "Don't Panic", "dont-panic"},
		{"ampersand", "Salt & Pepper", "salt-and-pepper"},
		{"surrounding_symbols", "  --Go 1.24--  ", "go-1-24"},
		{"symbols_only", "!!! ??? ***", ""},
		{"non_latin", "日本語", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

/*
TestFrom_URLSafe checks that non-empty output always matches the slug grammar.
*/
func TestFrom_URLSafe(t *testing.T) {
	inputs := []string{
		"How To Train A Dragon",
		"a\tb\nc",
		"Ünïcödé—dash – en dash",
		"100% pure",
		"emoji 🐉 dragon",
	}

	for _, input := range inputs {
		result := slug.From(input)
		assert.Regexp(t, urlSafe, result, input)
		assert.Equal(t, result, slug.From(input), "deterministic")
	}
}

/*
TestFrom_Length verifies that long titles are cut so a suffixed slug still
fits the column.
*/
func TestFrom_Length(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single_long_word", strings.Repeat("a", 300), strings.Repeat("a", slug.MaxBaseLength)},
		{"cut_on_hyphen", strings.Repeat("abc ", 100), strings.TrimSuffix(strings.Repeat("abc-", slug.MaxBaseLength/4), "-")},
		{"expanding_symbols", strings.Repeat("&", 255), strings.TrimSuffix(strings.Repeat("and-", slug.MaxBaseLength/4), "-")},
		{"at_limit", strings.Repeat("b", slug.MaxBaseLength), strings.Repeat("b", slug.MaxBaseLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slug.From(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.Regexp(t, urlSafe, result)
			assert.LessOrEqual(t, len(slug.WithSuffix(result, slug.RandomSuffix())), slug.MaxLength)
		})
	}
}

/*
TestRandomSuffix verifies suffix length and alphabet.
*/
func TestRandomSuffix(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		suffix := slug.RandomSuffix()
		assert.Regexp(t, `^[a-z0-9]{6}$`, suffix)
		seen[suffix] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

/*
TestWithSuffix joins base and suffix.
*/
func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "hello-abc123", slug.WithSuffix("hello", "abc123"))
	assert.Equal(t, "abc123", slug.WithSuffix("", "abc123"))
}
