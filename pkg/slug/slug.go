// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are used as human-readable identifiers for articles
// (e.g., "how-to-train-a-dragon"). This package handles normalization,
// transliteration, accent removal, and character sanitization, plus the random
// suffix used to break collisions.
package slug

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxLength is the longest slug the core.article.slug column holds.
	MaxLength = 255

	// SuffixLength is the length of the collision-breaking suffix.
	SuffixLength = 6

	// MaxBaseLength leaves room for "-" plus a suffix within [MaxLength].
	MaxBaseLength = MaxLength - 1 - SuffixLength
)

// suffixAlphabet is the character set of [RandomSuffix].
const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	// nonAlphanumeric matches any sequence of characters outside [a-z0-9].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

	// transliterations covers letters that NFD does not decompose into ASCII.
	transliterations = strings.NewReplacer(
		"ß", "ss",
		"æ", "ae",
		"ø", "o",
		"đ", "d",
		"ł", "l",
		"œ", "oe",
		"þ", "th",
		"ð", "d",
		"&", " and ",
	)

	// apostrophes are dropped so "Don't" becomes "dont" rather than "don-t".
	apostrophes = strings.NewReplacer("'", "", "’", "", "‘", "")
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Converts to lowercase and transliterates special letters (ß → ss, & → and).
// 2. Normalizes to NFD and removes combining marks (accents).
// 3. Drops apostrophes.
// 4. Replaces every run of non [a-z0-9] characters with a single hyphen.
// 5. Trims leading/trailing hyphens.
// 6. Cuts the result to [MaxBaseLength] bytes, dropping any trailing hyphen.
//
// The result may be empty for titles made only of symbols or non-Latin script.
func From(s string) string {
	// 1. Lowercase and transliterate
	result := transliterations.Replace(strings.ToLower(s))

	// 2. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ = transform.String(t, result)

	// 3. Apostrophes
	result = apostrophes.Replace(result)

	// 4. Collapse everything else into hyphens
	result = nonAlphanumeric.ReplaceAllString(result, "-")

	// 5. Trim
	result = strings.Trim(result, "-")

	// 6. Cap
	if len(result) > MaxBaseLength {
		result = strings.TrimRight(result[:MaxBaseLength], "-")
	}

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// # Collision Suffix

// SuffixFunc produces a collision-breaking suffix. Tests inject a deterministic one.
type SuffixFunc func() string

// RandomSuffix returns [SuffixLength] random lowercase alphanumeric characters.
func RandomSuffix() string {
	var builder strings.Builder
	builder.Grow(SuffixLength)

	limit := big.NewInt(int64(len(suffixAlphabet)))
	for range SuffixLength {
		index, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand only fails when the OS source is unavailable.
			panic("slug: random source unavailable: " + err.Error())
		}
		builder.WriteByte(suffixAlphabet[index.Int64()])
	}

	return builder.String()
}

// WithSuffix joins a base slug and a suffix.
func WithSuffix(base, suffix string) string {
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
