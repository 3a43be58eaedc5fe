// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package i18n owns the message catalog used to render every client-facing string.

Domain code never writes literal text into responses. It emits a key from keys.go
plus interpolation arguments, and the transport layer renders it through a
[message.Printer] selected from the request's Accept-Language header.

Usage:

	catalog := i18n.New(language.English)
	printer := catalog.Printer(catalog.Match("vi-VN,vi;q=0.9"))
	printer.Sprintf(i18n.ErrArticleNotFoundBySlug, "hello-world")
*/
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the locales shipped with the catalog. The first entry is the
// fallback when nothing in Accept-Language matches.
var Supported = []language.Tag{
	language.English,
	language.Vietnamese,
}

// Catalog wraps an x/text catalog together with a language matcher.
type Catalog struct {
	builder   *catalog.Builder
	matcher   language.Matcher
	fallback  language.Tag
	supported []language.Tag
}

// New builds the catalog from the embedded message tables.
//
// The fallback must be one of [Supported]; otherwise English is used.
func New(fallback language.Tag) *Catalog {
	if !isSupported(fallback) {
		fallback = language.English
	}

	// Matcher prefers the fallback on ties, so it goes first.
	ordered := make([]language.Tag, 0, len(Supported))
	ordered = append(ordered, fallback)
	for _, tag := range Supported {
		if tag != fallback {
			ordered = append(ordered, tag)
		}
	}

	// Missing translations are filled from English up front so lookups never
	// depend on catalog fallback rules.
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	english := messages[language.English]
	for _, tag := range Supported {
		table := messages[tag]
		for key, text := range english {
			if translated, ok := table[key]; ok {
				text = translated
			}
			// SetString only fails on malformed tags, which cannot happen here.
			_ = builder.SetString(tag, key, text)
		}
	}

	return &Catalog{
		builder:   builder,
		matcher:   language.NewMatcher(ordered),
		fallback:  fallback,
		supported: ordered,
	}
}

// Match resolves an Accept-Language header value to a supported tag.
func (c *Catalog) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return c.fallback
	}
	_, index := language.MatchStrings(c.matcher, acceptLanguage)
	return c.supported[index]
}

// Printer returns a printer bound to the given locale.
func (c *Catalog) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(c.builder))
}

// Fallback returns the default locale of the catalog.
func (c *Catalog) Fallback() language.Tag {
	return c.fallback
}

// # Default Rendering

var defaultCatalog = New(language.English)

// Default renders key in English. It is used to fill [error.Error] strings so that
// server-side logs stay readable regardless of the client locale.
func Default(key string, args ...any) string {
	return Render(defaultCatalog.Printer(language.English), key, args...)
}

// Render formats key with the printer. Unknown keys are returned verbatim
// (with arguments appended) instead of being treated as a format string.
func Render(printer *message.Printer, key string, args ...any) string {
	if printer == nil {
		printer = defaultCatalog.Printer(language.English)
	}
	if !known(key) {
		if len(args) == 0 {
			return key
		}
		return key + " " + fmt.Sprint(args...)
	}
	return printer.Sprintf(key, args...)
}

func known(key string) bool {
	_, ok := messages[language.English][key]
	return ok
}

func isSupported(tag language.Tag) bool {
	for _, candidate := range Supported {
		if candidate == tag {
			return true
		}
	}
	return false
}
