// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tag owns article tags.

Tags are created implicitly when an article first uses a name and are never
deleted. The storage layer links them with a single upsert keyed on the unique
tag name, so concurrent articles introducing the same new name share one row.
*/
package tag

import (
	"strings"

	"github.com/taibuivan/scribe/pkg/slice"
)

// NameMaxLen matches the core.tag.name column width.
const NameMaxLen = 64

// Normalize trims every name and drops duplicates, keeping first-seen order.
// Blank names are kept as "" so callers can reject them.
func Normalize(names []string) []string {
	return slice.Unique(slice.Map(names, strings.TrimSpace))
}
