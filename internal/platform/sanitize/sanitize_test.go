// Copyright (c) 2026 Scribe. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/scribe/internal/platform/sanitize"
)

/*
TestUGC_Sanitize covers the removal of executable markup.
*/
func TestUGC_Sanitize(t *testing.T) {
	policy := sanitize.NewUGC()

	tests := []struct {
		name        string
		input       string
		contains    string
		notContains string
	}{
		{"plain_text", "You have to believe", "You have to believe", ""},
		{"script_removed", "hello<script>alert(1)</script>", "hello", "<script"},
		{"onclick_removed", `<p onclick="steal()">hi</p>`, "<p>hi</p>", "onclick"},
		{"iframe_removed", `<iframe src="https://evil.example"></iframe>ok`, "ok", "iframe"},
		{"javascript_link", `<a href="javascript:alert(1)">x</a>`, "x", "javascript:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := policy.Sanitize(tt.input)
			assert.Contains(t, output, tt.contains)
			if tt.notContains != "" {
				assert.NotContains(t, output, tt.notContains)
			}
		})
	}

	assert.Empty(t, policy.Sanitize(""))
}
