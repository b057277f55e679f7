// Package htmlsanitize strips dangerous markup from user-generated content
// before it is stored. Review bodies and church descriptions may carry basic
// formatting; scripts, event handlers, and javascript: URLs are removed.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowTables()
	return p
}()

// Sanitize returns s with unsafe HTML removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(policy.Sanitize(s))
}
