// Package normalize holds the canonicalization rules for user-supplied
// identity fields. Every write path goes through these before touching the
// store so that lookups and uniqueness checks agree on one form.
package normalize

import (
	"strings"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
)

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims and collapses internal runs of whitespace to single spaces.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Role maps any casing of the two known roles to their canonical stored
// form. Unknown values are returned trimmed, which downstream role gates
// then reject.
func Role(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "churchgoer":
		return models.RoleChurchgoer
	case "churchrep":
		return models.RoleChurchRep
	}
	return strings.TrimSpace(s)
}

// State uppercases a two-letter state code; longer values are trimmed only.
func State(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 2 {
		return strings.ToUpper(s)
	}
	return s
}
