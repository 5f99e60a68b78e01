package model

import (
	"regexp"
	"strings"
)

// Bank is a shared reference held by transactions and payables. Banks live for
// the whole session and are never owned by the records pointing at them.
type Bank struct {
	ID    int
	Name  string
	Slug  string
	Color string
	Icon  string // canonical "ph-*" token, see NormalizeIcon
}

// DefaultIcon is used when a bank icon cannot be recognized.
const DefaultIcon = "ph-bank"

var iconTokenRe = regexp.MustCompile(`ph-[a-z0-9-]+`)

var iconSlugRe = regexp.MustCompile(`[^a-z0-9-]`)

// NormalizeIcon reduces a free-form icon value to a canonical "ph-*" token.
// Unrecognized values are slugged and prefixed; empty values fall back to
// DefaultIcon.
func NormalizeIcon(value string) string {
	raw := strings.ToLower(strings.TrimSpace(value))
	if raw == "" {
		return DefaultIcon
	}
	if token := iconTokenRe.FindString(raw); token != "" {
		return token
	}
	slug := iconSlugRe.ReplaceAllString(raw, "")
	if slug == "" {
		return DefaultIcon
	}
	return "ph-" + slug
}
