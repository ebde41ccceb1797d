// Package validation provides input validation and normalization helpers.
package validation

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Slugify normalizes a display name into a URL-safe slug: lowercase,
// alphanumeric runs joined by single hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// ValidSlug reports whether s is a well-formed slug.
func ValidSlug(s string) bool {
	return len(s) > 0 && len(s) <= 120 && slugPattern.MatchString(s)
}

// ValidHandle reports whether a user handle is acceptable: 3-50 characters,
// starting with a letter, containing only letters, digits, and underscores.
var handlePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{2,49}$`)

func ValidHandle(h string) bool {
	return handlePattern.MatchString(h)
}

// ValidEmail is a light sanity check; deliverability is the mail system's
// problem, not ours.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(e string) bool {
	return len(e) <= 255 && emailPattern.MatchString(e)
}
