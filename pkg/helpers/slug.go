package helpers

import "strings"

// EmailSlug derives a URL-safe identifier from a login email by replacing
// "@" and "." with "-".
func EmailSlug(email string) string {
	r := strings.NewReplacer("@", "-", ".", "-")
	return r.Replace(email)
}

// NormalizeSlug lower-cases a user-supplied slug.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
