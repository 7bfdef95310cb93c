package auth

import "strings"

// AdminClassifier decides whether an email address belongs to an
// administrator. Admin status is derived, never stored: the only source
// of truth is the configured allowlist.
type AdminClassifier struct {
	allowed map[string]struct{}
}

// NewAdminClassifier builds a classifier from the configured allowlist.
// Addresses are compared case-insensitively.
func NewAdminClassifier(emails []string) *AdminClassifier {
	allowed := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allowed[e] = struct{}{}
		}
	}
	return &AdminClassifier{allowed: allowed}
}

// IsAdminEmail reports whether the given email qualifies as an
// administrator. An empty allowlist rejects everyone.
func (c *AdminClassifier) IsAdminEmail(email string) bool {
	_, ok := c.allowed[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
