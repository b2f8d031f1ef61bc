// Package cdn rewrites raw object-storage URLs into public content-delivery
// URLs. The rewrite is pure string work: swap the origin, keep the path.
package cdn

import (
	"net/url"
	"strings"
)

type Locator struct {
	base string
}

func NewLocator(baseURL string) Locator {
	return Locator{base: strings.TrimSuffix(baseURL, "/")}
}

// PublicURL maps a storage URL onto the content-delivery origin. Empty input
// passes through so absent assets stay absent. Applying it to an already
// rewritten URL is a no-op.
func (l Locator) PublicURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		// Bare object keys get prefixed rather than rewritten.
		return l.base + "/" + strings.TrimPrefix(raw, "/")
	}

	rest := u.RequestURI()
	return l.base + rest
}

// PublicURLPtr is PublicURL for optional assets: nil in, nil out.
func (l Locator) PublicURLPtr(raw string) *string {
	if raw == "" {
		return nil
	}
	out := l.PublicURL(raw)
	return &out
}
