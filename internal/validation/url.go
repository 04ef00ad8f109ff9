// Package validation normalizes requested media URLs and checks them against
// the supported-domain allow-list.
package validation

import (
	"net/url"
	"strings"
)

const (
	shortsMarker = "/shorts/"
	watchURL     = "https://www.youtube.com/watch?v="
)

// DefaultSupportedDomains is the allow-list used when none is configured.
var DefaultSupportedDomains = []string{
	"youtube.com",
	"youtu.be",
	"instagram.com",
	"tiktok.com",
	"twitter.com",
	"facebook.com",
	"soundcloud.com",
	"vimeo.com",
}

// HasHTTPScheme reports whether raw is non-empty and starts with an HTTP scheme.
func HasHTTPScheme(raw string) bool {
	if raw == "" {
		return false
	}
	lower := strings.ToLower(raw)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// NormalizeURL rewrites short-form video links into the canonical watch URL.
// A "/shorts/<id>" path and a youtu.be/<id> short link both become
// https://www.youtube.com/watch?v=<id> with any query string dropped.
// Other URLs are returned unchanged.
func NormalizeURL(raw string) string {
	if _, after, ok := strings.Cut(raw, shortsMarker); ok {
		if id := videoID(after); id != "" {
			return watchURL + id
		}
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if strings.EqualFold(u.Hostname(), "youtu.be") {
		if id := videoID(strings.TrimPrefix(u.Path, "/")); id != "" {
			return watchURL + id
		}
	}
	return raw
}

// videoID returns the first path segment, cut at the first query delimiter.
func videoID(s string) string {
	s, _, _ = strings.Cut(s, "?")
	s, _, _ = strings.Cut(s, "/")
	s, _, _ = strings.Cut(s, "#")
	return s
}

// IsSupported parses raw and reports whether its host contains one of the
// allow-listed domains. The match is a plain substring test, so a host such as
// notyoutube.com.evil.example is accepted; this looseness is intentional.
// Unparsable URLs and URLs missing a scheme or host are rejected.
func IsSupported(raw string, allowList []string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme == "" || u.Host == "" {
		return false
	}

	host := strings.ToLower(u.Host)
	for _, domain := range allowList {
		if domain == "" {
			continue
		}
		if strings.Contains(host, strings.ToLower(domain)) {
			return true
		}
	}
	return false
}

// ParseDomainList splits a comma separated list, dropping blanks.
func ParseDomainList(s string) []string {
	var domains []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			domains = append(domains, strings.ToLower(part))
		}
	}
	return domains
}
