package favmeta

import (
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes free-text input into an absolute URL.
// Input without an http:// or https:// prefix gets https:// prepended, and a
// root path is added when the path is empty. No network access occurs.
// Returns EINVALIDURL if the result cannot be parsed or has no host.
func NormalizeURL(input string) (string, error) {
	s := strings.TrimSpace(input)
	if !hasHTTPScheme(s) {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", Errorf(EINVALIDURL, "invalid URL %q", input)
	}
	if u.Host == "" {
		return "", Errorf(EINVALIDURL, "invalid URL %q: no host", input)
	}

	if u.Path == "" && u.RawPath == "" {
		if u.RawQuery == "" && u.Fragment == "" && !u.ForceQuery {
			return s + "/", nil
		}
		u.Path = "/"
		return u.String(), nil
	}
	return s, nil
}

// Origin returns the scheme and host of rawURL, e.g. "https://example.com:8080".
// Both are lowercased. Returns an empty string if rawURL has no scheme or host.
func Origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return (&url.URL{Scheme: strings.ToLower(u.Scheme), Host: strings.ToLower(u.Host)}).String()
}

// ResolveHref resolves href against baseURL. An href that already begins with
// "http" is returned verbatim. The host of a resolved URL is lowercased so it
// compares equal to Origin. Returns an empty string if either side cannot be
// parsed.
func ResolveHref(baseURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Host = strings.ToLower(resolved.Host)
	return resolved.String()
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
