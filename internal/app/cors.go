package app

import (
	"net/url"
	"strings"
)

// extractOriginHost strips the scheme from an Origin header value, leaving
// "host[:port]". Values that do not parse as URLs are matched as given.
func extractOriginHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return strings.ToLower(origin)
	}
	return strings.ToLower(u.Host)
}

// matchOriginPattern matches host against an allowed-origin pattern.
// "*.example.com" matches any subdomain, "localhost:*" matches any port,
// anything else must match exactly. Hostnames compare case-insensitively.
func matchOriginPattern(pattern, host string) bool {
	pattern = strings.ToLower(pattern)
	switch {
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	default:
		return pattern == host
	}
}
