package recipe

import (
	"net/url"
	"strings"
)

// UnknownSource is used when no host can be read from a URL
const UnknownSource = "unknown"

// ExtractSource returns the lowercase host of rawURL without leading "www." labels
func ExtractSource(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return UnknownSource
	}

	host := strings.ToLower(u.Hostname())
	for strings.HasPrefix(host, "www.") {
		host = host[len("www."):]
	}
	if host == "" {
		return UnknownSource
	}
	return host
}
