package domain

import (
	"net/url"
	"strings"
)

// ResolveCreativeURL turns a creative reference into an absolute URL.
// References that already carry a scheme and host are returned as is;
// anything else is treated as a path under base (the public object storage
// prefix).
func ResolveCreativeURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() && u.Host != "" {
		return ref
	}
	if base == "" {
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}

// IsHTTPURL reports whether raw is an absolute http or https URL.
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
