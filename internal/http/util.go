package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/eventdesk/admin-ui/internal/domain/model"
)

// safeRedirectPath validates a post-login redirect target. Only in-app
// absolute paths survive: the value must start with a single "/", carry no
// scheme or host, and must not be scheme-relative ("//evil.example").
// Anything else returns "".
func safeRedirectPath(p string) string {
	if p == "" || !strings.HasPrefix(p, "/") {
		return ""
	}
	// Browsers treat "//host" and "/\host" as scheme-relative.
	if strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return ""
	}
	u, err := url.Parse(p)
	if err != nil || u.IsAbs() || u.Host != "" {
		return ""
	}
	return p
}

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// parseListOptions parses pagination params from the request query.
// Normalize clamps them to sane bounds.
func parseListOptions(r *http.Request) model.ListOptions {
	opts := model.ListOptions{
		Page:    parseIntQuery(r, "page", 0),
		PerPage: parseIntQuery(r, "per_page", 0),
	}
	return opts.Normalize()
}
