package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "app path", in: "/dashboard", want: "/dashboard"},
		{name: "path with query", in: "/dashboard?tab=roles", want: "/dashboard?tab=roles"},
		{name: "empty", in: "", want: ""},
		{name: "relative path", in: "dashboard", want: ""},
		{name: "scheme relative", in: "//evil.example", want: ""},
		{name: "absolute url", in: "https://evil.example/login", want: ""},
		{name: "backslash scheme trick", in: "/\\evil.example", want: ""},
		{name: "root", in: "/", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeRedirectPath(tt.in))
		})
	}
}

func TestParseListOptions(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/categories?page=3&per_page=50", nil)
	opts := parseListOptions(r)
	assert.Equal(t, 3, opts.Page)
	assert.Equal(t, 50, opts.PerPage)

	r = httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	opts = parseListOptions(r)
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 25, opts.PerPage)

	r = httptest.NewRequest(http.MethodGet, "/api/categories?page=-2&per_page=9999", nil)
	opts = parseListOptions(r)
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 100, opts.PerPage)
}
