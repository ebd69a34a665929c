package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCreativeURL(t *testing.T) {
	base := "https://cdn.example.com/storage/v1/object/public/creatives/"

	assert.Equal(t, "https://img.example.org/a.png", ResolveCreativeURL(base, "https://img.example.org/a.png"))
	assert.Equal(t, base+"c1/banner.png", ResolveCreativeURL(base, "/c1/banner.png"))
	assert.Equal(t, base+"c1/banner.png", ResolveCreativeURL(base, "c1/banner.png"))
	assert.Equal(t, "c1/banner.png", ResolveCreativeURL("", "c1/banner.png"))
	assert.Empty(t, ResolveCreativeURL(base, "  "))
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://shop.example.com/sale"))
	assert.True(t, IsHTTPURL("http://example.com"))
	assert.False(t, IsHTTPURL("javascript:alert(1)"))
	assert.False(t, IsHTTPURL("/relative"))
	assert.False(t, IsHTTPURL("ftp://example.com/file"))
}
