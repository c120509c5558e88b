package handlers

import (
	"encoding/xml"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSEO(t *testing.T) {
	seo := GetSEO("landing")
	require.NotNil(t, seo)
	assert.Contains(t, seo.Title, "Pulseboard")

	// Mutating the returned copy must not leak into the shared map.
	seo.Title = "mutated"
	assert.NotEqual(t, "mutated", GetSEO("landing").Title)

	assert.Nil(t, GetSEO("nonexistent"))
}

func TestGetSEOCanonicalFollowsAppURL(t *testing.T) {
	t.Setenv("APP_URL", "https://staging.pulseboard.example")

	seo := GetSEO("landing")
	require.NotNil(t, seo)
	assert.Equal(t, "https://staging.pulseboard.example/", seo.Canonical)
}

func TestRobotsHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)

	assert.NoError(t, RobotsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Disallow: /admin")
	assert.Contains(t, body, "Sitemap:")
}

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	assert.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var urlSet SitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &urlSet))
	require.Len(t, urlSet.URLs, 1)
	assert.Contains(t, urlSet.URLs[0].Loc, "/")
}
