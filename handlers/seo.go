package handlers

import (
	"net/http"

	"pulseboard_app_go/config"
	"pulseboard_app_go/models"

	"github.com/labstack/echo/v4"
)

// SEO configurations for public pages. Canonical holds the page path; the
// absolute URL is composed from APP_URL so canonical, robots.txt and the
// sitemap all agree on the deployed host.
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "Pulseboard - Live Analytics for Fast-Moving Teams",
		Description: "Pulseboard turns raw product and revenue data into live dashboards your whole team actually reads. Real-time metrics, plain-language queries and alerts, no pipelines to babysit.",
		Keywords:    "analytics platform, live dashboards, business intelligence, product analytics, metric alerts",
		Canonical:   "/",
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
}

// GetSEO returns the SEO configuration for a page
func GetSEO(page string) *models.SEO {
	if seo, ok := pageSEO[page]; ok {
		// Return a copy to avoid mutations
		copy := *seo
		copy.Canonical = config.Load().AppURL + copy.Canonical
		return &copy
	}
	return nil
}

// RobotsHandler serves robots.txt. Admin surfaces are excluded from
// crawling.
func RobotsHandler(c echo.Context) error {
	cfg := config.Load()
	body := "User-agent: *\n" +
		"Disallow: /admin\n" +
		"Disallow: /login\n" +
		"Disallow: /htmx/\n" +
		"\n" +
		"Sitemap: " + cfg.AppURL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}
