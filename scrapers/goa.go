package scrapers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewith-lab/admission-api/metrics"
	"github.com/codewith-lab/admission-api/models"
)

// ScrapeGoa extracts announcements from the Goa University admissions page.
// Each <h4> inside the details1_left column is one announcement; its detail
// lines come from the immediately following sibling, but only when that
// sibling is itself a <ul>. Goa items never carry a link.
func ScrapeGoa(ctx context.Context, pageURL string) []models.Announcement {
	timer := prometheus.NewTimer(metrics.ScrapeDuration.WithLabelValues(models.UniversityGoa))
	defer timer.ObserveDuration()

	doc, err := fetchDocument(ctx, pageURL)
	if err != nil {
		metrics.ScrapeFailures.WithLabelValues(models.UniversityGoa).Inc()
		slog.Warn("fetch Goa University announcements", "url", pageURL, "err", err)
		return nil
	}

	wrapper := doc.Find("div.details1").First()
	if wrapper.Length() == 0 {
		return nil
	}
	left := wrapper.Find("div.details1_left").First()
	if left.Length() == 0 {
		return nil
	}

	var out []models.Announcement
	left.Find("h4").Each(func(_ int, heading *goquery.Selection) {
		details := []string{}
		if next := heading.Next(); next.Is("ul") {
			next.Find("li").Each(func(_ int, li *goquery.Selection) {
				details = append(details, strings.TrimSpace(li.Text()))
			})
		}
		out = append(out, models.Announcement{
			University: models.UniversityGoa,
			Title:      titleOrUntitled(heading.Text()),
			Details:    details,
		})
	})
	return out
}
