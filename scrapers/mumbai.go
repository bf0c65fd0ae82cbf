package scrapers

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewith-lab/admission-api/metrics"
	"github.com/codewith-lab/admission-api/models"
)

// ScrapeMumbai extracts department announcements from the Mumbai University
// page. Items are the list entries under the WPBakery text column of the
// main content area.
func ScrapeMumbai(ctx context.Context, pageURL string) []models.Announcement {
	timer := prometheus.NewTimer(metrics.ScrapeDuration.WithLabelValues(models.UniversityMumbai))
	defer timer.ObserveDuration()

	doc, err := fetchDocument(ctx, pageURL)
	if err != nil {
		metrics.ScrapeFailures.WithLabelValues(models.UniversityMumbai).Inc()
		slog.Warn("fetch Mumbai University notifications", "url", pageURL, "err", err)
		return nil
	}

	var out []models.Announcement
	doc.Find("#main .entry-content .wpb_text_column ul li").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a").First()
		if href, _ := link.Attr("href"); link.Length() > 0 && href != "" {
			resolved := resolveURL(pageURL, href)
			out = append(out, models.Announcement{
				University: models.UniversityMumbai,
				Title:      titleOrUntitled(link.Text()),
				Link:       &resolved,
			})
			return
		}
		out = append(out, models.Announcement{
			University: models.UniversityMumbai,
			Title:      titleOrUntitled(item.Text()),
		})
	})
	return out
}
