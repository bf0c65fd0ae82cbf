package scrapers

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewith-lab/admission-api/metrics"
	"github.com/codewith-lab/admission-api/models"
)

// ScrapeBangalore extracts notifications from the Bangalore University page.
// The notices live in the first <ul> of a "container" block; only its direct
// <li> children count, nested lists belong to their parent item.
func ScrapeBangalore(ctx context.Context, pageURL string) []models.Announcement {
	timer := prometheus.NewTimer(metrics.ScrapeDuration.WithLabelValues(models.UniversityBangalore))
	defer timer.ObserveDuration()

	doc, err := fetchDocument(ctx, pageURL)
	if err != nil {
		metrics.ScrapeFailures.WithLabelValues(models.UniversityBangalore).Inc()
		slog.Warn("fetch Bangalore University notifications", "url", pageURL, "err", err)
		return nil
	}

	container := doc.Find("div.container").First()
	if container.Length() == 0 {
		return nil
	}
	list := container.Find("ul").First()
	if list.Length() == 0 {
		return nil
	}

	var out []models.Announcement
	list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a").First()
		if href, _ := link.Attr("href"); link.Length() > 0 && href != "" {
			resolved := resolveURL(pageURL, href)
			out = append(out, models.Announcement{
				University: models.UniversityBangalore,
				Title:      titleOrUntitled(link.Text()),
				Link:       &resolved,
			})
			return
		}
		out = append(out, models.Announcement{
			University: models.UniversityBangalore,
			Title:      titleOrUntitled(item.Text()),
		})
	})
	return out
}
