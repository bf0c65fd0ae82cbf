package scrapers

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/codewith-lab/admission-api/config"
	"github.com/codewith-lab/admission-api/models"
)

// ScrapeFunc fetches one university page and extracts its announcements.
// Fetch and parse failures are logged and collapsed to an empty result, so a
// failing source is indistinguishable from a source with nothing to report.
type ScrapeFunc func(ctx context.Context, pageURL string) []models.Announcement

// Source ties a lookup key to its display name, page URL and extractor.
type Source struct {
	Key    string
	Name   string
	URL    string
	Scrape ScrapeFunc
}

var httpClient = resty.New().SetTimeout(10 * time.Second)

var sources []Source

// Init builds the source registry from config.AppConfig. Must run after
// config.InitConfig; the registry is not mutated afterwards.
func Init() {
	cfg := config.AppConfig
	httpClient.SetTimeout(time.Duration(cfg.Scrape.Timeout) * time.Second)
	sources = []Source{
		{Key: "bangalore", Name: models.UniversityBangalore, URL: cfg.Scrape.Sources.Bangalore, Scrape: ScrapeBangalore},
		{Key: "goa", Name: models.UniversityGoa, URL: cfg.Scrape.Sources.Goa, Scrape: ScrapeGoa},
		{Key: "mumbai", Name: models.UniversityMumbai, URL: cfg.Scrape.Sources.Mumbai, Scrape: ScrapeMumbai},
	}
}

// Sources returns the registry in aggregation order.
func Sources() []Source {
	return sources
}

// Lookup resolves a source key case-insensitively.
func Lookup(key string) (Source, bool) {
	key = strings.ToLower(key)
	for _, s := range sources {
		if s.Key == key {
			return s, true
		}
	}
	return Source{}, false
}

// ScrapeAll runs every registered source concurrently and concatenates the
// results in registry order, whatever order the fetches complete in.
func ScrapeAll(ctx context.Context) []models.Announcement {
	results := make([][]models.Announcement, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			results[i] = src.Scrape(ctx, src.URL)
		}(i, src)
	}
	wg.Wait()

	var all []models.Announcement
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

func fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	res, err := httpClient.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode())
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}

func titleOrUntitled(text string) string {
	if t := strings.TrimSpace(text); t != "" {
		return t
	}
	return models.UntitledPlaceholder
}

// resolveURL turns a possibly relative href into an absolute URL against the
// page it was found on. Unparseable input is passed through untouched.
func resolveURL(pageURL, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
