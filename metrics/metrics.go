package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admission_api_http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		},
		[]string{"route", "status"},
	)

	ScrapeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "admission_api_scrape_duration_seconds",
			Help: "Time spent fetching and parsing one university page.",
		},
		[]string{"university"},
	)

	ScrapeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admission_api_scrape_failures_total",
			Help: "Scrapes that ended in a fetch or parse error.",
		},
		[]string{"university"},
	)
)

// Handler exposes the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
