package scrapers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codewith-lab/admission-api/models"
)

const goaPage = `<html><body>
<div class="details1">
  <div class="details1_left">
    <h4>PhD Admissions 2026-27</h4>
    <ul>
      <li>Applications close 1 June</li>
      <li>Entrance test on 20 June</li>
    </ul>
    <h4>MA Admissions</h4>
    <p>Contact the admissions office.</p>
    <h4>   </h4>
  </div>
  <div class="details1_right">
    <h4>Sidebar heading</h4>
  </div>
</div>
</body></html>`

func TestScrapeGoa(t *testing.T) {
	srv := serveHTML(t, goaPage)

	got := ScrapeGoa(context.Background(), srv.URL)
	require.Len(t, got, 3)

	require.Equal(t, models.UniversityGoa, got[0].University)
	require.Equal(t, "PhD Admissions 2026-27", got[0].Title)
	require.Equal(t, []string{"Applications close 1 June", "Entrance test on 20 June"}, got[0].Details)
	require.Nil(t, got[0].Link)
	require.Nil(t, got[0].Description)

	// A sibling that is not a <ul> contributes no details.
	require.Equal(t, "MA Admissions", got[1].Title)
	require.Empty(t, got[1].Details)
	require.NotNil(t, got[1].Details)

	require.Equal(t, models.UntitledPlaceholder, got[2].Title)
	require.Empty(t, got[2].Details)
}

func TestScrapeGoaMissingWrapper(t *testing.T) {
	srv := serveHTML(t, `<html><body><h4>orphan heading</h4></body></html>`)

	require.Empty(t, ScrapeGoa(context.Background(), srv.URL))
}
