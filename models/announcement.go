package models

// Display names of the supported universities, in aggregation order.
const (
	UniversityBangalore = "Bangalore"
	UniversityGoa       = "Goa"
	UniversityMumbai    = "Mumbai"
)

// UntitledPlaceholder stands in for items whose markup carries no usable text.
const UntitledPlaceholder = "Untitled"

// Announcement is one admission notice extracted from a university page.
// The sources produce different subsets of the optional fields, so every
// field is serialized and left as an explicit null when a source does not
// populate it: Goa pages never yield a link, Bangalore and Mumbai pages
// never yield details.
type Announcement struct {
	University  string   `json:"university"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Link        *string  `json:"link"`
	Details     []string `json:"details"`
}
