package reports

import "time"

// ReportType discriminates the two report variants.
type ReportType string

const (
	TypeAnalysis       ReportType = "analysis"
	TypeBeautifiedHTML ReportType = "beautified_html"
)

// Report is one persisted AI interaction. The two variants share a single
// struct with a discriminant Type; variant-specific fields are empty on
// the other variant and omitted from JSON.
//
// analysis:        JobDescription, Resume, Analysis
// beautified_html: Resume, HTMLContent, ViewCount
type Report struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Type      ReportType `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	JobDescription string `json:"jobDescription,omitempty"`
	Resume         string `json:"resume,omitempty"`
	Analysis       string `json:"analysis,omitempty"`

	HTMLContent string `json:"htmlContent,omitempty"`
	ViewCount   int    `json:"viewCount,omitempty"`
}

// Draft carries caller-supplied fields for a new report. ID and timestamps
// are assigned by the store.
type Draft struct {
	Type           ReportType
	Title          string
	JobDescription string
	Resume         string
	Analysis       string
	HTMLContent    string
}

// Update holds the mergeable fields of a report. Nil fields are left
// untouched.
type Update struct {
	Title       *string
	Resume      *string
	Analysis    *string
	HTMLContent *string
}

// ResumeSummary is the list/detail projection served for beautified
// resumes; field names match the published API.
type ResumeSummary struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	OriginalContent string    `json:"originalContent"`
	HTMLContent     string    `json:"htmlContent"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	ViewCount       int       `json:"viewCount"`
}

// Summary converts a beautified report into its API projection.
func (r Report) Summary() ResumeSummary {
	return ResumeSummary{
		ID:              r.ID,
		Title:           r.Title,
		OriginalContent: r.Resume,
		HTMLContent:     r.HTMLContent,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		ViewCount:       r.ViewCount,
	}
}
