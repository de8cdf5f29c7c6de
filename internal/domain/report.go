package domain

import "github.com/google/uuid"

// LabelShare is a sentiment label's count and share of the dataset.
type LabelShare struct {
	Label   Label   `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// HistogramSeries holds per-rating counts (index 0 = rating 1) for one label.
type HistogramSeries struct {
	Label  Label  `json:"label"`
	Counts [5]int `json:"counts"`
}

// TrendPoint counts reviews per sentiment label for one calendar month.
type TrendPoint struct {
	Month    string `json:"month"` // "2006-01"
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
}

// Trend is the monthly sentiment time series. Available is false when the
// upload had no usable date column; Points then stays empty.
type Trend struct {
	Available bool         `json:"available"`
	Points    []TrendPoint `json:"points"`
}

// ReviewerCount is one entry of the top-reviewers ranking.
type ReviewerCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopReviewers ranks reviewer identifiers by review count, descending.
type TopReviewers struct {
	Available bool            `json:"available"`
	Entries   []ReviewerCount `json:"entries"`
}

// Report is the full analysis result for one upload.
type Report struct {
	ID            uuid.UUID         `json:"id"`
	TotalReviews  int               `json:"total_reviews"`
	AverageRating float64           `json:"average_rating"`
	Sentiment     []LabelShare      `json:"sentiment"`
	Histogram     []HistogramSeries `json:"histogram"`
	Preview       []Review          `json:"preview"`
	Recent        []Annotated       `json:"recent"`
	Trend         Trend             `json:"trend"`
	TopReviewers  TopReviewers      `json:"top_reviewers"`
}

// Share returns the entry for the given label, zero-valued if absent.
func (r Report) Share(label Label) LabelShare {
	for _, s := range r.Sentiment {
		if s.Label == label {
			return s
		}
	}
	return LabelShare{Label: label}
}
