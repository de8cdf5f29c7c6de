package domain

import (
	"context"
	"time"
)

// Label is the categorical sentiment bucket derived from a polarity score.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Labels lists all sentiment labels in display order.
var Labels = []Label{LabelPositive, LabelNegative, LabelNeutral}

// Review is one row of the uploaded reviews file.
type Review struct {
	Reviewer string    `json:"reviewer"`
	Summary  string    `json:"summary"`
	Text     string    `json:"text"`
	Rating   int       `json:"rating"`
	Date     time.Time `json:"date"`
	HasDate  bool      `json:"has_date"`
}

// HasRating reports whether the rating cell parsed to a usable 1-5 value.
func (r Review) HasRating() bool {
	return r.Rating >= 1 && r.Rating <= 5
}

// Annotated is a review plus its derived sentiment fields.
type Annotated struct {
	Review
	Score float64 `json:"sentiment_score"`
	Label Label   `json:"sentiment"`
}

// Dataset is the parsed upload: rows plus which optional columns were present.
type Dataset struct {
	Reviews     []Review
	HasReviewer bool
	HasSummary  bool
	HasDate     bool
}

// Scorer produces a polarity score in [-1, 1] for a piece of text.
// Implementations must be safe for concurrent use.
type Scorer interface {
	Score(text string) float64
}

// Annotator scores a dataset row by row.
type Annotator interface {
	Annotate(ctx context.Context, reviews []Review) ([]Annotated, error)
}
