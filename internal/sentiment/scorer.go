package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/domain"
)

// Labeling thresholds on the polarity score.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Label maps a polarity score in [-1, 1] to its sentiment bucket.
func Label(score float64) domain.Label {
	switch {
	case score > positiveThreshold:
		return domain.LabelPositive
	case score < negativeThreshold:
		return domain.LabelNegative
	default:
		return domain.LabelNeutral
	}
}

// VaderScorer scores text with the VADER lexicon. The compound score is
// already normalized to [-1, 1]. Scoring is read-only over the lexicon, so
// a single instance is safe for concurrent use.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer builds a scorer with the default VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of the given text.
// Empty text scores 0 and ends up Neutral.
func (s *VaderScorer) Score(text string) float64 {
	if text == "" {
		return 0
	}
	return s.analyzer.PolarityScores(text).Compound
}

var _ domain.Scorer = (*VaderScorer)(nil)
