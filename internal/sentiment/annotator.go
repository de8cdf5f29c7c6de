package sentiment

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/domain"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/metrics"
)

// Annotator scores datasets row by row over a bounded worker pool.
// Rows are independent, and results are written by index, so output order
// matches input order regardless of worker count.
type Annotator struct {
	scorer  domain.Scorer
	workers int
}

// NewAnnotator creates an annotator using the given scorer.
// workers <= 0 means one worker per available CPU.
func NewAnnotator(scorer domain.Scorer, workers int) *Annotator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Annotator{scorer: scorer, workers: workers}
}

// Annotate computes a polarity score and label for every review.
func (a *Annotator) Annotate(ctx context.Context, reviews []domain.Review) ([]domain.Annotated, error) {
	annotated := make([]domain.Annotated, len(reviews))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, review := range reviews {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score := a.scorer.Score(review.Text)
			annotated[i] = domain.Annotated{
				Review: review,
				Score:  score,
				Label:  Label(score),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics.ReviewsProcessed.Add(float64(len(annotated)))
	for _, row := range annotated {
		metrics.ReviewsBySentiment.WithLabelValues(string(row.Label)).Inc()
	}

	return annotated, nil
}

var _ domain.Annotator = (*Annotator)(nil)
