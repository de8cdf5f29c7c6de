// Package sentiment scores review text and attaches polarity labels.
//
// The scorer is a pluggable contract (domain.Scorer); the production
// implementation wraps the VADER lexicon. Labeling thresholds are fixed:
// scores above 0.1 are Positive, below -0.1 Negative, otherwise Neutral.
package sentiment
