// Package report derives the dashboard aggregates from annotated reviews:
// headline metrics, sentiment shares, the rating histogram, the monthly
// trend, top reviewers and the recent-reviews table.
package report
