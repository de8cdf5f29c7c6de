package report

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/domain"
)

const (
	previewRows     = 10
	recentRows      = 10
	topReviewerRows = 10
)

// Build computes the full report for one annotated dataset.
func Build(ds *domain.Dataset, annotated []domain.Annotated) domain.Report {
	return domain.Report{
		ID:            uuid.New(),
		TotalReviews:  len(annotated),
		AverageRating: averageRating(annotated),
		Sentiment:     sentimentShares(annotated),
		Histogram:     ratingHistogram(annotated),
		Preview:       preview(ds.Reviews),
		Recent:        recent(annotated),
		Trend:         trend(ds, annotated),
		TopReviewers:  topReviewers(ds, annotated),
	}
}

// averageRating is the mean of usable 1-5 ratings, rounded to 2 decimals.
// Returns 0 when no row carries a usable rating.
func averageRating(rows []domain.Annotated) float64 {
	var sum, n int
	for _, row := range rows {
		if row.HasRating() {
			sum += row.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return round(float64(sum)/float64(n), 2)
}

// sentimentShares returns one entry per label, including zero counts, so the
// dashboard always renders all three buckets. Percentages use 1 decimal.
func sentimentShares(rows []domain.Annotated) []domain.LabelShare {
	counts := make(map[domain.Label]int, len(domain.Labels))
	for _, row := range rows {
		counts[row.Label]++
	}

	shares := make([]domain.LabelShare, 0, len(domain.Labels))
	for _, label := range domain.Labels {
		share := domain.LabelShare{Label: label, Count: counts[label]}
		if len(rows) > 0 {
			share.Percent = round(float64(share.Count)/float64(len(rows))*100, 1)
		}
		shares = append(shares, share)
	}
	return shares
}

func ratingHistogram(rows []domain.Annotated) []domain.HistogramSeries {
	series := make([]domain.HistogramSeries, len(domain.Labels))
	for i, label := range domain.Labels {
		series[i].Label = label
	}

	index := make(map[domain.Label]int, len(domain.Labels))
	for i, label := range domain.Labels {
		index[label] = i
	}

	for _, row := range rows {
		if !row.HasRating() {
			continue
		}
		series[index[row.Label]].Counts[row.Rating-1]++
	}
	return series
}

func preview(rows []domain.Review) []domain.Review {
	if len(rows) > previewRows {
		rows = rows[:previewRows]
	}
	// Copy so the report does not alias the dataset slice.
	out := make([]domain.Review, len(rows))
	copy(out, rows)
	return out
}

// recent returns up to 10 reviews, newest first when dates are present.
// Rows without dates keep their input order and sort after dated ones.
func recent(rows []domain.Annotated) []domain.Annotated {
	sorted := make([]domain.Annotated, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].HasDate != sorted[j].HasDate {
			return sorted[i].HasDate
		}
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > recentRows {
		sorted = sorted[:recentRows]
	}
	return sorted
}

// trend groups dated rows by calendar month. Months without reviews are not
// synthesized. Available is false when the upload had no Time column.
func trend(ds *domain.Dataset, rows []domain.Annotated) domain.Trend {
	if !ds.HasDate {
		return domain.Trend{}
	}

	byMonth := make(map[string]*domain.TrendPoint)
	for _, row := range rows {
		if !row.HasDate {
			continue
		}
		month := row.Date.Format("2006-01")
		point, ok := byMonth[month]
		if !ok {
			point = &domain.TrendPoint{Month: month}
			byMonth[month] = point
		}
		switch row.Label {
		case domain.LabelPositive:
			point.Positive++
		case domain.LabelNegative:
			point.Negative++
		case domain.LabelNeutral:
			point.Neutral++
		}
	}

	points := make([]domain.TrendPoint, 0, len(byMonth))
	for _, point := range byMonth {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })

	return domain.Trend{Available: true, Points: points}
}

// topReviewers ranks reviewer identifiers by review count, descending.
// Ties keep first-appearance order in the file.
func topReviewers(ds *domain.Dataset, rows []domain.Annotated) domain.TopReviewers {
	if !ds.HasReviewer {
		return domain.TopReviewers{}
	}

	counts := make(map[string]int)
	var order []string
	for _, row := range rows {
		if row.Reviewer == "" {
			continue
		}
		if _, seen := counts[row.Reviewer]; !seen {
			order = append(order, row.Reviewer)
		}
		counts[row.Reviewer]++
	}

	entries := make([]domain.ReviewerCount, 0, len(order))
	for _, name := range order {
		entries = append(entries, domain.ReviewerCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })

	if len(entries) > topReviewerRows {
		entries = entries[:topReviewerRows]
	}
	return domain.TopReviewers{Available: true, Entries: entries}
}

func round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
