package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/domain"
	apperrors "github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/errors"
)

// Column names as they appear in the review export format.
const (
	colRating   = "Score"
	colText     = "Text"
	colReviewer = "ProfileName"
	colSummary  = "Summary"
	colTime     = "Time"
)

type columns struct {
	rating   int
	text     int
	reviewer int
	summary  int
	ts       int
}

// Parse reads a comma-separated review file into a Dataset.
// Score and Text columns are required; ProfileName, Summary and Time are
// optional and their absence is recorded on the dataset.
func Parse(r io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.ValidationError("file is empty")
	}
	if err != nil {
		return nil, apperrors.ValidationError("malformed CSV header").WithContext("cause", err.Error())
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	ds := &domain.Dataset{
		HasReviewer: cols.reviewer >= 0,
		HasSummary:  cols.summary >= 0,
		HasDate:     cols.ts >= 0,
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			verr := apperrors.ValidationError("malformed CSV row").WithContext("cause", err.Error())
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				verr = verr.WithContext("line", parseErr.Line)
			}
			return nil, verr
		}
		ds.Reviews = append(ds.Reviews, parseRow(record, cols))
	}

	return ds, nil
}

func mapColumns(header []string) (columns, error) {
	cols := columns{rating: -1, text: -1, reviewer: -1, summary: -1, ts: -1}

	for i, name := range header {
		switch {
		case equalColumn(name, colRating):
			cols.rating = i
		case equalColumn(name, colText):
			cols.text = i
		case equalColumn(name, colReviewer):
			cols.reviewer = i
		case equalColumn(name, colSummary):
			cols.summary = i
		case equalColumn(name, colTime):
			cols.ts = i
		}
	}

	if cols.rating < 0 {
		return cols, apperrors.ValidationError("missing required column: " + colRating)
	}
	if cols.text < 0 {
		return cols, apperrors.ValidationError("missing required column: " + colText)
	}

	return cols, nil
}

func equalColumn(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(got, "\ufeff")), want)
}

func parseRow(record []string, cols columns) domain.Review {
	review := domain.Review{
		Text:   field(record, cols.text),
		Rating: parseRating(field(record, cols.rating)),
	}

	if cols.reviewer >= 0 {
		review.Reviewer = field(record, cols.reviewer)
	}
	if cols.summary >= 0 {
		review.Summary = field(record, cols.summary)
	}
	if cols.ts >= 0 {
		review.Date, review.HasDate = parseUnixTime(field(record, cols.ts))
	}

	return review
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseRating accepts integer or integral-float cells ("5", "5.0").
// Anything else yields 0, which downstream excludes from rating stats.
func parseRating(s string) int {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0
	}
	return int(f)
}

func parseUnixTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}
