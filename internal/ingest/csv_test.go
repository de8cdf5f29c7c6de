package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/domain"
	apperrors "github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/errors"
)

func TestParse_FullFile(t *testing.T) {
	input := `ProfileName,Summary,Score,Text,Time
alice,Loved it,5,great product,1303862400
bob,Nope,1,"terrible, awful",1306540800
alice,Meh,3,it's ok,1309132800
`
	ds, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, ds.HasReviewer)
	assert.True(t, ds.HasSummary)
	assert.True(t, ds.HasDate)
	require.Len(t, ds.Reviews, 3)

	first := ds.Reviews[0]
	assert.Equal(t, "alice", first.Reviewer)
	assert.Equal(t, "Loved it", first.Summary)
	assert.Equal(t, "great product", first.Text)
	assert.Equal(t, 5, first.Rating)
	require.True(t, first.HasDate)
	// 1303862400 is 2011-04-27 00:00:00 UTC
	assert.Equal(t, time.Date(2011, 4, 27, 0, 0, 0, 0, time.UTC), first.Date)

	// Quoted field with a comma stays one cell.
	assert.Equal(t, "terrible, awful", ds.Reviews[1].Text)
}

func TestParse_TimeColumnToCalendarDate(t *testing.T) {
	tests := []struct {
		unix string
		want time.Time
	}{
		{"0", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"1609459200", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"1612137600", time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		input := "Score,Text,Time\n4,fine," + tt.unix + "\n"
		ds, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, ds.Reviews, 1)
		require.True(t, ds.Reviews[0].HasDate)
		assert.Equal(t, tt.want, ds.Reviews[0].Date)
	}
}

func TestParse_NoTimeColumn(t *testing.T) {
	input := "Score,Text\n4,fine\n"
	ds, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.False(t, ds.HasDate)
	require.Len(t, ds.Reviews, 1)
	assert.False(t, ds.Reviews[0].HasDate)
}

func TestParse_OptionalColumnsAbsent(t *testing.T) {
	input := "Score,Text\n2,bad\n"
	ds, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.False(t, ds.HasReviewer)
	assert.False(t, ds.HasSummary)
	assert.Empty(t, ds.Reviews[0].Reviewer)
	assert.Empty(t, ds.Reviews[0].Summary)
}

func TestParse_MissingRequiredColumns(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no score", "ProfileName,Text\nalice,hello\n", "Score"},
		{"no text", "ProfileName,Score\nalice,5\n", "Text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.header))
			require.Error(t, err)

			var structured *apperrors.Error
			require.ErrorAs(t, err, &structured)
			assert.Equal(t, apperrors.TypeValidation, structured.Type)
			assert.Contains(t, structured.Message, tt.want)
		})
	}
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)

	var structured *apperrors.Error
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, apperrors.TypeValidation, structured.Type)
}

func TestParse_HeaderOnly(t *testing.T) {
	ds, err := Parse(strings.NewReader("Score,Text\n"))
	require.NoError(t, err)
	assert.Empty(t, ds.Reviews)
}

func TestParse_MalformedRow(t *testing.T) {
	input := "Score,Text\n5,good\n1,bad,extra,cells\n"
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)

	var structured *apperrors.Error
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, apperrors.TypeValidation, structured.Type)
}

func TestParse_HeaderMatchingIsLenient(t *testing.T) {
	input := "\ufeffscore, TEXT ,profilename\n5,hello,alice\n"
	ds, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, ds.HasReviewer)
	assert.Equal(t, "hello", ds.Reviews[0].Text)
	assert.Equal(t, 5, ds.Reviews[0].Rating)
}

func TestParse_RatingCells(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want int
	}{
		{"integer", "5", 5},
		{"integral float", "4.0", 4},
		{"fractional", "3.7", 0},
		{"garbage", "five", 0},
		{"empty", "", 0},
		{"negative", "-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "Score,Text\n" + `"` + tt.cell + `"` + ",hello\n"
			ds, err := Parse(strings.NewReader(input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ds.Reviews[0].Rating)
		})
	}
}

func TestParse_BadTimeCellDegrades(t *testing.T) {
	input := "Score,Text,Time\n5,hello,not-a-timestamp\n"
	ds, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, ds.HasDate)
	assert.False(t, ds.Reviews[0].HasDate)
}

func TestReview_HasRating(t *testing.T) {
	assert.True(t, domain.Review{Rating: 1}.HasRating())
	assert.True(t, domain.Review{Rating: 5}.HasRating())
	assert.False(t, domain.Review{Rating: 0}.HasRating())
	assert.False(t, domain.Review{Rating: 6}.HasRating())
	assert.False(t, domain.Review{Rating: -2}.HasRating())
}
