package server

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	apperrors "github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/errors"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/ingest"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/metrics"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/report"
)

// handleAnalyze accepts a multipart CSV upload, scores it and returns the
// aggregated report. Every upload recomputes from scratch; no state survives
// the request.
func (s *Server) handleAnalyze(c echo.Context) error {
	if !s.uploadLimiter.Allow(c.RealIP()) {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return apperrors.RateLimitedError("too many uploads, slow down")
	}

	if !s.analysisSlots.Acquire() {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return apperrors.RateLimitedError("server is busy, try again shortly")
	}
	defer s.analysisSlots.Release()

	metrics.AnalysesInFlight.Inc()
	defer metrics.AnalysesInFlight.Dec()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("invalid").Inc()
		return apperrors.ValidationError("no file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return apperrors.InternalError("failed to open upload", err)
	}
	defer func() { _ = file.Close() }()

	ctx := c.Request().Context()
	started := s.clock.Now()

	ds, err := ingest.Parse(file)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	annotated, err := s.annotator.Annotate(ctx, ds.Reviews)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return apperrors.InternalError("sentiment analysis failed", err)
	}

	result := report.Build(ds, annotated)

	elapsed := s.clock.Since(started)
	metrics.AnalysisDuration.Observe(elapsed.Seconds())
	metrics.UploadsTotal.WithLabelValues("ok").Inc()

	slog.InfoContext(ctx, "Analysis completed",
		"report_id", result.ID.String(),
		"file", fileHeader.Filename,
		"reviews", result.TotalReviews,
		"duration_ms", elapsed.Milliseconds(),
	)

	return c.JSON(200, result)
}
