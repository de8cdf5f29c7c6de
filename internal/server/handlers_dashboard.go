package server

import (
	"bytes"

	"github.com/labstack/echo/v4"

	apperrors "github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/errors"
)

// handleDashboard renders the single-page dashboard. The page starts in its
// upload-prompt state; all data arrives later via POST /api/analyze.
func (s *Server) handleDashboard(c echo.Context) error {
	data := map[string]any{
		"MaxUploadMB": s.config.MaxUploadMB,
	}

	// Render into a buffer so a template failure never sends a half page.
	var buf bytes.Buffer
	if err := s.pageTemplate.Execute(&buf, data); err != nil {
		return apperrors.InternalError("failed to render dashboard", err)
	}

	return c.HTMLBlob(200, buf.Bytes())
}
