package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/config"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/sentiment"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:         "test",
		Port:           "0",
		LogLevel:       "error",
		LogFormat:      "text",
		MaxUploadMB:    4,
		AnalyzeWorkers: 2,
		MaxConcurrent:  2,
		UploadRPS:      1000,
		UploadBurst:    1000,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	annotator := sentiment.NewAnnotator(sentiment.NewVaderScorer(), cfg.AnalyzeWorkers)
	srv, err := NewServer(cfg, annotator, clockwork.NewFakeClock())
	require.NoError(t, err)
	return srv
}

// uploadRequest builds a multipart POST to /api/analyze with the given CSV body.
func uploadRequest(t *testing.T, csvBody string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "reviews.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
