package server

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/config"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/correlation"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/domain"
	apperrors "github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/errors"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/web"
)

type Server struct {
	echo          *echo.Echo
	config        *config.Config
	annotator     domain.Annotator
	clock         clockwork.Clock
	startTime     time.Time
	pageTemplate  *template.Template
	uploadLimiter *IPRateLimiter
	analysisSlots *AnalysisLimiter
}

func NewServer(cfg *config.Config, annotator domain.Annotator, clock clockwork.Clock) (*Server, error) {
	pageTmpl, err := template.ParseFS(web.Templates, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB)))
	e.Use(correlationMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:          e,
		config:        cfg,
		annotator:     annotator,
		clock:         clock,
		startTime:     clock.Now(),
		pageTemplate:  pageTmpl,
		uploadLimiter: NewIPRateLimiter(cfg.UploadRPS, cfg.UploadBurst),
		analysisSlots: NewAnalysisLimiter(int64(cfg.MaxConcurrent)),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// correlationMiddleware issues a correlation ID per request so every log
// line downstream carries it.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := correlation.NewID()
			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Correlation-ID", id)
			return next(c)
		}
	}
}
