// Package server implements the HTTP server using Echo framework.
//
// Routes: dashboard page (GET /), analysis API (POST /api/analyze),
// observability (health, metrics, version). Handlers split by concern:
// handlers_dashboard.go, handlers_api.go, handlers_health.go.
package server
