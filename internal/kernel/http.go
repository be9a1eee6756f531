// Package kernel assembles the HTTP handler: global middleware stack,
// metrics endpoint, and the API routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/nightcap/app/routes"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"github.com/shashiranjanraj/nightcap/pkg/metrics"
	"github.com/shashiranjanraj/nightcap/pkg/middleware"
	"github.com/shashiranjanraj/nightcap/pkg/reqid"
	"github.com/shashiranjanraj/nightcap/pkg/router"
	"github.com/shashiranjanraj/nightcap/pkg/session"
	"gorm.io/gorm"
)

// NewHandler builds the full HTTP handler.
//
// Global middleware stack (outermost → innermost):
//  1. Prometheus metrics — outermost for accurate total latency
//  2. Recovery           — catches panics before they kill the goroutine
//  3. Request ID         — inject unique ID before anything logs
//  4. Logger             — logs request_id from context
//  5. Session            — load/create the server-side auth session
//  6. CORS               — set CORS headers
//  7. Rate limiter       — reject abusers early
//  8. Identify           — resolve token + session into an Identity
func NewHandler(db *gorm.DB, cat *catalog.Catalog) http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))
	r.Use(middleware.Identify)

	// Prometheus endpoint — no auth.
	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, db, cat)

	return r.Handler()
}
