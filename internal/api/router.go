package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"GoReviews/internal/api/reviews"
	"GoReviews/internal/app"
	"GoReviews/internal/config"
	"GoReviews/internal/logging"
)

func NewRouter(deps app.Deps) chi.Router {
	r := chi.NewRouter()

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})

	timeout := deps.Config.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	limit := deps.Config.RateLimitPerMinute
	if limit <= 0 {
		limit = 100
	}

	// Global middleware
	r.Use(func(next http.Handler) http.Handler {
		return secureMiddleware.Handler(next)
	})
	r.Use(logging.RequestID(deps.Log))
	r.Use(middleware.RealIP)
	r.Use(logging.AccessLog)
	r.Use(middleware.Recoverer)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.CleanPath)

	// Global rate limit per IP
	r.Use(httprate.LimitByIP(limit, 1*time.Minute))

	notFound := NotFoundHandler()
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	prefix := deps.Config.ReviewsPrefix
	if prefix == "" {
		prefix = config.DefaultReviewsPrefix
	}

	// The review store is optional so the router can be built without a DB.
	var store app.DBTX
	if deps.DB != nil {
		store = deps.DB
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", HealthHandler())
		r.Get("/ready", ReadyHandler(deps.DB))
		r.Get("/version", VersionHandler())

		r.Mount(prefix, reviews.NewRouter(
			reviews.NewController(store),
			reviews.WithErrorHandler(ErrorHandler),
			reviews.WithFallback(notFound),
		))
	})

	return r
}
