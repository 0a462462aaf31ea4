package app

import (
	"GoReviews/internal/config"
	"GoReviews/internal/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Deps is everything the HTTP layer needs to build its routes.
type Deps struct {
	DB      *pgxpool.Pool
	Config  config.Config
	Log     zerolog.Logger
	Metrics *metrics.Collector
}
