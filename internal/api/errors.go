package api

import (
	"errors"
	"net/http"

	"GoReviews/internal/app"

	"github.com/rs/zerolog"
)

// ErrorHandler turns errors forwarded by resource handlers into JSON
// responses. Anything it does not recognise is a 500 and gets logged.
func ErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, app.ErrReviewNotFound):
		writeErr(w, http.StatusNotFound, "review not found")
	case errors.Is(err, app.ErrInvalidNumber):
		writeErr(w, http.StatusBadRequest, "invalid review number")
	case errors.Is(err, app.ErrStoreUnavailable):
		writeErr(w, http.StatusServiceUnavailable, app.ErrStoreUnavailable.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeErr(w, http.StatusInternalServerError, "internal server error")
	}
}

// NotFoundHandler is the JSON 404 every unmatched request ends at.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeErr(w, http.StatusNotFound, "not found")
	}
}
