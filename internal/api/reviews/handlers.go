package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"GoReviews/internal/app"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Controller serves reviews from Postgres.
type Controller struct {
	db app.DBTX
}

func NewController(db app.DBTX) *Controller {
	return &Controller{db: db}
}

func (c *Controller) Retrieve(w http.ResponseWriter, r *http.Request) error {
	if c.db == nil {
		return app.ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	out, err := app.ListReviews(ctx, c.db)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, out)
	return nil
}

func (c *Controller) RetrieveOne(w http.ResponseWriter, r *http.Request) error {
	if c.db == nil {
		return app.ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	number, err := Number(r)
	if err != nil {
		return err
	}

	rv, err := app.GetReview(ctx, c.db, number)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, rv)
	return nil
}
