package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidNumber  = errors.New("invalid review number")

	ErrStoreUnavailable = errors.New("review store unavailable")
)

type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Review struct {
	ID        int64     `json:"id"`
	Number    string    `json:"number"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Body      *string   `json:"body"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ListReviews returns every review ordered by number. An empty table yields
// an empty, non-nil slice.
func ListReviews(ctx context.Context, db DBTX) ([]Review, error) {
	rows, err := db.Query(ctx,
		`SELECT id, number, product_id, rating, title, body, author, created_at
		 FROM reviews
		 ORDER BY number, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	out := make([]Review, 0, 32)
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.Number, &rv.ProductID, &rv.Rating, &rv.Title, &rv.Body, &rv.Author, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reviews: %w", err)
	}
	return out, nil
}

// GetReview loads a single review by its number. The number is matched
// verbatim; only a blank value is rejected.
func GetReview(ctx context.Context, db DBTX, number string) (Review, error) {
	if strings.TrimSpace(number) == "" {
		return Review{}, ErrInvalidNumber
	}

	var rv Review
	err := db.QueryRow(ctx,
		`SELECT id, number, product_id, rating, title, body, author, created_at
		 FROM reviews
		 WHERE number = $1`,
		number,
	).Scan(&rv.ID, &rv.Number, &rv.ProductID, &rv.Rating, &rv.Title, &rv.Body, &rv.Author, &rv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Review{}, ErrReviewNotFound
		}
		return Review{}, fmt.Errorf("get review %q: %w", number, err)
	}
	return rv, nil
}
