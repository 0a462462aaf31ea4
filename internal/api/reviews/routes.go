package reviews

import (
	"net/http"
	"net/url"

	"GoReviews/internal/app"

	"github.com/go-chi/chi/v5"
)

// NumberParam is the URL parameter carrying a single review's identifier.
const NumberParam = "number"

// Number returns the decoded number segment. chi matches on r.URL.RawPath
// when the request carries one, so the param is still escaped in that case
// and already decoded otherwise.
func Number(r *http.Request) (string, error) {
	raw := chi.URLParam(r, NumberParam)
	if r.URL == nil || r.URL.RawPath == "" {
		return raw, nil
	}
	n, err := url.PathUnescape(raw)
	if err != nil {
		return "", app.ErrInvalidNumber
	}
	return n, nil
}

// Accessor retrieves reviews. Failures are returned, never written, so the
// composing layer decides how they reach the client.
type Accessor interface {
	Retrieve(w http.ResponseWriter, r *http.Request) error
	RetrieveOne(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler receives any error an Accessor returns, unchanged.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type options struct {
	next     ErrorHandler
	fallback http.Handler
}

type Option func(*options)

// WithErrorHandler sets where accessor errors are forwarded.
func WithErrorHandler(next ErrorHandler) Option {
	return func(o *options) { o.next = next }
}

// WithFallback sets the handler for requests the table does not match,
// including non-GET methods on a matched path. Without it the router keeps
// chi's defaults, or inherits the parent's handlers when mounted.
func WithFallback(h http.Handler) Option {
	return func(o *options) { o.fallback = h }
}

// Routes binds GET / to Retrieve and GET /{number} to RetrieveOne on r.
func Routes(r chi.Router, acc Accessor, next ErrorHandler) {
	if next == nil {
		next = defaultErrorHandler
	}
	r.Get("/", forward(acc.Retrieve, next))
	r.Get("/{"+NumberParam+"}", forward(acc.RetrieveOne, next))
}

// NewRouter returns a fresh router carrying only the review bindings, ready to
// be mounted under whatever prefix the caller picks.
func NewRouter(acc Accessor, opts ...Option) chi.Router {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	if o.fallback != nil {
		r.NotFound(o.fallback.ServeHTTP)
		r.MethodNotAllowed(o.fallback.ServeHTTP)
	}
	Routes(r, acc, o.next)
	return r
}

func forward(h func(http.ResponseWriter, *http.Request) error, next ErrorHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			next(w, r, err)
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
