package params

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tridivya/internal/models"
)

var (
	ErrMissing = errors.New("missing url parameter")
	ErrInvalid = errors.New("invalid url parameter")
)

// UUID reads a uuid chi URL parameter.
func UUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, ErrMissing
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalid
	}

	return id, nil
}

// Int reads an integer query parameter, returning def when it is absent or malformed.
func Int(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}

	return n
}

// Kind reads the content kind chi URL parameter.
func Kind(r *http.Request) (models.ContentKind, error) {
	kind, err := models.ParseContentKind(chi.URLParam(r, "kind"))
	if err != nil {
		return "", ErrInvalid
	}

	return kind, nil
}
