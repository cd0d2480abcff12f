package search

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

const (
	defaultLimit = 20
	maxLimit     = 50
)

type Response struct {
	response.Response
	Query string           `json:"query"`
	Items []models.Content `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentSearcher
type ContentSearcher interface {
	SearchContent(ctx context.Context, q string, kind models.ContentKind, limit int) ([]models.Content, error)
}

// New handles GET /search?q=&kind=. An empty kind searches every kind.
func New(log *slog.Logger, searcher ContentSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.search.New"

		log := log.With(slog.String("op", op))

		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if q == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("query is required"))
			return
		}

		var kind models.ContentKind
		if raw := r.URL.Query().Get("kind"); raw != "" {
			k, err := models.ParseContentKind(raw)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown content kind"))
				return
			}
			kind = k
		}

		limit := min(params.Int(r, "limit", defaultLimit), maxLimit)
		if limit == 0 {
			limit = defaultLimit
		}

		items, err := searcher.SearchContent(r.Context(), q, kind, limit)
		if err != nil {
			log.Error("failed to search content", slog.String("q", q), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search content"))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), Query: q, Items: items})
	}
}
