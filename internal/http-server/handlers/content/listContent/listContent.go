package listContent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

type Response struct {
	response.Response
	Kind  models.ContentKind `json:"kind"`
	Items []models.Content   `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentLister
type ContentLister interface {
	ListContent(ctx context.Context, kind models.ContentKind, f storage.ContentFilter) ([]models.Content, error)
}

// New handles GET /content/{kind}. Query: goal, difficulty, featured,
// trending, limit, offset. includeInactive is set on the admin route.
func New(log *slog.Logger, lister ContentLister, includeInactive bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.listContent.New"

		log := log.With(slog.String("op", op))

		kind, err := params.Kind(r)
		if err != nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("unknown content kind"))
			return
		}

		q := r.URL.Query()

		limit := min(params.Int(r, "limit", defaultLimit), maxLimit)
		if limit == 0 {
			limit = defaultLimit
		}

		f := storage.ContentFilter{
			GoalSlug:        q.Get("goal"),
			Difficulty:      models.Difficulty(q.Get("difficulty")),
			Featured:        q.Get("featured") == "true",
			Trending:        q.Get("trending") == "true",
			IncludeInactive: includeInactive,
			Limit:           limit,
			Offset:          params.Int(r, "offset", 0),
		}

		items, err := lister.ListContent(r.Context(), kind, f)
		if err != nil {
			log.Error("failed to list content", slog.String("kind", string(kind)), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list content"))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), Kind: kind, Items: items})
	}
}
