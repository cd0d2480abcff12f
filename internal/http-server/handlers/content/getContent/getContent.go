package getContent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

type Response struct {
	response.Response
	Item models.Content `json:"item,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentGetter
type ContentGetter interface {
	GetContent(ctx context.Context, kind models.ContentKind, id uuid.UUID) (models.Content, error)
}

// New handles GET /content/{kind}/{id}. Inactive items are only visible
// when includeInactive is set.
func New(log *slog.Logger, getter ContentGetter, includeInactive bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.getContent.New"

		log := log.With(slog.String("op", op))

		kind, err := params.Kind(r)
		if err != nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("unknown content kind"))
			return
		}

		id, err := params.UUID(r, "id")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid content id format"))
			return
		}

		item, err := getter.GetContent(r.Context(), kind, id)
		if err != nil {
			if errors.Is(err, storage.ErrContentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
				return
			}
			log.Error("failed to get content", slog.String("id", id.String()), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get content"))
			return
		}

		if !item.Base().IsActive && !includeInactive {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("content not found"))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), Item: item})
	}
}
