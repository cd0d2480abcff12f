package updateContent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"tridivya/internal/http-server/handlers/content/createContent"
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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentUpdater
type ContentUpdater interface {
	UpdateContent(ctx context.Context, c models.Content) error
}

// New handles PUT /admin/content/{kind}/{id}, replacing the whole item.
func New(log *slog.Logger, updater ContentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.updateContent.New"

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

		item, ok := createContent.Decode(w, r, log, kind)
		if !ok {
			return
		}
		item.Base().ID = id

		if err = updater.UpdateContent(r.Context(), item); err != nil {
			if errors.Is(err, storage.ErrContentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
				return
			}
			log.Error("failed to update content", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update content"))
			return
		}

		log.Info("content updated", slog.String("kind", string(kind)), slog.String("id", id.String()))

		render.JSON(w, r, Response{Response: response.OK(), Item: item})
	}
}
