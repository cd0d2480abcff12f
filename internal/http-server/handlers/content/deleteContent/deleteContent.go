package deleteContent

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentDeleter
type ContentDeleter interface {
	DeleteContent(ctx context.Context, kind models.ContentKind, id uuid.UUID) error
}

func New(log *slog.Logger, deleter ContentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.deleteContent.New"

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

		if err = deleter.DeleteContent(r.Context(), kind, id); err != nil {
			if errors.Is(err, storage.ErrContentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
				return
			}
			log.Error("failed to delete content", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete content"))
			return
		}

		log.Info("content deleted", slog.String("kind", string(kind)), slog.String("id", id.String()))

		render.JSON(w, r, response.OK())
	}
}
