package deleteAnnouncement

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
	"tridivya/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AnnouncementDeleter
type AnnouncementDeleter interface {
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
}

func New(log *slog.Logger, deleter AnnouncementDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.announcement.deleteAnnouncement.New"

		log := log.With(slog.String("op", op))

		id, err := params.UUID(r, "id")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid announcement id format"))
			return
		}

		if err = deleter.DeleteAnnouncement(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrAnnouncementNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("announcement not found"))
				return
			}
			log.Error("failed to delete announcement", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete announcement"))
			return
		}

		log.Info("announcement deleted", slog.String("id", id.String()))

		render.JSON(w, r, response.OK())
	}
}
