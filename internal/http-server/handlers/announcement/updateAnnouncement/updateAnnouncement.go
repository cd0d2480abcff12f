package updateAnnouncement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tridivya/internal/http-server/handlers/announcement/createAnnouncement"
	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

type Response struct {
	response.Response
	Announcement *models.Announcement `json:"announcement,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AnnouncementUpdater
type AnnouncementUpdater interface {
	GetAnnouncement(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, a *models.Announcement) error
}

// New handles PUT /admin/announcements/{id}. An empty status keeps the
// current one; published announcements cannot go back.
func New(log *slog.Logger, updater AnnouncementUpdater, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.announcement.updateAnnouncement.New"

		log := log.With(slog.String("op", op))

		id, err := params.UUID(r, "id")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid announcement id format"))
			return
		}

		var req createAnnouncement.Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		a, err := updater.GetAnnouncement(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrAnnouncementNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("announcement not found"))
				return
			}
			log.Error("failed to get announcement", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update announcement"))
			return
		}

		next := req.Status
		if next == "" {
			next = a.Status
		}

		if !a.Status.CanMoveTo(next) {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error(fmt.Sprintf("cannot move announcement from %s to %s", a.Status, next)))
			return
		}

		// a schedule that has already passed may stay as long as it is untouched
		rescheduled := next != a.Status || !sameTime(a.ScheduledAt, req.ScheduledAt)

		a.Title = req.Title
		a.Message = req.Message
		a.Tone = req.Tone
		a.Status = next
		a.ScheduledAt = req.ScheduledAt

		if rescheduled {
			if err = a.CheckSchedule(now()); err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
		}

		if err = updater.UpdateAnnouncement(r.Context(), a); err != nil {
			if errors.Is(err, storage.ErrAnnouncementNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("announcement not found"))
				return
			}
			log.Error("failed to update announcement", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update announcement"))
			return
		}

		log.Info("announcement updated", slog.String("id", id.String()), slog.String("status", string(a.Status)))

		render.JSON(w, r, Response{Response: response.OK(), Announcement: a})
	}
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}
