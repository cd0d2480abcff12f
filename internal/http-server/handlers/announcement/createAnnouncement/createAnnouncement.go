package createAnnouncement

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

// Request is shared with the update handler.
type Request struct {
	Title       string                    `json:"title" validate:"required"`
	Message     string                    `json:"message" validate:"required"`
	Tone        models.AnnouncementTone   `json:"tone" validate:"required,oneof=calm empower celebrate"`
	Status      models.AnnouncementStatus `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledAt *time.Time                `json:"scheduled_at"`
}

type Response struct {
	response.Response
	Announcement *models.Announcement `json:"announcement,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AnnouncementCreator
type AnnouncementCreator interface {
	CreateAnnouncement(ctx context.Context, a *models.Announcement) error
}

// New handles POST /admin/announcements. Status defaults to draft.
func New(log *slog.Logger, creator AnnouncementCreator, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.announcement.createAnnouncement.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
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

		a := &models.Announcement{
			Title:       req.Title,
			Message:     req.Message,
			Tone:        req.Tone,
			Status:      req.Status,
			ScheduledAt: req.ScheduledAt,
		}
		if a.Status == "" {
			a.Status = models.AnnouncementDraft
		}

		if err = a.CheckSchedule(now()); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err = creator.CreateAnnouncement(r.Context(), a); err != nil {
			log.Error("failed to create announcement", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create announcement"))
			return
		}

		log.Info("announcement created", slog.String("id", a.ID.String()), slog.String("status", string(a.Status)))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{Response: response.OK(), Announcement: a})
	}
}
