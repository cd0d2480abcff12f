package saveContent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

type Request struct {
	ContentID   string             `json:"content_id" validate:"required,uuid"`
	ContentType models.ContentKind `json:"content_type" validate:"required,oneof=yoga meditation mantra library"`
}

type Response struct {
	response.Response
	Saved *models.SavedContent `json:"saved,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentSaver
type ContentSaver interface {
	SaveContent(ctx context.Context, userID, contentID uuid.UUID, kind models.ContentKind) (*models.SavedContent, error)
}

// New handles POST /saved.
func New(log *slog.Logger, saver ContentSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.saved.saveContent.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

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

		saved, err := saver.SaveContent(r.Context(), claims.UserID, uuid.MustParse(req.ContentID), req.ContentType)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrContentNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
			case errors.Is(err, storage.ErrAlreadySaved):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("content already saved"))
			default:
				log.Error("failed to save content", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to save content"))
			}
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{Response: response.OK(), Saved: saved})
	}
}
