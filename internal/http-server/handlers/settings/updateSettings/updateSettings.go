package updateSettings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

type Response struct {
	response.Response
	Settings *models.Settings `json:"settings,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SettingsSaver
type SettingsSaver interface {
	SaveSettings(ctx context.Context, settings *models.Settings) error
}

// New handles PUT /settings. Sections missing from the body keep their
// default values.
func New(log *slog.Logger, saver SettingsSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.updateSettings.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		settings := models.DefaultSettings(claims.UserID)

		err := render.DecodeJSON(r.Body, &settings)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		// never trust the body's owner
		settings.UserID = claims.UserID

		if err = validator.New().Struct(settings); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if err = saver.SaveSettings(r.Context(), &settings); err != nil {
			log.Error("failed to save settings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save settings"))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), Settings: &settings})
	}
}
