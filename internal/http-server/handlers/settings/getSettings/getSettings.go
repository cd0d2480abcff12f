package getSettings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

type Response struct {
	response.Response
	Settings *models.Settings `json:"settings,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SettingsGetter
type SettingsGetter interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*models.Settings, error)
}

func New(log *slog.Logger, getter SettingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.getSettings.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		settings, err := getter.GetSettings(r.Context(), claims.UserID)
		if err != nil {
			log.Error("failed to get settings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get settings"))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), Settings: settings})
	}
}
