package listSaved

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
	Items []models.Content `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SavedLister
type SavedLister interface {
	ListSavedContent(ctx context.Context, userID uuid.UUID) ([]models.Content, error)
}

// New handles GET /saved, newest save first.
func New(log *slog.Logger, lister SavedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.saved.listSaved.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		items, err := lister.ListSavedContent(r.Context(), claims.UserID)
		if err != nil {
			log.Error("failed to list saved content", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list saved content"))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), Items: items})
	}
}
