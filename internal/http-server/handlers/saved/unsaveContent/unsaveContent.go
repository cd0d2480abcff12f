package unsaveContent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentUnsaver
type ContentUnsaver interface {
	UnsaveContent(ctx context.Context, userID, contentID uuid.UUID, kind models.ContentKind) error
}

// New handles DELETE /saved/{kind}/{id}.
func New(log *slog.Logger, unsaver ContentUnsaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.saved.unsaveContent.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

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

		if err = unsaver.UnsaveContent(r.Context(), claims.UserID, id, kind); err != nil {
			if errors.Is(err, storage.ErrNotSaved) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not saved"))
				return
			}
			log.Error("failed to unsave content", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to unsave content"))
			return
		}

		render.JSON(w, r, response.OK())
	}
}
