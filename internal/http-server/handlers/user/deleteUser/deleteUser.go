package deleteUser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserDeleter
type UserDeleter interface {
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRevoker
type UserRevoker interface {
	RevokeUser(ctx context.Context, userID uuid.UUID, ttl time.Duration) error
}

// New handles DELETE /admin/users/{id}. Bookings and saved items go with
// the user, and so do the user's tokens.
func New(log *slog.Logger, deleter UserDeleter, revoker UserRevoker, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.deleteUser.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		id, err := params.UUID(r, "id")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id format"))
			return
		}

		if id == claims.UserID {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("cannot delete your own account"))
			return
		}

		if err = revoker.RevokeUser(r.Context(), id, tokenTTL); err != nil {
			log.Error("failed to revoke user tokens", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete user"))
			return
		}

		if err = deleter.DeleteUser(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}
			log.Error("failed to delete user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete user"))
			return
		}

		log.Info("user deleted", slog.String("user_id", id.String()))

		render.JSON(w, r, response.OK())
	}
}
