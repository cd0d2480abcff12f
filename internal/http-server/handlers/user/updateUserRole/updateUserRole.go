package updateUserRole

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

type Request struct {
	Role models.Role `json:"role" validate:"required,oneof=user admin"`
}

type Response struct {
	response.Response
	User *models.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoleUpdater
type RoleUpdater interface {
	UpdateUserRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRevoker
type UserRevoker interface {
	RevokeUser(ctx context.Context, userID uuid.UUID, ttl time.Duration) error
}

// New handles PATCH /admin/users/{id}/role. Admins cannot change their
// own role, so the last admin cannot lock everyone out. The user's existing
// tokens still carry the old role and are revoked first; tokenTTL bounds how
// long that revocation must be kept.
func New(log *slog.Logger, updater RoleUpdater, revoker UserRevoker, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.updateUserRole.New"

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

		var req Request

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

		if id == claims.UserID {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("cannot change your own role"))
			return
		}

		if err = revoker.RevokeUser(r.Context(), id, tokenTTL); err != nil {
			log.Error("failed to revoke user tokens", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update role"))
			return
		}

		user, err := updater.UpdateUserRole(r.Context(), id, req.Role)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}
			log.Error("failed to update role", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update role"))
			return
		}

		log.Info("user role updated", slog.String("user_id", id.String()), slog.String("role", string(req.Role)))

		render.JSON(w, r, Response{Response: response.OK(), User: user})
	}
}
