package logout

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenRevoker
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// New handles POST /auth/logout. The token stays revoked for the rest of
// its lifetime.
func New(log *slog.Logger, revoker TokenRevoker, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		if err := revoker.Revoke(r.Context(), claims.ID, claims.Remaining()); err != nil {
			log.Error("failed to revoke token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to logout"))
			return
		}

		auth.ClearCookie(w, secureCookie)

		log.Info("user logged out", slog.String("user_id", claims.UserID.String()))

		render.JSON(w, r, response.OK())
	}
}
