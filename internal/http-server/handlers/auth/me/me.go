package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

type Response struct {
	response.Response
	User *models.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

func New(log *slog.Logger, users UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		user, err := users.GetUser(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				// account deleted while the token was still live
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user no longer exists"))
				return
			}
			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get user"))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), User: user})
	}
}
