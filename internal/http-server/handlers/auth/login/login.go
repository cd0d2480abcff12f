package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/jwt"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
	"tridivya/internal/storage"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// New handles POST /auth/login. The token is returned in the body and
// mirrored into the auth cookie.
func New(log *slog.Logger, users UserProvider, secret string, ttl time.Duration, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

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

		user, err := users.GetUserByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		if user == nil || bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)) != nil {
			log.Info("invalid credentials")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid email or password"))
			return
		}

		token, err := jwt.NewToken(user, secret, ttl)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		auth.SetCookie(w, token, time.Now().Add(ttl), secureCookie)

		log.Info("user logged in", slog.String("user_id", user.ID.String()))

		render.JSON(w, r, Response{Response: response.OK(), Token: token, User: user})
	}
}
