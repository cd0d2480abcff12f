package register

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
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ImageURL  string `json:"imageUrl" validate:"omitempty,url"`
}

type Response struct {
	response.Response
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(ctx context.Context, u *models.User) error
}

// New handles POST /auth/register. New accounts are always plain users
// and are signed in straight away.
func New(log *slog.Logger, creator UserCreator, secret string, ttl time.Duration, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

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

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		user := &models.User{
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			Username:     req.Username,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			ImageURL:     req.ImageURL,
			Role:         models.RoleUser,
			PasswordHash: hash,
		}

		if err = creator.CreateUser(r.Context(), user); err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already exists"))
				return
			}
			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		token, err := jwt.NewToken(user, secret, ttl)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		auth.SetCookie(w, token, time.Now().Add(ttl), secureCookie)

		log.Info("user registered", slog.String("user_id", user.ID.String()))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{Response: response.OK(), Token: token, User: user})
	}
}
