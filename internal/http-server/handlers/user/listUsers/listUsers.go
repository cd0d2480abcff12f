package listUsers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

type Response struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserLister
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

func New(log *slog.Logger, lister UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.listUsers.New"

		log := log.With(slog.String("op", op))

		users, err := lister.ListUsers(r.Context())
		if err != nil {
			log.Error("failed to list users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list users"))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), Users: users})
	}
}
