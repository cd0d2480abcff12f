package createContent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"tridivya/internal/lib/api/params"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

// MaxBodyBytes caps content bodies; library articles carry their full text.
const MaxBodyBytes = 1 << 20

type Response struct {
	response.Response
	Item models.Content `json:"item,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContentCreator
type ContentCreator interface {
	CreateContent(ctx context.Context, c models.Content) error
}

// New handles POST /admin/content/{kind}. The body may only carry fields
// of that kind.
func New(log *slog.Logger, creator ContentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.createContent.New"

		log := log.With(slog.String("op", op))

		kind, err := params.Kind(r)
		if err != nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("unknown content kind"))
			return
		}

		item, ok := Decode(w, r, log, kind)
		if !ok {
			return
		}

		if err = creator.CreateContent(r.Context(), item); err != nil {
			log.Error("failed to create content", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create content"))
			return
		}

		log.Info("content created", slog.String("kind", string(kind)), slog.String("id", item.Base().ID.String()))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{Response: response.OK(), Item: item})
	}
}

// Decode reads and validates a content body for kind, writing the error
// response itself when it fails. Shared with the update handler.
func Decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, kind models.ContentKind) (models.Content, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		log.Error("failed to read request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return nil, false
	}

	item, err := models.DecodeContent(kind, body)
	if err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return nil, false
	}

	if err = validator.New().Struct(item); err != nil {
		var validateErr validator.ValidationErrors
		errors.As(err, &validateErr)

		log.Error("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(validateErr))
		return nil, false
	}

	return item, true
}
