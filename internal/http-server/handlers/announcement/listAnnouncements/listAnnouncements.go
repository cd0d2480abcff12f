package listAnnouncements

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
	Announcements []models.Announcement `json:"announcements"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AnnouncementLister
type AnnouncementLister interface {
	ListAnnouncements(ctx context.Context, publishedOnly bool) ([]models.Announcement, error)
}

// New handles GET /announcements (publishedOnly) and GET /admin/announcements.
func New(log *slog.Logger, lister AnnouncementLister, publishedOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.announcement.listAnnouncements.New"

		log := log.With(slog.String("op", op))

		list, err := lister.ListAnnouncements(r.Context(), publishedOnly)
		if err != nil {
			log.Error("failed to list announcements", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list announcements"))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), Announcements: list})
	}
}
