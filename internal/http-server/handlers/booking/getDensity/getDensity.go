package getDensity

import (
	"context"
	"log/slog"
	"net/http"

	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DensityGetter
type DensityGetter interface {
	Density(ctx context.Context) ([]models.DensityPoint, error)
}

// New serves the per-start-date booking counts that feed the heat-map.
func New(log *slog.Logger, getter DensityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getDensity.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		points, err := getter.Density(r.Context())
		if err != nil {
			log.Error("failed to get density", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get density"))
			return
		}

		if points == nil {
			points = []models.DensityPoint{}
		}

		render.JSON(w, r, points)
	}
}
