package nextArrival

import (
	"context"
	"log/slog"
	"net/http"

	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Arrival *models.Arrival `json:"arrival"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArrivalGetter
type ArrivalGetter interface {
	NextArrival(ctx context.Context, actor int64) (*models.Arrival, error)
}

// New answers with the actor's next stay and the days left until it, or 204
// when nothing is booked ahead.
func New(log *slog.Logger, getter ArrivalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.nextArrival.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("login required"))
			return
		}

		arrival, err := getter.NextArrival(r.Context(), actor)
		if err != nil {
			log.Error("failed to get next arrival", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get next arrival"))
			return
		}

		if arrival == nil {
			render.NoContent(w, r)
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Arrival:  arrival,
		})
	}
}
