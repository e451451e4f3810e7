package deleteBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/scheduler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	Delete(ctx context.Context, actor, id int64) error
}

func New(log *slog.Logger, deleter BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.deleteBooking.New"

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

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Info("invalid booking id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id"))
			return
		}

		log = log.With(slog.Int64("booking_id", id))

		if err = deleter.Delete(r.Context(), actor, id); err != nil {
			switch {
			case errors.Is(err, scheduler.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, scheduler.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the owner can delete this booking"))
			default:
				log.Error("failed to delete booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete booking"))
			}
			return
		}

		log.Info("booking deleted")

		render.NoContent(w, r)
	}
}
