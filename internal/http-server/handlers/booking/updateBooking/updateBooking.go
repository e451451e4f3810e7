package updateBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/dates"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"
	"houseBooker/internal/scheduler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Request moves or resizes a booking. The calendar sends the inclusive last
// day, not its exclusive event end.
type Request struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Force     bool   `json:"force,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	Update(ctx context.Context, actor, id int64, start, end time.Time, force bool) (models.Booking, error)
}

func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

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

		var req Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Info("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		start, _ := dates.Parse(req.StartDate)
		end, _ := dates.Parse(req.EndDate)

		_, err = updater.Update(r.Context(), actor, id, start, end, req.Force)
		if err != nil {
			switch {
			case errors.Is(err, scheduler.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, scheduler.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the owner can change this booking"))
			case errors.Is(err, scheduler.ErrInvalidRange):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("end date is before start date"))
			case errors.Is(err, scheduler.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("dates overlap an existing booking"))
			default:
				log.Error("failed to update booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking updated")

		render.NoContent(w, r)
	}
}
