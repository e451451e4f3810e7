package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/dates"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"
	"houseBooker/internal/scheduler"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Companions string `json:"companions,omitempty" validate:"max=255"`
	Force      bool   `json:"force,omitempty"`
}

type Response struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(ctx context.Context, actor int64, in scheduler.NewBooking) (models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

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
			if errors.As(err, &validateErr) {
				log.Info("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		// both dates passed the datetime rule above
		start, _ := dates.Parse(req.StartDate)
		end, _ := dates.Parse(req.EndDate)

		booking, err := creator.Create(r.Context(), actor, scheduler.NewBooking{
			Start:      start,
			End:        end,
			Companions: req.Companions,
			Force:      req.Force,
		})
		if err != nil {
			switch {
			case errors.Is(err, scheduler.ErrInvalidRange):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("end date is before start date"))
			case errors.Is(err, scheduler.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("dates overlap an existing booking"))
			default:
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int64("booking_id", booking.ID))

		responseCreated(w, r, booking)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{
		Response: response.OK(),
		Booking:  booking,
	})
}
