package checkOverlap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/dates"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/scheduler"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Query is read from start_date, end_date and the optional exclude_id, which
// the edit form passes so a booking does not collide with itself.
type Query struct {
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`
	ExcludeID int64  `validate:"min=0"`
}

type Response struct {
	response.Response
	Overlap bool `json:"overlap"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OverlapChecker
type OverlapChecker interface {
	Overlaps(ctx context.Context, start, end time.Time, excludeID int64) (bool, error)
}

func New(log *slog.Logger, checker OverlapChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.checkOverlap.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		values := r.URL.Query()

		q := Query{
			StartDate: values.Get("start_date"),
			EndDate:   values.Get("end_date"),
		}

		if raw := values.Get("exclude_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				log.Info("invalid exclude_id", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid exclude_id"))
				return
			}
			q.ExcludeID = id
		}

		if err := validator.New().Struct(q); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Info("invalid query", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		start, _ := dates.Parse(q.StartDate)
		end, _ := dates.Parse(q.EndDate)

		overlap, err := checker.Overlaps(r.Context(), start, end, q.ExcludeID)
		if err != nil {
			if errors.Is(err, scheduler.ErrInvalidRange) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("end date is before start date"))
				return
			}

			log.Error("failed to check overlap", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check overlap"))
			return
		}

		responseOK(w, r, overlap)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, overlap bool) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Overlap:  overlap,
	})
}
