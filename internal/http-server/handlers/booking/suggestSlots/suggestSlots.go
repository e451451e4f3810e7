package suggestSlots

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"houseBooker/internal/lib/api/response"
	"houseBooker/internal/lib/dates"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"
	"houseBooker/internal/scheduler"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Query is read from start_date, end_date, radius and max. An absent radius
// or max falls back to the configured default; an explicit 0 is kept.
type Query struct {
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`
	Radius    *int   `validate:"omitnil,min=0,max=365"`
	Max       *int   `validate:"omitnil,min=0,max=20"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotSuggester
type SlotSuggester interface {
	Suggest(ctx context.Context, q scheduler.SuggestQuery) ([]models.Slot, error)
}

func New(log *slog.Logger, suggester SlotSuggester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.suggestSlots.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		values := r.URL.Query()

		q := Query{
			StartDate: values.Get("start_date"),
			EndDate:   values.Get("end_date"),
		}

		for _, p := range []struct {
			name string
			dst  **int
		}{
			{"radius", &q.Radius},
			{"max", &q.Max},
		} {
			raw := values.Get(p.name)
			if raw == "" {
				continue
			}

			n, err := strconv.Atoi(raw)
			if err != nil {
				log.Info("invalid query parameter", slog.String("param", p.name), sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid "+p.name))
				return
			}
			*p.dst = &n
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

		slots, err := suggester.Suggest(r.Context(), scheduler.SuggestQuery{
			Start:      start,
			End:        end,
			RadiusDays: q.Radius,
			MaxResults: q.Max,
		})
		if err != nil {
			if errors.Is(err, scheduler.ErrInvalidRange) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("end date is before start date"))
				return
			}

			log.Error("failed to suggest slots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to suggest slots"))
			return
		}

		log.Debug("slots suggested", slog.Int("count", len(slots)))

		if slots == nil {
			slots = []models.Slot{}
		}

		render.JSON(w, r, slots)
	}
}
