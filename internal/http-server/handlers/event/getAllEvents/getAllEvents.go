package getAllEvents

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

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

// Query holds the optional user, from and to filters of the calendar feed.
type Query struct {
	User int64  `validate:"min=0"`
	From string `validate:"omitempty,datetime=2006-01-02"`
	To   string `validate:"omitempty,datetime=2006-01-02"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Events(ctx context.Context, viewer int64, f scheduler.EventFilter) (iter.Seq[models.EventView], error)
}

// New serves the calendar feed as a bare JSON array of all-day events.
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		viewer, ok := auth.ActorFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("login required"))
			return
		}

		values := r.URL.Query()

		q := Query{
			From: values.Get("from"),
			To:   values.Get("to"),
		}

		if raw := values.Get("user"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				log.Info("invalid user filter", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid user"))
				return
			}
			q.User = id
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

		filter := scheduler.EventFilter{
			OwnerID: q.User,
			From:    optionalDate(q.From),
			To:      optionalDate(q.To),
		}

		events, err := eventsGetter.Events(r.Context(), viewer, filter)
		if err != nil {
			if errors.Is(err, scheduler.ErrInvalidRange) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("to is before from"))
				return
			}

			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		list := slices.Collect(events)
		if list == nil {
			list = []models.EventView{}
		}

		log.Debug("events retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}

// optionalDate is nil for an absent parameter. Every present date, the first
// calendar day included, is a bound.
func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	d, _ := dates.Parse(s)

	return &d
}
