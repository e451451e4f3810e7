// Command fill-colors gives every household member without a valid #RRGGBB
// color one from the golden-ratio palette. Running it twice changes nothing.
package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"houseBooker/internal/config"
	"houseBooker/internal/lib/logger/handlers/slogpretty"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/lib/palette"
	"houseBooker/internal/models"
	"houseBooker/internal/storage/postgres"
	"houseBooker/internal/storage/sqlite"
)

type colorStore interface {
	Users(ctx context.Context) ([]models.User, error)
	SetUserColors(ctx context.Context, colors map[int64]string) error
	Close() error
}

func main() {
	dryRun := flag.Bool("dry-run", false, "only print the colors that would be assigned")
	flag.Parse()

	cfg := config.MustLoad()

	log := slog.New(slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo},
	}.NewPrettyHandler(os.Stdout))

	store, err := openStore(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}
	defer store.Close()

	if _, err = fillColors(context.Background(), log, store, *dryRun); err != nil {
		log.Error("failed to fill colors", sl.Err(err))
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (colorStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		s, err := sqlite.New(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// fillColors assigns palette colors in user id order and returns the
// assignment. With dryRun nothing is written.
func fillColors(ctx context.Context, log *slog.Logger, store colorStore, dryRun bool) (map[int64]string, error) {
	const op = "fill-colors.fillColors"

	users, err := store.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	needing := slices.DeleteFunc(users, func(u models.User) bool {
		return palette.IsHexColor(u.Color)
	})
	if len(needing) == 0 {
		log.Info("all users already have a valid color")
		return nil, nil
	}

	slices.SortFunc(needing, func(a, b models.User) int {
		return cmp.Compare(a.ID, b.ID)
	})

	colors := palette.Golden(len(needing), palette.DefaultOffset)

	updates := make(map[int64]string, len(needing))
	for i, u := range needing {
		updates[u.ID] = colors[i]
		log.Info("color assigned",
			slog.Int64("user_id", u.ID),
			slog.String("color", colors[i]),
			slog.Bool("dry_run", dryRun),
		)
	}

	if dryRun {
		log.Info("dry run finished, nothing written")
		return updates, nil
	}

	if err = store.SetUserColors(ctx, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("colors written", slog.Int("count", len(updates)))

	return updates, nil
}
