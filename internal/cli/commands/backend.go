package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/conradludgate/interim"
	"github.com/conradludgate/interim/internal/cli/config"
	"github.com/conradludgate/interim/pkg/adapters/civil"
	"github.com/conradludgate/interim/pkg/adapters/epoch"
	"github.com/conradludgate/interim/pkg/adapters/systime"
)

// loadLocation resolves the configured zone name.
func loadLocation(cfg *config.Config) (*time.Location, error) {
	if cfg.Zone == "" || cfg.Zone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(cfg.Zone)
	if err != nil {
		return nil, fmt.Errorf("unknown zone %q: %w", cfg.Zone, err)
	}
	return loc, nil
}

// baseTime resolves the configured base instant, defaulting to now.
func baseTime(cfg *config.Config, loc *time.Location) (time.Time, error) {
	if cfg.Base == "" {
		return time.Now().In(loc), nil
	}
	base, err := time.Parse(time.RFC3339, cfg.Base)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid base instant %q: %w", cfg.Base, err)
	}
	return base.In(loc), nil
}

// resolveInput parses input against the named backend and renders the
// resulting instant with the configured format.
func resolveInput(cfg *config.Config, backend, input string, logger *slog.Logger) (string, error) {
	dialect, err := cfg.ParseDialect()
	if err != nil {
		return "", err
	}
	loc, err := loadLocation(cfg)
	if err != nil {
		return "", err
	}
	base, err := baseTime(cfg, loc)
	if err != nil {
		return "", err
	}

	logger.Debug("resolving expression",
		slog.String("input", input),
		slog.String("backend", backend),
		slog.String("base", base.Format(time.RFC3339)))

	switch backend {
	case "systime":
		cal := systime.New(loc)
		got, err := interim.ParseDateString[time.Time](cal, input, base, dialect)
		if err != nil {
			return "", err
		}
		return got.Format(cfg.Format), nil

	case "civil":
		cal := civil.New()
		y, mo, d := base.Date()
		hh, mm, ss := base.Clock()
		got, err := interim.ParseDateString[civil.DateTime](cal, input, civil.Date(y, int(mo), d).At(hh, mm, ss), dialect)
		if err != nil {
			return "", err
		}
		return got.String(), nil

	case "epoch":
		_, offset := base.Zone()
		cal := epoch.New(int64(offset))
		got, err := interim.ParseDateString[epoch.Seconds](cal, input, epoch.Seconds(base.Unix()), dialect)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", got.Unix()), nil
	}
	return "", fmt.Errorf("unknown backend %q", backend)
}
