package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/ahhreggi/iss-spotter/internal/config"
	"github.com/ahhreggi/iss-spotter/internal/flyover"
	"github.com/ahhreggi/iss-spotter/internal/presenter"
	"github.com/ahhreggi/iss-spotter/internal/timezone"
)

// App encapsulates application dependencies
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	flyoverService flyover.Service
	guesser        *timezone.Guesser
	presenter      *presenter.Presenter
}

// NewApp creates a new application with real provider clients
func NewApp(cfg *config.Config, logger *slog.Logger, out, errOut io.Writer) *App {
	return NewAppWithServices(
		cfg,
		logger,
		flyover.NewService(cfg, logger),
		timezone.NewGuesser(cfg.Timezone.Default, cfg.Timezone.FromLocation, logger),
		presenter.New(out, errOut, logger),
	)
}

// NewAppWithServices creates an application with injected services
func NewAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	flyoverService flyover.Service,
	guesser *timezone.Guesser,
	presenter *presenter.Presenter,
) *App {
	return &App{
		cfg:            cfg,
		logger:         logger,
		flyoverService: flyoverService,
		guesser:        guesser,
		presenter:      presenter,
	}
}

// Run looks up the next passes and prints them. On failure the error is
// printed and returned so the caller can set the exit status.
func (app *App) Run(ctx context.Context) error {
	result, err := app.flyoverService.NextPasses(ctx)
	if err != nil {
		app.presenter.PrintError(err)
		return err
	}

	app.logger.Debug("found passes",
		"ip", result.IP,
		"latitude", result.Coordinates.Latitude,
		"longitude", result.Coordinates.Longitude,
		"count", len(result.Passes),
	)

	requested := app.guesser.Canonical(app.cfg.Timezone.Requested)
	defaultTZ := requested
	if !timezone.Valid(requested) {
		defaultTZ = app.guesser.Guess(&result.Coordinates)
		app.logger.Debug("guessed default timezone", "timezone", defaultTZ)
	}

	app.presenter.PrintPassTimes(result.Passes, requested, defaultTZ)
	return nil
}
