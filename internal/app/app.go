package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/robotbuilder/internal/blueprint"
	"github.com/specialistvlad/robotbuilder/internal/builder"
	"github.com/specialistvlad/robotbuilder/internal/ctxlog"
	"github.com/specialistvlad/robotbuilder/internal/dice"
	"github.com/specialistvlad/robotbuilder/internal/prompt"
	"github.com/specialistvlad/robotbuilder/internal/report"
	"github.com/specialistvlad/robotbuilder/internal/robot"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger    *slog.Logger
	config    *Config
	continuer prompt.Continuer
	builder   *builder.Builder
	printer   *report.Printer
}

// Option customises an App. Options exist for tests.
type Option func(*options)

type options struct {
	source    dice.Source
	continuer prompt.Continuer
}

// WithSource replaces the seeded dice.
func WithSource(src dice.Source) Option {
	return func(o *options) { o.source = src }
}

// WithContinuer replaces the continuation query.
func WithContinuer(c prompt.Continuer) Option {
	return func(o *options) { o.continuer = c }
}

// NewApp is the constructor for the main application. Questions and progress
// go to outW, logs go to logW and answers are read from in.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config, opts ...Option) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	bp := blueprint.Default()
	if cfg.BlueprintPath != "" {
		loaded, err := blueprint.Load(ctx, cfg.BlueprintPath)
		if err != nil {
			return nil, err
		}
		bp = loaded
		logger.Info("Blueprint loaded.", "path", cfg.BlueprintPath, "target", bp.Target.String())
	}

	order, err := robot.BuildOrder()
	if err != nil {
		return nil, err
	}
	logger.Debug("Part dependency order resolved.", "order", order)

	if o.source == nil {
		o.source = dice.New(cfg.Seed)
	}
	if o.continuer == nil {
		if cfg.Robots > 0 {
			o.continuer = prompt.NewCounted(cfg.Robots)
		} else {
			o.continuer = prompt.NewTerminal(in, outW)
		}
	}

	printer := report.New(outW)
	builderOpts := append(bp.BuilderOptions(), builder.WithDiagnostics(cfg.Diagnose))

	return &App{
		logger:    logger,
		config:    cfg,
		continuer: o.continuer,
		builder:   builder.New(o.source, printer, builderOpts...),
		printer:   printer,
	}, nil
}

// String identifies the app configuration in logs.
func (a *App) String() string {
	return fmt.Sprintf("robotbuilder(seed=%d robots=%d blueprint=%q)", a.config.Seed, a.config.Robots, a.config.BlueprintPath)
}
