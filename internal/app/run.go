package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/robotbuilder/internal/ctxlog"
)

// Run asks whether to build a robot and builds one until the answer is no.
// Builds are strictly sequential. A build that exceeds its safety limit ends
// the session with an error wrapping builder.ErrSafetyLimit.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "app", a.String())

	built := 0
	for {
		more, err := a.continuer.Continue(ctx)
		if err != nil {
			return fmt.Errorf("failed to ask whether to continue: %w", err)
		}
		if !more {
			break
		}

		a.logger.Info("🤖 Building robot.", "robot", built+1)
		if _, err := a.builder.Build(ctx); err != nil {
			return fmt.Errorf("robot %d: %w", built+1, err)
		}
		if err := a.printer.Err(); err != nil {
			return fmt.Errorf("failed to write progress: %w", err)
		}
		built++
	}

	a.logger.Info("🏁 Session finished.", "robots_built", built)
	return nil
}
