package client

import (
	"context"
	"fmt"
	"io"

	"github.com/palavrapasse/import-web-api/internal/adapter"
	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/models"
)

type App struct {
	serverAdapter adapter.ServerAdapter
	form          models.LeakForm

	// out receives the delta only, so it can be piped.
	out io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, form models.LeakForm, out io.Writer, logger *logger.Logger) *App {
	return &App{
		serverAdapter: serverAdapter,
		form:          form,
		out:           out,
		logger:        logger,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	report, err := a.serverAdapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBridgeUnhealthy, err)
	}
	a.logger.Info().Str("status", report.Status).Msg("bridge is reachable")

	a.logger.Info().
		Str("context", a.form.Context).
		Str("share_date", a.form.ShareDate.Format(models.DateFormatLayout)).
		Strs("platforms", a.form.Platforms).
		Strs("leakers", a.form.Leakers).
		Str("file", a.form.FileName).
		Msg("submitting leak, waiting for the import to finish")

	delta, err := a.serverAdapter.SubmitLeak(ctx, a.form)
	if err != nil {
		return fmt.Errorf("submit leak: %w", err)
	}

	_, err = fmt.Fprintln(a.out, delta)
	return err
}
