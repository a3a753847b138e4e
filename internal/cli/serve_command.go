package cli

import (
	"context"

	"todo-list/internal/web"
)

// ServeCommand runs the HTTP server until ctx is done
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute starts the server and blocks until it has shut down
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	srv, err := web.New(c.app.api, c.app.logger, c.app.config.Server)
	if err != nil {
		return err
	}

	c.app.logger.Info("starting todo server",
		"addr", c.app.config.Server.Addr,
		"driver", c.app.config.Database.Driver,
		"env", string(c.app.config.Application.Env),
	)
	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}
	c.app.logger.Info("server stopped")
	return nil
}
