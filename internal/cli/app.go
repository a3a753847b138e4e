package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/logging"
)

// App carries what every command needs once configuration is loaded
type App struct {
	api    api.API
	config *config.Config
	logger *log.Logger
	out    io.Writer
	close  func() error
}

// Opener builds the task API for a loaded configuration. The returned
// function releases whatever the API holds open.
type Opener func(cfg *config.Config) (api.API, func() error, error)

// DefaultOpener opens the repository selected by cfg
func DefaultOpener(cfg *config.Config) (api.API, func() error, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	return api.New(repo), repo.Close, nil
}

// NewApp creates an App around an already built API
func NewApp(apiInstance api.API, cfg *config.Config, logger *log.Logger, out io.Writer) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		api:    apiInstance,
		config: cfg,
		logger: logger,
		out:    out,
		close:  func() error { return nil },
	}
}

// Close releases the API's resources
func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

func newLogger(cfg *config.Config, w io.Writer) *log.Logger {
	return logging.NewLogger(logging.Options{
		Level:           cfg.Logging.Level,
		Format:          cfg.Logging.Format,
		Prefix:          "todo",
		ReportTimestamp: true,
		Writer:          w,
	})
}
