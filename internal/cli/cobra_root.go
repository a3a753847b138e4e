package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"todo-list/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd  *cobra.Command
	open Opener
	app  *App
}

// NewRootCommand creates the root cobra command with global flags. open
// builds the task API once flags, file and environment are merged.
func NewRootCommand(open Opener, out io.Writer) *RootCommand {
	if open == nil {
		open = DefaultOpener
	}
	root := &RootCommand{open: open}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A small task list served as HTML forms",
		Long: `todo keeps a list of tasks in sqlite or mysql and serves it as a web app.

EXAMPLES:
  todo serve                               # Serve on 127.0.0.1:3000
  todo serve --addr :8080 --log-format json
  todo list                                # Print every task
  todo --db-driver mysql --db-dsn 'todo:pw@tcp(localhost:3306)/todo' serve

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  Config file (TOML):
    TODO_CONFIG                            Path to a config file (or --config)

  Database Configuration:
    TODO_DB_DRIVER                         sqlite or mysql (default: sqlite)
    TODO_DB_DIR                            Database directory (default: ~/.todo)
    TODO_DB_FILENAME                       Database filename (default: todo.db)
    TODO_DB_DSN                            MySQL DSN
    TODO_DB_QUERY_TIMEOUT                  Query timeout (default: 10s)
    TODO_DB_WRITE_TIMEOUT                  Write timeout (default: 5s)

  Server Configuration:
    TODO_SERVER_ADDR                       Listen address (default: 127.0.0.1:3000)
    TODO_SERVER_SHUTDOWN_TIMEOUT           Graceful shutdown timeout (default: 10s)

  Logging Configuration:
    TODO_LOG_LEVEL                         debug, info, warn, error (default: info)
    TODO_LOG_FORMAT                        text, json, logfmt (default: text)

  Application Configuration:
    TODO_ENV                               development, testing, production
    TODO_APP_TIMEOUT                       Timeout for one-shot commands (default: 30s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
	}
	if out != nil {
		root.cmd.SetOut(out)
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx as the parent of every
// command context. The task API is closed afterwards even on failure.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if closeErr := r.teardown(); err == nil {
		err = closeErr
	}
	return err
}

// SetArgs sets the arguments used instead of os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Path to a TOML config file (overrides TODO_CONFIG)")

	// Database configuration
	flags.String("db-driver", "", "Database driver, sqlite or mysql (overrides TODO_DB_DRIVER)")
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.String("db-dsn", "", "MySQL DSN (overrides TODO_DB_DSN)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TODO_DB_WRITE_TIMEOUT)")

	// Server configuration
	flags.String("addr", "", "HTTP listen address (overrides TODO_SERVER_ADDR)")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides TODO_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: text, json or logfmt (overrides TODO_LOG_FORMAT)")

	// Application configuration
	flags.String("env", "", "Environment: development, testing or production (overrides TODO_ENV)")
	flags.Duration("app-timeout", 0, "Timeout for one-shot commands (overrides TODO_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the task list over HTTP",
		Long:  "Serve the task list over HTTP until the command context is cancelled, then shut down gracefully.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewServeCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "Print every task in creation order. Completed tasks are marked [x].",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(serveCmd, listCmd)
}

// setup loads configuration and opens the task API
func (r *RootCommand) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.WithFile(path)
	}

	cfg, err := loader.LoadWithOverrides(r.getOverridesFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	apiInstance, closeFn, err := r.open(cfg)
	if err != nil {
		return err
	}

	r.app = NewApp(apiInstance, cfg, newLogger(cfg, cmd.ErrOrStderr()), cmd.OutOrStdout())
	if closeFn != nil {
		r.app.close = closeFn
	}
	return nil
}

func (r *RootCommand) teardown() error {
	if r.app == nil {
		return nil
	}
	app := r.app
	r.app = nil
	return app.Close()
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app != nil && r.app.config != nil {
		return r.app.config.Application.Timeout
	}
	return 30 * time.Second
}

// getOverridesFromFlags collects the flags that were set on the command line
func (r *RootCommand) getOverridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	dur := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetDuration(name)
		return &v
	}

	// Database configuration
	overrides.DBDriver = str("db-driver")
	overrides.DBDir = str("db-dir")
	overrides.DBFilename = str("db-filename")
	overrides.DBDSN = str("db-dsn")
	overrides.DBQueryTimeout = dur("db-query-timeout")
	overrides.DBWriteTimeout = dur("db-write-timeout")

	// Server configuration
	overrides.ServerAddr = str("addr")

	// Logging configuration
	overrides.LogLevel = str("log-level")
	overrides.LogFormat = str("log-format")

	// Application configuration
	overrides.Env = str("env")
	overrides.Timeout = dur("app-timeout")

	return overrides
}
