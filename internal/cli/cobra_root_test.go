package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/repository/sqlrepo"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TODO_CONFIG", "TODO_ENV", "TODO_APP_TIMEOUT", "TODO_DB_DRIVER", "TODO_DB_DIR",
		"TODO_DB_FILENAME", "TODO_DB_DSN", "TODO_DB_QUERY_TIMEOUT", "TODO_DB_WRITE_TIMEOUT",
		"TODO_SERVER_ADDR", "TODO_LOG_LEVEL", "TODO_LOG_FORMAT", "TODO_DEBUG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func setupTestAPI(t *testing.T) api.API {
	t.Helper()
	repo, err := sqlrepo.New(sqlrepo.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return api.New(repo)
}

// recordingOpener hands out store and remembers the config it was given
type recordingOpener struct {
	store  api.API
	cfg    *config.Config
	closed bool
	err    error
}

func (o *recordingOpener) open(cfg *config.Config) (api.API, func() error, error) {
	o.cfg = cfg
	if o.err != nil {
		return nil, nil, o.err
	}
	return o.store, func() error { o.closed = true; return nil }, nil
}

func run(t *testing.T, open Opener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(open, &out)
	root.cmd.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_List(t *testing.T) {
	clearEnv(t)
	store := setupTestAPI(t)
	ctx := context.Background()
	_, err := store.CreateTask(ctx, domain.TaskParams{Name: "Buy milk"})
	require.NoError(t, err)
	_, err = store.CreateTask(ctx, domain.TaskParams{Name: "Walk dog", Completed: true})
	require.NoError(t, err)

	opener := &recordingOpener{store: store}
	out, err := run(t, opener.open, "--env", "testing", "list")
	require.NoError(t, err)

	assert.Equal(t, "[ ] 1  Buy milk\n[x] 2  Walk dog\n", out)
	assert.True(t, opener.closed, "api is closed after the command")
}

func TestRoot_ListEmpty(t *testing.T) {
	clearEnv(t)

	out, err := run(t, DefaultOpener, "--env", "testing", "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks found\n", out)
}

func TestRoot_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_SERVER_ADDR", ":1111")
	t.Setenv("TODO_LOG_LEVEL", "warn")

	opener := &recordingOpener{store: setupTestAPI(t)}
	_, err := run(t, opener.open,
		"--env", "testing",
		"--addr", ":2222",
		"--db-query-timeout", "2s",
		"--app-timeout", "7s",
		"list",
	)
	require.NoError(t, err)

	require.NotNil(t, opener.cfg)
	assert.Equal(t, config.Testing, opener.cfg.Application.Env)
	assert.Equal(t, ":2222", opener.cfg.Server.Addr)
	assert.Equal(t, "warn", opener.cfg.Logging.Level, "unset flag keeps env value")
	assert.Equal(t, 2*time.Second, opener.cfg.Database.QueryTimeout)
	assert.Equal(t, 7*time.Second, opener.cfg.Application.Timeout)
}

func TestRoot_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "todo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nformat = \"json\"\n\n[application]\nenv = \"testing\"\n"), 0644))

	opener := &recordingOpener{store: setupTestAPI(t)}
	_, err := run(t, opener.open, "--config", path, "list")
	require.NoError(t, err)
	assert.Equal(t, "json", opener.cfg.Logging.Format)
	assert.Equal(t, config.Testing, opener.cfg.Application.Env)
}

func TestRoot_InvalidConfiguration(t *testing.T) {
	clearEnv(t)
	opener := &recordingOpener{store: setupTestAPI(t)}

	_, err := run(t, opener.open, "--db-driver", "postgres", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Nil(t, opener.cfg, "nothing is opened for a bad config")
}

func TestRoot_OpenerError(t *testing.T) {
	clearEnv(t)
	opener := &recordingOpener{err: stderrors.New("cannot open")}

	_, err := run(t, opener.open, "--env", "testing", "list")
	assert.EqualError(t, err, "cannot open")
}

func TestRoot_UnknownCommand(t *testing.T) {
	clearEnv(t)

	_, err := run(t, DefaultOpener, "frobnicate")
	assert.Error(t, err)
}

func TestRoot_SqliteFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := run(t, DefaultOpener, "--env", "development", "--db-dir", dir, "--db-filename", "cli.db", "list")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "cli.db"))
}

func TestRoot_ServeStopsWithContext(t *testing.T) {
	clearEnv(t)
	root := NewRootCommand(DefaultOpener, &bytes.Buffer{})
	root.cmd.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--env", "testing", "--addr", "127.0.0.1:0", "serve"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("serve did not stop")
	}
}
