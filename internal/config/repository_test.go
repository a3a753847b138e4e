package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/repository/sqlrepo"
)

func TestCreateRepository(t *testing.T) {
	clearEnv(t)
	// Nested directory that does not exist yet
	dbDir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv("TODO_DB_DIR", dbDir)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	require.NotNil(t, repo)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.CreateTask(ctx, &sqlrepo.Task{Name: "Buy milk"}))

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.FileExists(t, filepath.Join(dbDir, "todo.db"))
}

func TestCreateRepository_TestingUsesMemory(t *testing.T) {
	cfg := NewConfig()
	cfg.Application.Env = Testing
	cfg.Database.Dir = ""

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateRepository_BadMySQLDSN(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Driver = "mysql"
	cfg.Database.DSN = "no slash here"

	_, err := CreateRepository(cfg)
	assert.Error(t, err)
}
