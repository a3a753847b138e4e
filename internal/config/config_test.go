package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every TODO_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TODO_CONFIG", "TODO_ENV", "TODO_APP_TIMEOUT",
		"TODO_DB_DRIVER", "TODO_DB_DIR", "TODO_DB_FILENAME", "TODO_DB_DSN",
		"TODO_DB_QUERY_TIMEOUT", "TODO_DB_WRITE_TIMEOUT", "TODO_DB_DIR_PERMISSIONS",
		"TODO_SERVER_ADDR", "TODO_SERVER_READ_TIMEOUT", "TODO_SERVER_WRITE_TIMEOUT",
		"TODO_SERVER_IDLE_TIMEOUT", "TODO_SERVER_SHUTDOWN_TIMEOUT",
		"TODO_LOG_LEVEL", "TODO_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "todo.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.GetQueryTimeout())
	assert.Equal(t, 5*time.Second, cfg.GetWriteTimeout())
	assert.Equal(t, "127.0.0.1:3000", cfg.Server.Addr)
	assert.Equal(t, Production, cfg.Application.Env)
	assert.Equal(t, filepath.Join(cfg.Database.Dir, "todo.db"), cfg.GetDatabasePath())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_DB_DIR", "/tmp/todo-test")
	t.Setenv("TODO_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("TODO_DB_WRITE_TIMEOUT", "not-a-duration")
	t.Setenv("TODO_DB_DIR_PERMISSIONS", "700")
	t.Setenv("TODO_SERVER_ADDR", ":8080")
	t.Setenv("TODO_LOG_FORMAT", "JSON")
	t.Setenv("TODO_ENV", "development")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/todo-test", cfg.Database.Dir)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout, "invalid value keeps default")
	assert.Equal(t, uint32(0700), cfg.Database.DirPermissions)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, Development, cfg.Application.Env)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, "database.driver"},
		{"mysql without dsn", func(c *Config) { c.Database.Driver = "mysql" }, "database.dsn"},
		{"empty dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"empty filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"negative write timeout", func(c *Config) { c.Database.WriteTimeout = -time.Second }, "database.write_timeout"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "server.timeouts"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "server.shutdown_timeout"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestValidate_TestingSkipsPaths(t *testing.T) {
	cfg := NewConfig()
	cfg.Application.Env = Testing
	cfg.Database.Dir = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MySQL(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Driver = "mysql"
	cfg.Database.DSN = "todo:secret@tcp(localhost:3306)/todo"
	assert.NoError(t, cfg.Validate())
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Development, ParseEnvironment("Development"))
	assert.Equal(t, Testing, ParseEnvironment("test"))
	assert.Equal(t, Testing, ParseEnvironment("testing"))
	assert.Equal(t, Production, ParseEnvironment("production"))
	assert.Equal(t, Production, ParseEnvironment("staging"))
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 2*time.Minute, ParseDurationWithFallback("2m", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("soon", time.Second))
	assert.Equal(t, uint32(0750), ParseUint32WithFallback("750", 8, 0))
	assert.Equal(t, uint32(0755), ParseUint32WithFallback("9x", 8, 0755))
}
