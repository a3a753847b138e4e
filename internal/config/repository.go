package config

import (
	"fmt"
	"os"

	"todo-list/internal/repository/sqlrepo"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (sqlrepo.Repository, error) {
	opts := sqlrepo.Options{
		Driver:       config.Database.Driver,
		QueryTimeout: config.GetQueryTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
	}

	switch {
	case config.Application.Env == Testing:
		opts.Driver = sqlrepo.DriverSQLite
		opts.DSN = sqlrepo.MemoryDSN
	case opts.Driver == sqlrepo.DriverMySQL:
		opts.DSN = config.Database.DSN
	default:
		if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		opts.DSN = config.GetDatabasePath()
	}

	repo, err := sqlrepo.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database: %w", opts.Driver, err)
	}

	return repo, nil
}
