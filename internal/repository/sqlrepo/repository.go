package sqlrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlrepo/migrations"

	_ "modernc.org/sqlite"
)

// Supported database drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// MemoryDSN opens a private in-memory sqlite database.
const MemoryDSN = ":memory:"

// Repository defines the interface for task persistence
type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
	Close() error
}

// Options configures how the repository connects and how long calls may run.
// A zero timeout means the caller's context is used as is.
type Options struct {
	Driver       string
	DSN          string
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLRepository implements Repository on database/sql
type SQLRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a sqlite repository at dbPath with no per-call timeouts
func New(dbPath string) (*SQLRepository, error) {
	return Open(Options{Driver: DriverSQLite, DSN: dbPath})
}

// Open connects to the configured database and runs pending migrations
func Open(opts Options) (*SQLRepository, error) {
	if opts.Driver == "" {
		opts.Driver = DriverSQLite
	}

	dsn, err := prepareDSN(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(opts.Driver, dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if opts.Driver == DriverSQLite {
		// One connection: serializes writers and keeps :memory: shared.
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(db, opts.Driver); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLRepository{db: db, opts: opts}, nil
}

// prepareDSN normalizes the DSN for the driver. MySQL must report matched
// rather than changed rows, otherwise an update that changes nothing looks
// like a missing task.
func prepareDSN(driver, dsn string) (string, error) {
	switch driver {
	case DriverSQLite:
		if dsn == "" {
			return MemoryDSN, nil
		}
		return dsn, nil
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", errors.NewInvalidInputError("dsn", dsn, err.Error())
		}
		cfg.ClientFoundRows = true
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	default:
		return "", errors.NewInvalidInputError("driver", driver, "must be sqlite or mysql")
	}
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// Ping checks the database connection
func (r *SQLRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.readContext(ctx)
	defer cancel()
	if err := r.db.PingContext(ctx); err != nil {
		return dbError("ping", err)
	}
	return nil
}

// CreateTask creates a new task and sets its ID
func (r *SQLRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `INSERT INTO tasks (name, completed) VALUES (?, ?)`
	id, err := insertRow(ctx, r.db, "create task", query, task.Name, task.Completed)
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT id, name, completed FROM tasks WHERE id = ?`
	return queryTask(ctx, r.db, id, query, id)
}

// ListTasks retrieves all tasks in creation order
func (r *SQLRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT id, name, completed FROM tasks ORDER BY id ASC`
	return queryTasks(ctx, r.db, query)
}

// UpdateTask updates an existing task
func (r *SQLRepository) UpdateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `UPDATE tasks SET name = ?, completed = ? WHERE id = ?`
	return execTask(ctx, r.db, "update task", task.ID, query, task.Name, task.Completed, task.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM tasks WHERE id = ?`
	return execTask(ctx, r.db, "delete task", id, query, id)
}

func (r *SQLRepository) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.opts.QueryTimeout)
}

func (r *SQLRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.opts.WriteTimeout)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
