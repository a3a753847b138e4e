package sqlrepo

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strconv"

	"todo-list/internal/errors"
)

const entityTask = "task"

// dbError wraps a driver error with the operation that failed. Deadline
// and cancellation causes come back as timeout errors.
func dbError(operation string, err error) error {
	return errors.NewDatabaseError(operation, err)
}

func taskNotFound(id int64) error {
	return errors.NewNotFoundError(entityTask, strconv.FormatInt(id, 10))
}

// requireTaskRow reports a missing task when a write touched no rows.
func requireTaskRow(operation string, result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return dbError(operation, err)
	}
	if n == 0 {
		return taskNotFound(id)
	}
	return nil
}

// insertRow runs an INSERT and returns the generated key.
func insertRow(ctx context.Context, db *sql.DB, operation, query string, args ...any) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, dbError(operation, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, dbError(operation, err)
	}
	return id, nil
}

// execTask runs a write aimed at the task with the given id.
func execTask(ctx context.Context, db *sql.DB, operation string, id int64, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return dbError(operation, err)
	}
	return requireTaskRow(operation, result, id)
}

func queryTask(ctx context.Context, db *sql.DB, id int64, query string, args ...any) (*Task, error) {
	task, err := ScanTask(db.QueryRowContext(ctx, query, args...))
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		return nil, taskNotFound(id)
	case err != nil:
		return nil, dbError("get task", err)
	}
	return task, nil
}

func queryTasks(ctx context.Context, db *sql.DB, query string, args ...any) ([]*Task, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("list tasks", err)
	}
	defer rows.Close()

	tasks, err := ScanTasks(rows)
	if err != nil {
		return nil, dbError("list tasks", err)
	}
	return tasks, nil
}
