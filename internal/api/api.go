package api

import (
	"context"
	"strconv"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlrepo"
	"todo-list/internal/validation"
)

// API defines the task store operations.
type API interface {
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	CreateTask(ctx context.Context, params domain.TaskParams) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, params domain.TaskParams) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

type apiImpl struct {
	repo          sqlrepo.Repository
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator
}

// New creates a new API instance.
func New(repo sqlrepo.Repository) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewTaskMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.FromDatabaseSlice(dbTasks), nil
}

// GetTask loads a task. Ids that cannot exist are reported as not found.
func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}

	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task := a.mapper.FromDatabase(*dbTask)
	return &task, nil
}

// CreateTask validates params and inserts a task. On a validation failure
// the returned error is a *validation.ValidationError and nothing is written.
func (a *apiImpl) CreateTask(ctx context.Context, params domain.TaskParams) (*domain.Task, error) {
	task := domain.NewTask(params)
	if err := a.taskValidator.ValidateTask(task); err != nil {
		return nil, err
	}

	dbTask := a.mapper.ToDatabase(task)
	if err := a.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}
	task.ID = dbTask.ID
	return &task, nil
}

// UpdateTask loads the task, applies params and saves it if it is still
// valid. On a validation failure the stored row is left unchanged.
func (a *apiImpl) UpdateTask(ctx context.Context, id int64, params domain.TaskParams) (*domain.Task, error) {
	task, err := a.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Apply(params)
	if err := a.taskValidator.ValidateTask(*task); err != nil {
		return nil, err
	}

	dbTask := a.mapper.ToDatabase(*task)
	if err := a.repo.UpdateTask(ctx, &dbTask); err != nil {
		return nil, err
	}
	return task, nil
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	return a.repo.DeleteTask(ctx, id)
}

func (a *apiImpl) Ping(ctx context.Context) error {
	return a.repo.Ping(ctx)
}
