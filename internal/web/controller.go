package web

import (
	"context"
	"net/http"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/validation"
)

// TaskStore is the subset of the task API the controller needs
type TaskStore interface {
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	CreateTask(ctx context.Context, params domain.TaskParams) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, params domain.TaskParams) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// Controller implements the task actions. Actions take explicit inputs and
// return a Response; they never touch the HTTP request or writer.
// Errors other than validation and not found are returned to the caller.
type Controller struct {
	store TaskStore
}

// NewController creates a controller backed by store
func NewController(store TaskStore) *Controller {
	return &Controller{store: store}
}

// Home lists every task
func (c *Controller) Home(ctx context.Context) (Response, error) {
	tasks, err := c.store.ListTasks(ctx)
	if err != nil {
		return Response{}, err
	}

	items := make([]TaskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, NewTaskItem(*t))
	}
	return Render(http.StatusOK, ViewHome, Page{Title: "Tasks", Tasks: items}), nil
}

// New shows an empty task form
func (c *Controller) New(ctx context.Context) (Response, error) {
	return Render(http.StatusOK, ViewNew, newFormPage(domain.TaskParams{}, nil)), nil
}

// Create stores a task from params, or re-renders the form with errors
func (c *Controller) Create(ctx context.Context, params domain.TaskParams) (Response, error) {
	if _, err := c.store.CreateTask(ctx, params); err != nil {
		if verr, ok := validation.AsValidationError(err); ok {
			return Render(http.StatusOK, ViewNew, newFormPage(params, verr)), nil
		}
		return Response{}, err
	}
	return Redirect("/"), nil
}

// Edit shows the form for an existing task
func (c *Controller) Edit(ctx context.Context, id int64) (Response, error) {
	task, err := c.store.GetTask(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return NotFound(err), nil
		}
		return Response{}, err
	}
	return Render(http.StatusOK, ViewEdit, editFormPage(id, task.Params(), nil)), nil
}

// Update overwrites a task with params, or re-renders the edit form with errors
func (c *Controller) Update(ctx context.Context, id int64, params domain.TaskParams) (Response, error) {
	if _, err := c.store.UpdateTask(ctx, id, params); err != nil {
		if errors.IsNotFound(err) {
			return NotFound(err), nil
		}
		if verr, ok := validation.AsValidationError(err); ok {
			return Render(http.StatusOK, ViewEdit, editFormPage(id, params, verr)), nil
		}
		return Response{}, err
	}
	return Redirect("/"), nil
}

// Destroy removes a task
func (c *Controller) Destroy(ctx context.Context, id int64) (Response, error) {
	if err := c.store.DeleteTask(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return NotFound(err), nil
		}
		return Response{}, err
	}
	return Redirect("/"), nil
}

// NotFound renders the missing task page
func NotFound(err error) Response {
	page := Page{Title: "Task not found", Message: "The task you were looking for does not exist."}
	if err != nil {
		page.Message = errors.GetUserMessage(err)
	}
	return Render(http.StatusNotFound, ViewNotFound, page)
}

func newFormPage(params domain.TaskParams, verr *validation.ValidationError) Page {
	return Page{
		Title: "New Task",
		Form: TaskForm{
			Action:    TasksPath,
			Name:      params.Name,
			Completed: params.Completed,
			Submit:    "Create Task",
		},
		Errors: newFormErrors(verr),
	}
}

func editFormPage(id int64, params domain.TaskParams, verr *validation.ValidationError) Page {
	return Page{
		Title: "Editing Task",
		Form: TaskForm{
			Action:    TaskPath(id),
			Method:    "patch",
			Name:      params.Name,
			Completed: params.Completed,
			Submit:    "Update Task",
		},
		Errors: newFormErrors(verr),
	}
}
