package cli

import (
	"context"
	"fmt"

	"todo-list/internal/domain"
)

// ListCommand prints every task
type ListCommand struct {
	app     *App
	handler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, handler: NewErrorHandler()}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.app.api.ListTasks(ctx)
	if err != nil {
		return c.handler.Handle("list tasks", err)
	}
	return c.printTasks(tasks)
}

// printTasks prints one line per task in the format:
// [x] id  name
// where the box is checked for completed tasks.
func (c *ListCommand) printTasks(tasks []*domain.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(c.app.out, "No tasks found")
		return err
	}

	for _, task := range tasks {
		mark := " "
		if _, done := domain.CompletionLabel(*task); done {
			mark = "x"
		}
		if _, err := fmt.Fprintf(c.app.out, "[%s] %d  %s\n", mark, task.ID, task.Name); err != nil {
			return err
		}
	}
	return nil
}
