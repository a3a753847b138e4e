package domain

import (
	"strconv"
	"strings"
)

// CompletedLabel is the marker applied to completed tasks in views.
const CompletedLabel = "completed"

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        int64
	Name      string
	Completed bool
}

// NewTask creates a new Task from the permitted params.
func NewTask(params TaskParams) Task {
	return Task{
		Name:      params.Name,
		Completed: params.Completed,
	}
}

// Apply overwrites the mutable fields with params. The ID is left alone.
func (t *Task) Apply(params TaskParams) {
	t.Name = params.Name
	t.Completed = params.Completed
}

// Params returns the task's mutable fields as params, e.g. to prefill a form.
func (t Task) Params() TaskParams {
	return TaskParams{Name: t.Name, Completed: t.Completed}
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// CompletionLabel returns "completed" for completed tasks and reports
// false otherwise.
func CompletionLabel(t Task) (string, bool) {
	if t.Completed {
		return CompletedLabel, true
	}
	return "", false
}

// TaskParams is the allow-listed input for creating or updating a task.
// Only these two fields are ever read from a request.
type TaskParams struct {
	Name      string
	Completed bool
}

// ParseCompleted interprets a submitted checkbox value. Unknown values are false.
func ParseCompleted(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "on", "yes":
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
