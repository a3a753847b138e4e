package validation

import (
	"todo-list/internal/domain"
)

// Field names reported in task validation errors.
const (
	FieldName = "name"
	FieldID   = "id"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTask validates a task before it is saved. Name presence is the
// only rule.
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if !tv.validator.IsPresent(task.Name) {
		validationError.AddRequiredError(FieldName)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(FieldID, id, "must be a positive integer")
		return validationError
	}
	return nil
}
