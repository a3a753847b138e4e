package web

import (
	"net/http"
	"strconv"

	"todo-list/internal/domain"
	"todo-list/internal/validation"
)

// View names. Each maps to templates/<name>.html.
const (
	ViewHome     = "home"
	ViewNew      = "new"
	ViewEdit     = "edit"
	ViewNotFound = "not_found"
	ViewError    = "error"
)

// Response is what a controller action decides. Either Location is set and
// the client is redirected, or View is rendered with Page.
type Response struct {
	Status   int
	Location string
	View     string
	Page     Page
}

// IsRedirect reports whether the response is a redirect
func (r Response) IsRedirect() bool {
	return r.Location != ""
}

// Redirect returns a 302 to location
func Redirect(location string) Response {
	return Response{Status: http.StatusFound, Location: location}
}

// Render returns a response rendering view with page
func Render(status int, view string, page Page) Response {
	return Response{Status: status, View: view, Page: page}
}

// Page is the model handed to every template
type Page struct {
	Title   string
	Message string
	Tasks   []TaskItem
	Form    TaskForm
	Errors  *FormErrors
}

// TaskItem is one row of the task list
type TaskItem struct {
	ID       int64
	Name     string
	Label    string
	Path     string
	EditPath string
}

// NewTaskItem projects a task for the list view
func NewTaskItem(t domain.Task) TaskItem {
	label, _ := domain.CompletionLabel(t)
	return TaskItem{
		ID:       t.ID,
		Name:     t.Name,
		Label:    label,
		Path:     TaskPath(t.ID),
		EditPath: EditTaskPath(t.ID),
	}
}

// TaskForm carries the values shown in the new and edit forms
type TaskForm struct {
	Action    string
	Method    string
	Name      string
	Completed bool
	Submit    string
}

// FormErrors is the error block rendered above a form
type FormErrors struct {
	Summary  string
	Messages []string
}

func newFormErrors(verr *validation.ValidationError) *FormErrors {
	if verr == nil || !verr.HasErrors() {
		return nil
	}
	return &FormErrors{
		Summary:  verr.Summary("task"),
		Messages: verr.FullMessages(),
	}
}

// TasksPath is the collection path
const TasksPath = "/tasks"

// TaskPath returns the member path for id
func TaskPath(id int64) string {
	return TasksPath + "/" + strconv.FormatInt(id, 10)
}

// EditTaskPath returns the edit form path for id
func EditTaskPath(id int64) string {
	return TaskPath(id) + "/edit"
}
