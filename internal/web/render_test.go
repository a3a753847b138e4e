package web

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
	"todo-list/internal/validation"
)

func TestRenderer_AllViewsParse(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, view := range views {
		body, err := r.Render(view, Page{Title: "x"})
		require.NoError(t, err, view)
		assert.Contains(t, string(body), "<title>x | Todo List</title>")
	}
}

func TestRenderer_UnknownView(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = r.Render("missing", Page{})
	assert.Error(t, err)
}

func TestRenderer_Home(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	page := Page{Title: "Tasks", Tasks: []TaskItem{
		NewTaskItem(domain.Task{ID: 1, Name: "Buy milk"}),
		NewTaskItem(domain.Task{ID: 2, Name: "<b>Walk dog</b>", Completed: true}),
	}}
	body, err := r.Render(ViewHome, page)
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, `<ul class="tasks">`)
	assert.Contains(t, html, "<li>\n    <span class=\"name\">Buy milk</span>")
	assert.Contains(t, html, `<li class="completed">`)
	assert.Contains(t, html, "&lt;b&gt;Walk dog&lt;/b&gt;")
	assert.Contains(t, html, `<a href="/tasks/1/edit">Edit</a>`)
	assert.Contains(t, html, `action="/tasks/2"`)
	assert.Contains(t, html, `<input type="hidden" name="_method" value="delete">`)
	assert.Contains(t, html, ">Delete</button>")
}

func TestRenderer_FormWithErrors(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	verr := validation.NewValidationError()
	verr.AddRequiredError("name")
	page := editFormPage(3, domain.TaskParams{Name: "", Completed: true}, verr)

	body, err := r.Render(ViewEdit, page)
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, `<div id="error_explanation">`)
	assert.Contains(t, html, "1 error prohibited this task from being saved:")
	assert.Contains(t, html, "Name can&#39;t be blank")
	assert.Contains(t, html, `action="/tasks/3"`)
	assert.Contains(t, html, `value="patch"`)
	assert.Contains(t, html, `<label for="task_name">Name</label>`)
	assert.Contains(t, html, `<label for="task_completed">Completed</label>`)
	assert.Contains(t, html, `value="1" checked>`)
	assert.Contains(t, html, "Update Task")
}

func TestRenderer_NewForm(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	body, err := r.Render(ViewNew, newFormPage(domain.TaskParams{}, nil))
	require.NoError(t, err)
	html := string(body)

	assert.NotContains(t, html, "error_explanation")
	assert.NotContains(t, html, "_method")
	assert.NotContains(t, html, "checked")
	assert.Contains(t, html, `action="/tasks"`)
	assert.Contains(t, html, "Create Task")
}

func TestNotFoundResponse(t *testing.T) {
	resp := NotFound(nil)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, ViewNotFound, resp.View)
	assert.NotEmpty(t, resp.Page.Message)
}
