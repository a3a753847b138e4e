package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// Form field names read from requests. Anything else is ignored.
const (
	FieldName      = "name"
	FieldCompleted = "completed"
	FieldMethod    = "_method"
)

// ParseTaskParams reads the permitted task fields from a form body
func ParseTaskParams(r *http.Request) (domain.TaskParams, error) {
	if err := r.ParseForm(); err != nil {
		return domain.TaskParams{}, errors.NewInvalidInputError("body", nil, err.Error())
	}
	return TaskParamsFromValues(r.PostForm), nil
}

// TaskParamsFromValues picks name and completed out of values. When
// completed is sent more than once, as with a hidden "0" before a
// checkbox, the last value wins.
func TaskParamsFromValues(values url.Values) domain.TaskParams {
	params := domain.TaskParams{Name: values.Get(FieldName)}
	if vs := values[FieldCompleted]; len(vs) > 0 {
		params.Completed = domain.ParseCompleted(vs[len(vs)-1])
	}
	return params
}

// ParseTaskID parses a path id. Anything that is not a positive integer
// becomes 0, which never names a task.
func ParseTaskID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// MethodOverride returns the upper-cased _method form value of a POST
func MethodOverride(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.PostFormValue(FieldMethod)))
}
