package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name     string
		params   TaskParams
		expected Task
	}{
		{
			name:     "creates task with name",
			params:   TaskParams{Name: "Buy milk"},
			expected: Task{Name: "Buy milk"},
		},
		{
			name:     "creates completed task",
			params:   TaskParams{Name: "Buy milk", Completed: true},
			expected: Task{Name: "Buy milk", Completed: true},
		},
		{
			name:     "creates task with empty name",
			params:   TaskParams{},
			expected: Task{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewTask(tt.params)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTask_Apply(t *testing.T) {
	task := Task{ID: 4, Name: "Old", Completed: true}
	task.Apply(TaskParams{Name: "New"})

	assert.Equal(t, Task{ID: 4, Name: "New", Completed: false}, task)
	assert.Equal(t, TaskParams{Name: "New"}, task.Params())
	assert.Equal(t, "New", task.String())
}

func TestCompletionLabel(t *testing.T) {
	label, ok := CompletionLabel(Task{Name: "Buy milk", Completed: true})
	assert.True(t, ok)
	assert.Equal(t, "completed", label)

	label, ok = CompletionLabel(Task{Name: "Buy milk"})
	assert.False(t, ok)
	assert.Empty(t, label)
}

func TestParseCompleted(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"on", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCompleted(tt.input))
		})
	}
}
