package domain

import (
	"todo-list/internal/repository/sqlrepo"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlrepo.Task {
	return sqlrepo.Task{
		ID:        domainTask.ID,
		Name:      domainTask.Name,
		Completed: domainTask.Completed,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlrepo.Task) Task {
	return Task{
		ID:        dbTask.ID,
		Name:      dbTask.Name,
		Completed: dbTask.Completed,
	}
}

// FromDatabaseSlice converts database Tasks to domain Tasks, preserving order.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlrepo.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		task := m.FromDatabase(*dbTask)
		domainTasks[i] = &task
	}
	return domainTasks
}
