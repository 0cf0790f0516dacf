package model

// CreateTodoDTO is the body of the create operation
type CreateTodoDTO struct {
	Text *string `json:"text"`
}

// UpdateTodoDTO is the body of the update operation, absent fields are left untouched
type UpdateTodoDTO struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// BatchCreateTodoDTO is the body of the batch create operation
type BatchCreateTodoDTO struct {
	Todos []CreateTodoDTO `json:"todos"`
}

// TodoPatch holds the validated fields of an update
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// IsEmpty reports whether the patch changes nothing
func (patch TodoPatch) IsEmpty() bool {
	return patch.Text == nil && patch.Completed == nil
}

// TodoStats summarizes the todo table
type TodoStats struct {
	Total          int64 `json:"total"`
	Completed      int64 `json:"completed"`
	Pending        int64 `json:"pending"`
	CompletionRate int   `json:"completionRate"`
}

// ClearCompletedResult is the payload of the clear-completed operation
type ClearCompletedResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
