package db

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoGateway is the only component allowed to write the todos table.
// Lookups by id return (nil, nil) when the row does not exist.
type TodoGateway interface {
	FindAll(ctx context.Context) ([]entity.Todo, error)
	FindByID(ctx context.Context, id int64) (*entity.Todo, error)

	Create(ctx context.Context, text string) (*entity.Todo, error)
	Update(ctx context.Context, id int64, patch model.TodoPatch) (*entity.Todo, error)
	Toggle(ctx context.Context, id int64) (*entity.Todo, error)

	DeleteByID(ctx context.Context, id int64) (bool, error)
	DeleteCompleted(ctx context.Context) (int64, error)

	CountStats(ctx context.Context) (total int64, completed int64, err error)

	// WithTransaction runs fn on a dedicated connection inside one transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTransaction(ctx context.Context, fn func(tx TodoGateway) error) error
}
