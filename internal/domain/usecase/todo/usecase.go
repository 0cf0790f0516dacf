package todo

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context) ([]entity.Todo, error)
	Create(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error)
	Update(ctx context.Context, id int64, dto model.UpdateTodoDTO) (*entity.Todo, error)
	DeleteByID(ctx context.Context, id int64) error
	Toggle(ctx context.Context, id int64) (*entity.Todo, error)
	BatchCreate(ctx context.Context, dto model.BatchCreateTodoDTO) ([]entity.Todo, error)
	Stats(ctx context.Context) (*model.TodoStats, error)
	ClearCompleted(ctx context.Context) (*model.ClearCompletedResult, error)
}
