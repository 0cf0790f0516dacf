package todo

import (
	"context"
	"math"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

type todoUseCase struct {
	gateway db.TodoGateway
}

func NewTodoUseCase(gateway db.TodoGateway) UseCase {
	return &todoUseCase{
		gateway: gateway,
	}
}

func (uc *todoUseCase) FindAll(ctx context.Context) ([]entity.Todo, error) {
	todos, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return nil, model.NewStoreError(msg.GetMessage("todo.error.list-failed"), err)
	}
	return todos, nil
}

func (uc *todoUseCase) Create(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error) {
	text, err := validateOptionalText(dto.Text)
	if err != nil {
		return nil, err
	}

	created, err := uc.gateway.Create(ctx, text)
	if err != nil {
		return nil, model.NewStoreError(msg.GetMessage("todo.error.create-failed"), err)
	}
	return created, nil
}

func (uc *todoUseCase) Update(ctx context.Context, id int64, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	failed := msg.GetMessage("todo.error.update-failed")

	existing, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, model.NewStoreError(failed, err)
	}
	if existing == nil {
		return nil, model.NewNotFoundError(msg.GetMessage("todo.error.not-found"))
	}

	patch := model.TodoPatch{Completed: dto.Completed}
	if dto.Text != nil {
		text, err := ValidateText(*dto.Text)
		if err != nil {
			return nil, err
		}
		patch.Text = &text
	}
	if patch.IsEmpty() {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.nothing-to-update"))
	}

	updated, err := uc.gateway.Update(ctx, id, patch)
	if err != nil {
		return nil, model.NewStoreError(failed, err)
	}
	// deleted by a concurrent request between the lookup and the update
	if updated == nil {
		return nil, model.NewNotFoundError(msg.GetMessage("todo.error.not-found"))
	}
	return updated, nil
}

func (uc *todoUseCase) DeleteByID(ctx context.Context, id int64) error {
	deleted, err := uc.gateway.DeleteByID(ctx, id)
	if err != nil {
		return model.NewStoreError(msg.GetMessage("todo.error.delete-failed"), err)
	}
	if !deleted {
		return model.NewNotFoundError(msg.GetMessage("todo.error.not-found"))
	}
	return nil
}

func (uc *todoUseCase) Toggle(ctx context.Context, id int64) (*entity.Todo, error) {
	toggled, err := uc.gateway.Toggle(ctx, id)
	if err != nil {
		return nil, model.NewStoreError(msg.GetMessage("todo.error.toggle-failed"), err)
	}
	if toggled == nil {
		return nil, model.NewNotFoundError(msg.GetMessage("todo.error.not-found"))
	}
	return toggled, nil
}

// BatchCreate inserts every todo in one transaction, in the given order.
// An invalid item rolls back the whole batch and is reported as a batch failure.
func (uc *todoUseCase) BatchCreate(ctx context.Context, dto model.BatchCreateTodoDTO) ([]entity.Todo, error) {
	if len(dto.Todos) == 0 {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-batch"))
	}
	if len(dto.Todos) > MaxBatchSize {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.batch-too-large", MaxBatchSize))
	}

	var created []entity.Todo
	err := uc.gateway.WithTransaction(ctx, func(tx db.TodoGateway) error {
		created = make([]entity.Todo, 0, len(dto.Todos))
		for _, item := range dto.Todos {
			text, err := validateOptionalText(item.Text)
			if err != nil {
				return err
			}

			todo, err := tx.Create(ctx, text)
			if err != nil {
				return err
			}
			created = append(created, *todo)
		}
		return nil
	})
	if err != nil {
		failed := msg.GetMessage("todo.error.batch-failed")
		if appErr, ok := model.AsAppError(err); ok && appErr.Kind == model.KindValidation {
			return nil, &model.AppError{Kind: model.KindStore, Message: failed, Detail: appErr.Message}
		}
		return nil, model.NewStoreError(failed, err)
	}
	return created, nil
}

func (uc *todoUseCase) Stats(ctx context.Context) (*model.TodoStats, error) {
	total, completed, err := uc.gateway.CountStats(ctx)
	if err != nil {
		return nil, model.NewStoreError(msg.GetMessage("todo.error.stats-failed"), err)
	}

	return &model.TodoStats{
		Total:          total,
		Completed:      completed,
		Pending:        total - completed,
		CompletionRate: completionRate(total, completed),
	}, nil
}

func (uc *todoUseCase) ClearCompleted(ctx context.Context) (*model.ClearCompletedResult, error) {
	deleted, err := uc.gateway.DeleteCompleted(ctx)
	if err != nil {
		return nil, model.NewStoreError(msg.GetMessage("todo.error.clear-failed"), err)
	}
	return &model.ClearCompletedResult{DeletedCount: deleted}, nil
}

// completionRate is the rounded percentage of completed todos, 0 for an empty table
func completionRate(total, completed int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}
