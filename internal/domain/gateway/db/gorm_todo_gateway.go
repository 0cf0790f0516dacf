package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type GormTodoGateway struct {
	DB   *gorm.DB
	inTx bool
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	err := gateway.DB.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.WithContext(ctx).First(&todo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(ctx context.Context, text string) (*entity.Todo, error) {
	todo := entity.Todo{Text: text}
	if err := gateway.DB.WithContext(ctx).Create(&todo).Error; err != nil {
		return nil, err
	}
	return gateway.FindByID(ctx, todo.ID)
}

func (gateway *GormTodoGateway) Update(ctx context.Context, id int64, patch model.TodoPatch) (*entity.Todo, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if patch.Text != nil {
		updates["text"] = *patch.Text
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}

	var todo entity.Todo
	result := gateway.DB.WithContext(ctx).
		Model(&todo).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Toggle(ctx context.Context, id int64) (*entity.Todo, error) {
	var todo entity.Todo
	result := gateway.DB.WithContext(ctx).
		Model(&todo).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"completed":  gorm.Expr("NOT completed"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := gateway.DB.WithContext(ctx).Delete(&entity.Todo{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (gateway *GormTodoGateway) DeleteCompleted(ctx context.Context) (int64, error) {
	result := gateway.DB.WithContext(ctx).
		Where("completed = ?", true).
		Delete(&entity.Todo{})
	return result.RowsAffected, result.Error
}

func (gateway *GormTodoGateway) CountStats(ctx context.Context) (int64, int64, error) {
	var counts struct {
		Total     int64
		Completed int64
	}
	err := gateway.DB.WithContext(ctx).
		Model(&entity.Todo{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE completed) AS completed").
		Scan(&counts).Error
	return counts.Total, counts.Completed, err
}

// WithTransaction relies on gorm.DB.Transaction, which pins one pooled connection
// for the whole callback and rolls back on error or panic.
func (gateway *GormTodoGateway) WithTransaction(ctx context.Context, fn func(tx TodoGateway) error) error {
	if gateway.inTx {
		return fn(gateway)
	}
	return gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormTodoGateway{DB: tx, inTx: true})
	})
}
