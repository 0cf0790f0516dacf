package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

const todoColumns = "id, text, completed, created_at, updated_at"

// querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SQLCTodoGateway struct {
	DB   *sql.DB
	q    querier
	inTx bool
}

var _ TodoGateway = (*SQLCTodoGateway)(nil)

func NewSQLCTodoGateway(db *sql.DB) *SQLCTodoGateway {
	return &SQLCTodoGateway{DB: db, q: db}
}

func (gateway *SQLCTodoGateway) FindAll(ctx context.Context) (todos []entity.Todo, err error) {
	rows, err := gateway.q.QueryContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results := make([]entity.Todo, 0)
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLCTodoGateway) FindByID(ctx context.Context, id int64) (*entity.Todo, error) {
	row := gateway.q.QueryRowContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1`, id)
	return scanTodo(row)
}

func (gateway *SQLCTodoGateway) Create(ctx context.Context, text string) (*entity.Todo, error) {
	row := gateway.q.QueryRowContext(ctx, `
		INSERT INTO todos (text)
		VALUES ($1)
		RETURNING `+todoColumns, text)
	todo, err := scanTodo(row)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, errors.New("insert returned no row")
	}
	return todo, nil
}

func (gateway *SQLCTodoGateway) Update(ctx context.Context, id int64, patch model.TodoPatch) (*entity.Todo, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if patch.Text != nil {
		args = append(args, *patch.Text)
		sets = append(sets, fmt.Sprintf("text = $%d", len(args)))
	}
	if patch.Completed != nil {
		args = append(args, *patch.Completed)
		sets = append(sets, fmt.Sprintf("completed = $%d", len(args)))
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	row := gateway.q.QueryRowContext(ctx, fmt.Sprintf(`
		UPDATE todos
		SET %s
		WHERE id = $%d
		RETURNING `+todoColumns, strings.Join(sets, ", "), len(args)), args...)
	return scanTodo(row)
}

func (gateway *SQLCTodoGateway) Toggle(ctx context.Context, id int64) (*entity.Todo, error) {
	row := gateway.q.QueryRowContext(ctx, `
		UPDATE todos
		SET completed = NOT completed, updated_at = NOW()
		WHERE id = $1
		RETURNING `+todoColumns, id)
	return scanTodo(row)
}

func (gateway *SQLCTodoGateway) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := gateway.q.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (gateway *SQLCTodoGateway) DeleteCompleted(ctx context.Context) (int64, error) {
	result, err := gateway.q.ExecContext(ctx, `DELETE FROM todos WHERE completed = TRUE`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CountStats counts both figures in one statement so they always describe the same snapshot
func (gateway *SQLCTodoGateway) CountStats(ctx context.Context) (int64, int64, error) {
	var total, completed int64
	err := gateway.q.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE completed)
		FROM todos`).Scan(&total, &completed)
	return total, completed, err
}

func (gateway *SQLCTodoGateway) WithTransaction(ctx context.Context, fn func(tx TodoGateway) error) (err error) {
	if gateway.inTx {
		return fn(gateway)
	}

	conn, err := gateway.DB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&SQLCTodoGateway{DB: gateway.DB, q: tx, inTx: true}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func scanTodo(row *sql.Row) (*entity.Todo, error) {
	var t entity.Todo
	err := row.Scan(&t.ID, &t.Text, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
