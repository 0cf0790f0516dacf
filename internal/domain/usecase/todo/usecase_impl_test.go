package todo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"todo-api/internal/domain/gateway/db/dbtest"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

func ptr[T any](value T) *T {
	return &value
}

func newUseCase() (UseCase, *dbtest.MemoryTodoGateway) {
	gateway := dbtest.NewMemoryTodoGateway()
	return NewTodoUseCase(gateway), gateway
}

func TestCreate(t *testing.T) {
	useCase, _ := newUseCase()
	ctx := context.Background()

	created, err := useCase.Create(ctx, model.CreateTodoDTO{Text: ptr("  write tests  ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Text != "write tests" || created.Completed {
		t.Errorf("expected trimmed active todo, got %+v", created)
	}
	if created.UpdatedAt.Before(created.CreatedAt) {
		t.Error("expected updatedAt not before createdAt")
	}

	todos, _ := useCase.FindAll(ctx)
	if len(todos) != 1 || todos[0].ID != created.ID {
		t.Errorf("expected the created todo to be listed, got %+v", todos)
	}
}

func TestCreateRejectsInvalidText(t *testing.T) {
	inputs := map[string]*string{
		"missing":  nil,
		"empty":    ptr(""),
		"blank":    ptr("   "),
		"too long": ptr(strings.Repeat("x", 256)),
	}

	for name, text := range inputs {
		t.Run(name, func(t *testing.T) {
			useCase, gateway := newUseCase()
			_, err := useCase.Create(context.Background(), model.CreateTodoDTO{Text: text})
			if !model.IsKind(err, model.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if gateway.Len() != 0 {
				t.Errorf("expected nothing stored, got %d rows", gateway.Len())
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		dto      model.UpdateTodoDTO
		wantKind model.ErrorKind
		wantText string
		wantDone bool
	}{
		{name: "text only", id: 1, dto: model.UpdateTodoDTO{Text: ptr(" renamed ")}, wantText: "renamed"},
		{name: "completed only", id: 1, dto: model.UpdateTodoDTO{Completed: ptr(true)}, wantText: "seed a", wantDone: true},
		{name: "both", id: 1, dto: model.UpdateTodoDTO{Text: ptr("x"), Completed: ptr(true)}, wantText: "x", wantDone: true},
		{name: "missing todo", id: 99, dto: model.UpdateTodoDTO{Text: ptr("x")}, wantKind: model.KindNotFound},
		{name: "missing todo wins over empty body", id: 99, dto: model.UpdateTodoDTO{}, wantKind: model.KindNotFound},
		{name: "blank text", id: 1, dto: model.UpdateTodoDTO{Text: ptr("  ")}, wantKind: model.KindValidation},
		{name: "nothing to update", id: 1, dto: model.UpdateTodoDTO{}, wantKind: model.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase, gateway := newUseCase()
			gateway.Seed(false)

			updated, err := useCase.Update(context.Background(), tt.id, tt.dto)
			if tt.wantKind != "" {
				if !model.IsKind(err, tt.wantKind) {
					t.Fatalf("expected %s, got %v", tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.Text != tt.wantText || updated.Completed != tt.wantDone {
				t.Errorf("expected text %q completed %v, got %+v", tt.wantText, tt.wantDone, updated)
			}
		})
	}
}

func TestDeleteByID(t *testing.T) {
	useCase, gateway := newUseCase()
	seeded := gateway.Seed(false, false)
	ctx := context.Background()

	if err := useCase.DeleteByID(ctx, seeded[0].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := useCase.DeleteByID(ctx, seeded[0].ID); !model.IsKind(err, model.KindNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}

	todos, _ := useCase.FindAll(ctx)
	if len(todos) != 1 || todos[0].ID != seeded[1].ID {
		t.Errorf("expected only the other todo to remain, got %+v", todos)
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	useCase, gateway := newUseCase()
	seeded := gateway.Seed(false)
	ctx := context.Background()

	first, err := useCase.Toggle(ctx, seeded[0].ID)
	if err != nil || !first.Completed {
		t.Fatalf("expected completed after first toggle, got %+v, %v", first, err)
	}
	second, err := useCase.Toggle(ctx, seeded[0].ID)
	if err != nil || second.Completed {
		t.Fatalf("expected active after second toggle, got %+v, %v", second, err)
	}
	if second.Text != seeded[0].Text {
		t.Errorf("expected text %q, got %q", seeded[0].Text, second.Text)
	}

	if _, err := useCase.Toggle(ctx, 42); !model.IsKind(err, model.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestBatchCreate(t *testing.T) {
	useCase, gateway := newUseCase()

	created, err := useCase.BatchCreate(context.Background(), model.BatchCreateTodoDTO{
		Todos: []model.CreateTodoDTO{{Text: ptr("one")}, {Text: ptr(" two ")}, {Text: ptr("three")}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"one", "two", "three"}
	if len(created) != len(expected) {
		t.Fatalf("expected %d todos, got %d", len(expected), len(created))
	}
	for i, todo := range created {
		if todo.Text != expected[i] {
			t.Errorf("expected %q at %d, got %q", expected[i], i, todo.Text)
		}
		if i > 0 && todo.ID <= created[i-1].ID {
			t.Errorf("expected increasing ids, got %d after %d", todo.ID, created[i-1].ID)
		}
	}
	if gateway.Commits != 1 {
		t.Errorf("expected 1 commit, got %d", gateway.Commits)
	}
}

func TestBatchCreateRollsBackOnInvalidItem(t *testing.T) {
	useCase, gateway := newUseCase()
	gateway.Seed(true)

	_, err := useCase.BatchCreate(context.Background(), model.BatchCreateTodoDTO{
		Todos: []model.CreateTodoDTO{{Text: ptr("valid")}, {Text: ptr("   ")}, {Text: ptr("never")}},
	})

	appErr, ok := model.AsAppError(err)
	if !ok || appErr.Kind != model.KindStore {
		t.Fatalf("expected store error, got %v", err)
	}
	if appErr.Detail != msg.GetMessage("todo.error.empty-text") {
		t.Errorf("expected validation detail, got %q", appErr.Detail)
	}
	if gateway.Len() != 1 {
		t.Errorf("expected table unchanged with 1 row, got %d", gateway.Len())
	}
	if gateway.Rollbacks != 1 {
		t.Errorf("expected 1 rollback, got %d", gateway.Rollbacks)
	}
}

func TestBatchCreateShape(t *testing.T) {
	tooMany := make([]model.CreateTodoDTO, MaxBatchSize+1)
	for i := range tooMany {
		tooMany[i] = model.CreateTodoDTO{Text: ptr("item")}
	}
	exactly := tooMany[:MaxBatchSize]

	tests := []struct {
		name    string
		todos   []model.CreateTodoDTO
		wantErr bool
	}{
		{name: "nil", todos: nil, wantErr: true},
		{name: "empty", todos: []model.CreateTodoDTO{}, wantErr: true},
		{name: "over the limit", todos: tooMany, wantErr: true},
		{name: "at the limit", todos: exactly, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase, gateway := newUseCase()
			created, err := useCase.BatchCreate(context.Background(), model.BatchCreateTodoDTO{Todos: tt.todos})
			if tt.wantErr {
				if !model.IsKind(err, model.KindValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if gateway.Len() != 0 {
					t.Errorf("expected no rows, got %d", gateway.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(created) != MaxBatchSize {
				t.Errorf("expected %d todos, got %d", MaxBatchSize, len(created))
			}
		})
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name      string
		completed []bool
		expected  model.TodoStats
	}{
		{name: "empty", completed: nil, expected: model.TodoStats{}},
		{name: "one of three", completed: []bool{true, false, false}, expected: model.TodoStats{Total: 3, Completed: 1, Pending: 2, CompletionRate: 33}},
		{name: "two of three", completed: []bool{true, true, false}, expected: model.TodoStats{Total: 3, Completed: 2, Pending: 1, CompletionRate: 67}},
		{name: "all", completed: []bool{true, true}, expected: model.TodoStats{Total: 2, Completed: 2, Pending: 0, CompletionRate: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase, gateway := newUseCase()
			gateway.Seed(tt.completed...)

			stats, err := useCase.Stats(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *stats != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *stats)
			}
			if stats.Total != stats.Completed+stats.Pending {
				t.Errorf("expected total to equal completed plus pending, got %+v", *stats)
			}
		})
	}
}

func TestClearCompleted(t *testing.T) {
	useCase, gateway := newUseCase()
	gateway.Seed(true, false, true, false)

	result, err := useCase.ClearCompleted(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DeletedCount != 2 {
		t.Errorf("expected 2 deleted, got %d", result.DeletedCount)
	}

	todos, _ := useCase.FindAll(context.Background())
	for _, todo := range todos {
		if todo.Completed {
			t.Errorf("expected no completed todo left, got %+v", todo)
		}
	}
	if len(todos) != 2 {
		t.Errorf("expected 2 remaining todos, got %d", len(todos))
	}
}

func TestStoreFailures(t *testing.T) {
	storeErr := errors.New("connection refused")
	ctx := context.Background()

	operations := map[string]func(UseCase) error{
		"list": func(uc UseCase) error { _, err := uc.FindAll(ctx); return err },
		"create": func(uc UseCase) error {
			_, err := uc.Create(ctx, model.CreateTodoDTO{Text: ptr("x")})
			return err
		},
		"update": func(uc UseCase) error {
			_, err := uc.Update(ctx, 1, model.UpdateTodoDTO{Text: ptr("x")})
			return err
		},
		"delete": func(uc UseCase) error { return uc.DeleteByID(ctx, 1) },
		"toggle": func(uc UseCase) error { _, err := uc.Toggle(ctx, 1); return err },
		"batch": func(uc UseCase) error {
			_, err := uc.BatchCreate(ctx, model.BatchCreateTodoDTO{Todos: []model.CreateTodoDTO{{Text: ptr("x")}}})
			return err
		},
		"stats": func(uc UseCase) error { _, err := uc.Stats(ctx); return err },
		"clear": func(uc UseCase) error { _, err := uc.ClearCompleted(ctx); return err },
	}

	for name, operation := range operations {
		t.Run(name, func(t *testing.T) {
			useCase, gateway := newUseCase()
			gateway.Seed(false)
			gateway.Err = storeErr

			err := operation(useCase)
			if !model.IsKind(err, model.KindStore) {
				t.Fatalf("expected store error, got %v", err)
			}
			if !errors.Is(err, storeErr) {
				t.Errorf("expected the cause to be wrapped, got %v", err)
			}
		})
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		total, completed int64
		expected         int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 100},
		{8, 1, 13},
		{200, 1, 1},
		{201, 1, 0},
	}

	for _, tt := range tests {
		if got := completionRate(tt.total, tt.completed); got != tt.expected {
			t.Errorf("completionRate(%d, %d): expected %d, got %d", tt.total, tt.completed, tt.expected, got)
		}
	}
}
