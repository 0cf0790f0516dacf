// Package dbtest provides an in-memory TodoGateway for tests.
package dbtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type MemoryTodoGateway struct {
	mu     sync.Mutex
	txMu   sync.Mutex
	rows   map[int64]entity.Todo
	nextID int64

	// Err, when set, is returned by every operation
	Err error
	// Now is the clock used for timestamps
	Now func() time.Time

	Commits   int
	Rollbacks int
}

var _ db.TodoGateway = (*MemoryTodoGateway)(nil)

func NewMemoryTodoGateway() *MemoryTodoGateway {
	return &MemoryTodoGateway{
		rows:   make(map[int64]entity.Todo),
		nextID: 1,
		Now:    time.Now,
	}
}

// Seed inserts todos with the given texts and completion flags
func (gateway *MemoryTodoGateway) Seed(completed ...bool) []entity.Todo {
	seeded := make([]entity.Todo, 0, len(completed))
	for i, done := range completed {
		todo, _ := gateway.Create(context.Background(), "seed "+string(rune('a'+i%26)))
		if done {
			todo, _ = gateway.Toggle(context.Background(), todo.ID)
		}
		seeded = append(seeded, *todo)
	}
	return seeded
}

// Len returns the number of stored rows
func (gateway *MemoryTodoGateway) Len() int {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return len(gateway.rows)
}

func (gateway *MemoryTodoGateway) FindAll(_ context.Context) ([]entity.Todo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	if gateway.Err != nil {
		return nil, gateway.Err
	}

	todos := make([]entity.Todo, 0, len(gateway.rows))
	for _, todo := range gateway.rows {
		todos = append(todos, todo)
	}
	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		return todos[i].ID > todos[j].ID
	})
	return todos, nil
}

func (gateway *MemoryTodoGateway) FindByID(_ context.Context, id int64) (*entity.Todo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	if gateway.Err != nil {
		return nil, gateway.Err
	}

	todo, ok := gateway.rows[id]
	if !ok {
		return nil, nil
	}
	return &todo, nil
}

func (gateway *MemoryTodoGateway) Create(_ context.Context, text string) (*entity.Todo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	if gateway.Err != nil {
		return nil, gateway.Err
	}

	now := gateway.Now()
	todo := entity.Todo{ID: gateway.nextID, Text: text, CreatedAt: now, UpdatedAt: now}
	gateway.rows[todo.ID] = todo
	gateway.nextID++
	return &todo, nil
}

func (gateway *MemoryTodoGateway) Update(_ context.Context, id int64, patch model.TodoPatch) (*entity.Todo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	if gateway.Err != nil {
		return nil, gateway.Err
	}

	todo, ok := gateway.rows[id]
	if !ok {
		return nil, nil
	}
	if patch.Text != nil {
		todo.Text = *patch.Text
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	todo.UpdatedAt = gateway.Now()
	gateway.rows[id] = todo
	return &todo, nil
}

func (gateway *MemoryTodoGateway) Toggle(_ context.Context, id int64) (*entity.Todo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	if gateway.Err != nil {
		return nil, gateway.Err
	}

	todo, ok := gateway.rows[id]
	if !ok {
		return nil, nil
	}
	todo.Completed = !todo.Completed
	todo.UpdatedAt = gateway.Now()
	gateway.rows[id] = todo
	return &todo, nil
}

func (gateway *MemoryTodoGateway) DeleteByID(_ context.Context, id int64) (bool, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	if gateway.Err != nil {
		return false, gateway.Err
	}

	if _, ok := gateway.rows[id]; !ok {
		return false, nil
	}
	delete(gateway.rows, id)
	return true, nil
}

func (gateway *MemoryTodoGateway) DeleteCompleted(_ context.Context) (int64, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	if gateway.Err != nil {
		return 0, gateway.Err
	}

	var deleted int64
	for id, todo := range gateway.rows {
		if todo.Completed {
			delete(gateway.rows, id)
			deleted++
		}
	}
	return deleted, nil
}

func (gateway *MemoryTodoGateway) CountStats(_ context.Context) (int64, int64, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	if gateway.Err != nil {
		return 0, 0, gateway.Err
	}

	var completed int64
	for _, todo := range gateway.rows {
		if todo.Completed {
			completed++
		}
	}
	return int64(len(gateway.rows)), completed, nil
}

// WithTransaction serializes transactions and restores a snapshot when fn fails
func (gateway *MemoryTodoGateway) WithTransaction(ctx context.Context, fn func(tx db.TodoGateway) error) error {
	gateway.txMu.Lock()
	defer gateway.txMu.Unlock()

	gateway.mu.Lock()
	if gateway.Err != nil {
		gateway.mu.Unlock()
		return gateway.Err
	}
	snapshot := make(map[int64]entity.Todo, len(gateway.rows))
	for id, todo := range gateway.rows {
		snapshot[id] = todo
	}
	gateway.mu.Unlock()

	if err := fn(gateway); err != nil {
		gateway.mu.Lock()
		gateway.rows = snapshot
		gateway.Rollbacks++
		gateway.mu.Unlock()
		return err
	}

	gateway.mu.Lock()
	gateway.Commits++
	gateway.mu.Unlock()
	return nil
}
