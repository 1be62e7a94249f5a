package usecase_test

import (
	"context"
	"sync"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// Mock logger for testing. errorCalls counts Error/Errorf lines.
type mockLogger struct {
	errorCalls int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    { m.errorCalls++ }
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  { m.errorCalls++ }
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repo.Repository with BIGSERIAL-like ids.
// Setting err makes every call fail with it; calls counts repository hits.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]item.Item
	order  []int64
	err    error
	calls  int
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, rows: map[int64]item.Item{}}
}

func clone(it item.Item) item.Item {
	if it.Description != nil {
		d := *it.Description
		it.Description = &d
	}
	return it
}

func (m *memRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return item.Item{}, m.err
	}
	it := clone(item.Item{ID: m.nextID, Name: opt.Name, Description: opt.Description})
	m.nextID++
	m.rows[it.ID] = it
	m.order = append(m.order, it.ID)
	return clone(it), nil
}

func (m *memRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return item.Item{}, m.err
	}
	return clone(m.rows[opt.ID]), nil
}

func (m *memRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []item.Item
	for _, id := range m.order {
		if it, ok := m.rows[id]; ok {
			out = append(out, clone(it))
		}
	}
	return out, nil
}

func (m *memRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return item.Item{}, m.err
	}
	it, ok := m.rows[opt.ID]
	if !ok {
		return item.Item{}, nil
	}
	if opt.Name != nil {
		it.Name = *opt.Name
	}
	if opt.Description != nil {
		d := *opt.Description
		it.Description = &d
	}
	m.rows[it.ID] = it
	return clone(it), nil
}

func (m *memRepo) DeleteItem(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *memRepo) EnsureSchema(ctx context.Context) error { return m.err }
