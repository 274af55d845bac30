package faq

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// memoryRepo mirrors the Mongo filter and sort semantics in process.
type memoryRepo struct {
	mu        sync.Mutex
	items     map[string]Entry
	err       error
	listCalls int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[string]Entry)}
}

func (m *memoryRepo) Create(ctx context.Context, item Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.items[item.ID] = clone(item)
	return nil
}

func (m *memoryRepo) Get(ctx context.Context, id string) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Entry{}, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return Entry{}, mongo.ErrNoDocuments
	}
	return clone(item), nil
}

func (m *memoryRepo) Update(ctx context.Context, id string, patch Patch, at time.Time) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Entry{}, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return Entry{}, mongo.ErrNoDocuments
	}
	item = patch.Apply(item)
	item.UpdatedAt = at
	m.items[id] = item
	return clone(item), nil
}

func (m *memoryRepo) IncrementViewCount(ctx context.Context, id string, at time.Time) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Entry{}, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return Entry{}, mongo.ErrNoDocuments
	}
	item.ViewCount++
	item.UpdatedAt = at
	m.items[id] = item
	return clone(item), nil
}

func (m *memoryRepo) Delete(ctx context.Context, id string) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Entry{}, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return Entry{}, mongo.ErrNoDocuments
	}
	delete(m.items, id)
	return item, nil
}

func (m *memoryRepo) List(ctx context.Context, q Query) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}

	matched := m.matching(q)
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	skip := q.Skip()
	if skip >= int64(len(matched)) {
		return []Entry{}, nil
	}
	end := skip + q.Limit
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[skip:end], nil
}

func (m *memoryRepo) Count(ctx context.Context, q Query) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.matching(q))), nil
}

func (m *memoryRepo) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	byCategory := map[string]int64{}
	for _, e := range m.items {
		if e.IsActive {
			byCategory[e.Category]++
		}
	}
	out := make([]CategoryCount, 0, len(byCategory))
	for category, n := range byCategory {
		out = append(out, CategoryCount{Category: category, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (m *memoryRepo) matching(q Query) []Entry {
	out := make([]Entry, 0, len(m.items))
	for _, item := range m.items {
		if matches(item, q) {
			out = append(out, clone(item))
		}
	}
	return out
}

func matches(e Entry, q Query) bool {
	if !e.IsActive {
		return false
	}
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if strings.Contains(strings.ToLower(e.Question), term) || strings.Contains(strings.ToLower(e.Answer), term) {
			return true
		}
		for _, tag := range e.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
		return false
	}
	return q.Category == "" || e.Category == q.Category
}

func clone(e Entry) Entry {
	e.Tags = append([]string{}, e.Tags...)
	return e
}
