package identities

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkravchenko/identity-service/internal/common"
)

// InMemoryRepository is a mutex-guarded map keyed by id, used by tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]Identity
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]Identity)}
}

func (r *InMemoryRepository) Create(_ context.Context, identity *Identity) (*Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity.ID = uuid.NewString()
	identity.CreatedAt = time.Now()
	r.items[identity.ID] = *identity

	return identity, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &item, nil
}

func (r *InMemoryRepository) GetAll(_ context.Context) ([]Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Identity, 0, len(r.items))
	for _, item := range r.items {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id string, upd Update) (*Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Age != nil {
		item.Age = *upd.Age
	}
	r.items[id] = item

	return &item, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)

	return nil
}
