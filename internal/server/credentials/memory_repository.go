package credentials

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkravchenko/identity-service/internal/common"
)

// InMemoryRepository is a mutex-guarded map keyed by identifier. It backs
// tests and mirrors the uniqueness semantics of the Postgres schema.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]Credential
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]Credential)}
}

func (r *InMemoryRepository) Create(_ context.Context, credential *Credential) (*Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[credential.Identifier]; ok {
		return nil, common.ErrorAlreadyExists
	}

	credential.ID = uuid.NewString()
	credential.CreatedAt = time.Now()
	r.items[credential.Identifier] = *credential

	return credential, nil
}

func (r *InMemoryRepository) GetByIdentifier(_ context.Context, identifier string) (*Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[identifier]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &item, nil
}
