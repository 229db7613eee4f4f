package db

import (
	"context"
	"database/sql"

	"github.com/dkravchenko/identity-service/internal/server/credentials"
	"github.com/dkravchenko/identity-service/internal/server/identities"
)

type InMemoryRepositoryManager struct {
	credentials credentials.Repository
	identities  identities.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Credentials() credentials.Repository {
	return m.credentials
}

func (m InMemoryRepositoryManager) Identities() identities.Repository {
	return m.identities
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		credentials: credentials.NewInMemoryRepository(),
		identities:  identities.NewInMemoryRepository(),
	}
}
