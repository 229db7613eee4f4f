package db

import (
	"context"
	"database/sql"

	"github.com/dkravchenko/identity-service/internal/server/credentials"
	"github.com/dkravchenko/identity-service/internal/server/identities"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Credentials() credentials.Repository
	Identities() identities.Repository
}
