package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dkravchenko/identity-service/internal/server/credentials"
	"github.com/dkravchenko/identity-service/internal/server/identities"
	"github.com/dkravchenko/identity-service/internal/server/migrations"
)

type PostgresRepositoryManager struct {
	db          *sql.DB
	credentials credentials.Repository
	identities  identities.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Credentials() credentials.Repository {
	return m.credentials
}

func (m *PostgresRepositoryManager) Identities() identities.Repository {
	return m.identities
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	credentialRepo, err := credentials.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("credential repo creation error: %w", err)
	}

	identityRepo, err := identities.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("identity repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:          db,
		credentials: credentialRepo,
		identities:  identityRepo,
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
