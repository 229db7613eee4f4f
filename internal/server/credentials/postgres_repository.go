package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dkravchenko/identity-service/internal/common"
)

// pgUniqueViolation is the PostgreSQL error code for unique-constraint
// violations; a duplicate identifier at signup surfaces this way.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, credential *Credential) (*Credential, error) {

	credential.ID = uuid.NewString()

	query :=
		`INSERT INTO credentials (id, identifier, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		credential.ID, credential.Identifier, credential.PasswordHash).Scan(&credential.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return credential, nil
}

func (r *PostgresRepository) GetByIdentifier(ctx context.Context, identifier string) (*Credential, error) {
	query :=
		`SELECT id, identifier, password_hash, created_at FROM credentials
		 WHERE identifier = $1
		 `

	credential := &Credential{}
	err := r.db.QueryRowContext(ctx, query, identifier).
		Scan(&credential.ID, &credential.Identifier, &credential.PasswordHash, &credential.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return credential, nil
}
