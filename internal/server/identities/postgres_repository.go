package identities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkravchenko/identity-service/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, identity *Identity) (*Identity, error) {

	identity.ID = uuid.NewString()

	query :=
		`INSERT INTO identities (id, name, age)
		 VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		identity.ID, identity.Name, identity.Age).Scan(&identity.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Identity, error) {
	query :=
		`SELECT id, name, age, created_at FROM identities
		 WHERE id = $1
		 `

	identity := &Identity{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&identity.ID, &identity.Name, &identity.Age, &identity.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]Identity, error) {
	query :=
		`SELECT id, name, age, created_at FROM identities
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]Identity, 0)
	for rows.Next() {
		var identity Identity
		if err := rows.Scan(&identity.ID, &identity.Name, &identity.Age, &identity.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd Update) (*Identity, error) {
	query :=
		`UPDATE identities
		 SET name = COALESCE($2, name), age = COALESCE($3, age)
		 WHERE id = $1
		 RETURNING id, name, age, created_at
		 `

	identity := &Identity{}
	err := r.db.QueryRowContext(ctx, query, id, upd.Name, upd.Age).
		Scan(&identity.ID, &identity.Name, &identity.Age, &identity.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM identities WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
