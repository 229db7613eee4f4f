package identities

import "context"

type Repository interface {
	Create(ctx context.Context, identity *Identity) (*Identity, error)
	GetByID(ctx context.Context, id string) (*Identity, error)
	GetAll(ctx context.Context) ([]Identity, error)
	Update(ctx context.Context, id string, upd Update) (*Identity, error)
	Delete(ctx context.Context, id string) error
}
