package credentials

import "context"

type Repository interface {
	Create(ctx context.Context, credential *Credential) (*Credential, error)
	GetByIdentifier(ctx context.Context, identifier string) (*Credential, error)
}
