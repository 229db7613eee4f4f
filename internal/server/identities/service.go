package identities

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkravchenko/identity-service/internal/common"
)

// Service wraps the repository with flow-control error translation so the
// HTTP layer only ever sees the common sentinels.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name string, age int) (*Identity, error) {
	identity, err := s.repo.Create(ctx, &Identity{Name: name, Age: age})
	if err != nil {
		return nil, fmt.Errorf("error creating identity: %w", err)
	}
	return identity, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Identity, error) {
	identity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return identity, nil
}

func (s *Service) GetAll(ctx context.Context) ([]Identity, error) {
	result, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, id string, upd Update) (*Identity, error) {
	identity, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return identity, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return nil
}
