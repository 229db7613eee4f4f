package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkravchenko/identity-service/internal/common"
	"github.com/dkravchenko/identity-service/internal/server/auth"
)

// Service orchestrates the hasher, the credential store and the token
// service for signup, login and the per-request subject check.
type Service struct {
	repo   Repository
	hasher *auth.Hasher
	tokens *auth.TokenService
}

func NewService(repo Repository, hasher *auth.Hasher, tokens *auth.TokenService) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Signup hashes the plaintext password and inserts a new credential.
// Returns the storage-assigned id. A duplicate identifier surfaces as
// common.ErrorAlreadyExists; a hashing failure as common.ErrHashingFailed.
func (s *Service) Signup(ctx context.Context, identifier, password string) (string, error) {

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrHashingFailed, err)
	}

	credential := &Credential{
		Identifier:   identifier,
		PasswordHash: passwordHash,
	}

	credential, err = s.repo.Create(ctx, credential)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("error creating credential: %w", err)
	}

	return credential.ID, nil
}

// Login verifies the password against the stored hash and, on success,
// issues a session token for the identifier.
//
// Sentinels returned for flow control: ErrorNotFound when the identifier is
// unknown, ErrorUnauthorized for a wrong password, ErrorInternal for any
// infrastructure failure (unparseable stored hash, store error, signing
// error). Detail never leaves the service except through the error chain.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, error) {

	credential, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	ok, err := s.hasher.Verify(password, credential.PasswordHash)
	if err != nil {
		// a malformed stored hash is an infrastructure problem,
		// not a wrong password
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(credential.Identifier)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return token, nil
}

// CheckSubject re-confirms that the subject of a validated token still
// exists in the store. Returns ErrorNotFound when it does not; any other
// error is a store failure.
func (s *Service) CheckSubject(ctx context.Context, identifier string) error {
	_, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return nil
}
