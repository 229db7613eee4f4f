package credentials

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravchenko/identity-service/internal/common"
	"github.com/dkravchenko/identity-service/internal/server/auth"
)

func newTestService() *Service {
	hasher := auth.NewHasher(auth.Argon2idParams{Time: 1, MemoryKiB: 1024, Threads: 1, SaltLen: 16, KeyLen: 32})
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	return NewService(NewInMemoryRepository(), hasher, tokens)
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	s := newTestService()
	ctx := context.Background()

	id, err := s.Signup(ctx, "a@b.com", "pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	stored, err := s.repo.GetByIdentifier(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, id, stored.ID)
	assert.NotEqual(t, "pw123", stored.PasswordHash)
}

func TestSignup_DuplicateIdentifier(t *testing.T) {
	t.Parallel()

	s := newTestService()
	ctx := context.Background()

	_, err := s.Signup(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	_, err = s.Signup(ctx, "a@b.com", "other")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	s := newTestService()
	ctx := context.Background()

	_, err := s.Signup(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	token, err := s.Login(ctx, "a@b.com", "pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	s := newTestService()

	_, err := s.Login(context.Background(), "nobody@b.com", "pw123")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	s := newTestService()
	ctx := context.Background()

	_, err := s.Signup(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	_, err = s.Login(ctx, "a@b.com", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_CorruptStoredHashIsInternal(t *testing.T) {
	t.Parallel()

	s := newTestService()
	ctx := context.Background()

	_, err := s.repo.Create(ctx, &Credential{Identifier: "broken@b.com", PasswordHash: "garbage"})
	require.NoError(t, err)

	_, err = s.Login(ctx, "broken@b.com", "pw123")
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestCheckSubject(t *testing.T) {
	t.Parallel()

	s := newTestService()
	ctx := context.Background()

	_, err := s.Signup(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	assert.NoError(t, s.CheckSubject(ctx, "a@b.com"))
	assert.ErrorIs(t, s.CheckSubject(ctx, "gone@b.com"), common.ErrorNotFound)
}
