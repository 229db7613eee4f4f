package httpapi

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"

	"github.com/dkravchenko/identity-service/internal/common"
	"github.com/dkravchenko/identity-service/internal/logging"
	"github.com/dkravchenko/identity-service/internal/server/auth"
	"github.com/dkravchenko/identity-service/internal/server/credentials"
	"github.com/dkravchenko/identity-service/internal/server/identities"
)

// withWhoami adds a gated route that echoes the authenticated identifier,
// so tests can observe what the gate attaches to the request context.
func withWhoami(s *Server) *Server {
	s.engine.GET("/whoami", s.requireAuth, func(c *gin.Context) {
		respond(c, http.StatusOK, "ok", c.GetString(common.IdentifierContextKey))
	})
	return s
}

func TestGate_MissingHeader(t *testing.T) {
	s := newTestServer(t)

	apitest.New().
		Handler(s.Handler()).
		Get("/identity").
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.message", "Missing headers")).
		End()
}

func TestGate_InvalidHeaderShape(t *testing.T) {
	s := newTestServer(t)

	for _, header := range []string{"Bearer", "Bearer a b", "   Bearer   "} {
		apitest.New().
			Handler(s.Handler()).
			Get("/identity").
			Header("Authorization", header).
			Expect(t).
			Status(http.StatusBadRequest).
			Assert(jsonpath.Equal("$.message", "Invalid Token Format")).
			End()
	}
}

func TestGate_MalformedToken(t *testing.T) {
	s := newTestServer(t)

	apitest.New().
		Handler(s.Handler()).
		Get("/identity").
		Header("Authorization", "Bearer not-a-jwt").
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.message", "malformed token")).
		End()
}

func TestGate_ExpiredToken(t *testing.T) {
	s := newTestServer(t)

	signupAndLogin(t, s, "a@b.com", "pw123")

	// same secret, already-elapsed TTL
	expired := auth.NewTokenService([]byte(testSecret), -time.Second)
	token, err := expired.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	apitest.New().
		Handler(s.Handler()).
		Get("/identity").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.message", "token expired")).
		End()
}

func TestGate_TamperedToken(t *testing.T) {
	s := newTestServer(t)

	token := signupAndLogin(t, s, "a@b.com", "pw123")

	last := token[len(token)-1]
	flipped := byte('A')
	if last == flipped {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	apitest.New().
		Handler(s.Handler()).
		Get("/identity").
		Header("Authorization", "Bearer "+tampered).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.message", "invalid token signature")).
		End()
}

func TestGate_SubjectNoLongerExists(t *testing.T) {
	s := newTestServer(t)

	// valid token for a subject that was never stored
	tokens := auth.NewTokenService([]byte(testSecret), time.Hour)
	token, err := tokens.Issue("ghost@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	apitest.New().
		Handler(s.Handler()).
		Get("/identity").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal("$.message", "Unauthorized")).
		End()
}

func TestGate_AttachesIdentifier(t *testing.T) {
	s := withWhoami(newTestServer(t))

	token := signupAndLogin(t, s, "a@b.com", "pw123")

	apitest.New().
		Handler(s.Handler()).
		Get("/whoami").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.data", "a@b.com")).
		End()
}

// failingRepository simulates an unreachable credential store.
type failingRepository struct{}

func (failingRepository) Create(context.Context, *credentials.Credential) (*credentials.Credential, error) {
	return nil, errors.New("store unreachable")
}

func (failingRepository) GetByIdentifier(context.Context, string) (*credentials.Credential, error) {
	return nil, errors.New("store unreachable")
}

func TestGate_StoreFailureIsInternal(t *testing.T) {
	hasher := auth.NewHasher(auth.Argon2idParams{Time: 1, MemoryKiB: 1024, Threads: 1, SaltLen: 16, KeyLen: 32})
	tokens := auth.NewTokenService([]byte(testSecret), time.Hour)
	credentialService := credentials.NewService(failingRepository{}, hasher, tokens)
	identityService := identities.NewService(identities.NewInMemoryRepository())
	s := NewServer(":0", logging.NopLogger{}, credentialService, identityService, tokens)

	token, err := tokens.Issue("a@b.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	apitest.New().
		Handler(s.Handler()).
		Get("/identity").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusInternalServerError).
		Assert(jsonpath.Equal("$.message", "Internal Server Error")).
		End()
}
