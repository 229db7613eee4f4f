package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dkravchenko/identity-service/internal/common"
)

// requireAuth is the authorization gate applied to protected routes.
//
// It extracts the bearer token from the Authorization header, validates it,
// re-confirms the subject still exists in the credential store and attaches
// the authenticated identifier to the request context. A missing or
// malformed header and any token validation failure are client errors (400);
// a vanished subject is 401; a store failure is 500.
func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader(common.AuthorizationHeaderName)
	if header == "" {
		respondError(c, http.StatusBadRequest, "Missing headers")
		return
	}

	// exactly two whitespace-separated parts: scheme and credentials
	parts := strings.Fields(header)
	if len(parts) != 2 {
		respondError(c, http.StatusBadRequest, "Invalid Token Format")
		return
	}

	claims, err := s.tokens.Validate(parts[1])
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.credentials.CheckSubject(c.Request.Context(), claims.Identifier); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		s.logger.Error(c.Request.Context(), "subject check failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Set(common.IdentifierContextKey, claims.Identifier)
	c.Next()
}
