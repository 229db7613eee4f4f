package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkravchenko/identity-service/internal/common"
	"github.com/dkravchenko/identity-service/internal/server/identities"
)

// Age is a pointer so that a legitimate value of 0 passes the required
// check.
type identityRequest struct {
	Name string `json:"name" binding:"required"`
	Age  *int   `json:"age" binding:"required,gte=0,lte=255"`
}

func (s *Server) createIdentity(c *gin.Context) {
	ctx := c.Request.Context()

	var req identityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, err := s.identities.Create(ctx, req.Name, *req.Age)
	if err != nil {
		s.logger.Error(ctx, "identity create failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond(c, http.StatusCreated, "Created", identity.ID)
}

func (s *Server) listIdentities(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := s.identities.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "identity list failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond(c, http.StatusOK, "Fetched all", result)
}

func (s *Server) getIdentity(c *gin.Context) {
	ctx := c.Request.Context()

	identity, err := s.identities.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "Identity does not exist")
			return
		}
		s.logger.Error(ctx, "identity get failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond(c, http.StatusOK, "Fetched", identity)
}

func (s *Server) updateIdentity(c *gin.Context) {
	ctx := c.Request.Context()

	var upd identities.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, err := s.identities.Update(ctx, c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "Identity does not exist")
			return
		}
		s.logger.Error(ctx, "identity update failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond(c, http.StatusOK, "Updated", identity)
}

func (s *Server) deleteIdentity(c *gin.Context) {
	ctx := c.Request.Context()

	if err := s.identities.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, "Identity does not exist")
			return
		}
		s.logger.Error(ctx, "identity delete failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	respond(c, http.StatusOK, "Deleted", nil)
}
