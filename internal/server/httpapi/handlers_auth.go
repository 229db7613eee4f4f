package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkravchenko/identity-service/internal/common"
)

type credentialRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (s *Server) signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.logger.Info(ctx, "Signup request", "identifier", req.Identifier)

	id, err := s.credentials.Signup(ctx, req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			respondError(c, http.StatusConflict, "Credential already exists")
			return
		}
		// hashing and store failures alike: generic message out,
		// detail stays in the log
		s.logger.Error(ctx, "signup failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	s.logger.Info(ctx, "Signed up", "identifier", req.Identifier)
	respond(c, http.StatusCreated, "Created", id)
}

func (s *Server) login(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.credentials.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			respondError(c, http.StatusNotFound, "Credential does not exist")
		case errors.Is(err, common.ErrorUnauthorized):
			respondError(c, http.StatusUnauthorized, "Invalid Password")
		default:
			s.logger.Error(ctx, "login failed", "error", err.Error())
			respondError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	respond(c, http.StatusOK, "Logged in", token)
}
