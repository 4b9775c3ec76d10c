package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luvremak/db-coursework/internal/logger"
	"github.com/luvremak/db-coursework/internal/model"
	"github.com/luvremak/db-coursework/internal/service"
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

func (h *AuthHandler) Token(c *gin.Context) {
	var req model.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	token, err := h.auth.IssueToken(req.UserID, req.Secret)
	if err != nil {
		logger.Warn(c.Request.Context(), "auth.denied", "user_id", req.UserID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	logger.Info(c.Request.Context(), "auth.ok", "user_id", req.UserID)
	c.JSON(http.StatusOK, model.TokenResponse{Token: token})
}
