package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-auth/internal/service"
)

// AuthHandler mantiene dependencias para los endpoints de autenticación.
type AuthHandler struct {
	logger   *zap.Logger
	authServ *service.AuthService
	jwtServ  *service.JWTService
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, authServ *service.AuthService, jwtServ *service.JWTService) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		authServ: authServ,
		jwtServ:  jwtServ,
	}
}

// RequestCode maneja POST /auth/request-code.
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req struct {
		Identity string `json:"identity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request-code body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "identity is required"})
		return
	}

	err := h.authServ.RequestCode(c.Request.Context(), req.Identity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "identity is required"})
		case errors.Is(err, service.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "identity not authorized"})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		case errors.Is(err, service.ErrEmailSendFailure):
			h.logger.Error("code delivery failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not deliver code"})
		default:
			h.logger.Error("request code failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not request code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "code sent"})
}

// VerifyCode maneja POST /auth/verify-code.
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req struct {
		Identity string `json:"identity" binding:"required"`
		Code     string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid verify-code body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "identity and code are required"})
		return
	}

	user, err := h.authServ.VerifyCode(c.Request.Context(), req.Identity, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "identity and code are required"})
		case errors.Is(err, service.ErrCodeInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid code"})
		case errors.Is(err, service.ErrCodeExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "code expired"})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		default:
			h.logger.Error("verify code failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify code"})
		}
		return
	}

	if h.jwtServ == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt not configured"})
		return
	}
	token, err := h.jwtServ.GenerateSessionToken(user)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me maneja GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"identity": claims.Email, "role": claims.Role})
}
