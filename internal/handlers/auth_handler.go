package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raqazhet/informatics/internal/services"
)

// AuthHandler обрабатывает авторизацию админ-консоли
type AuthHandler struct {
	svc *services.AuthService
}

// NewAuthHandler создает новый обработчик авторизации
func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login проверяет учетные данные и выдает токен
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, result)
}
