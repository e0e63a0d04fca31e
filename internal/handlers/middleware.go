package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/services"
)

// AuthMiddleware создает middleware для авторизации по JWT-токену
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		user, err := authService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
		c.Next()
	}
}

// AdminOnly пропускает только пользователей с ролью admin
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, _ := c.Get("user_role")
		if roleVal != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORSMiddleware разрешает запросы админ-консоли с другого origin
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// reservedParams — параметры списочного запроса, не являющиеся фильтрами
var reservedParams = map[string]bool{
	"search":   true,
	"order_by": true,
	"desc":     true,
	"limit":    true,
	"offset":   true,
}

// parseListRequest собирает списочный запрос из query-параметров;
// все параметры кроме зарезервированных трактуются как фильтры
func parseListRequest(c *gin.Context) admin.ListRequest {
	req := admin.ListRequest{
		Search:  c.Query("search"),
		OrderBy: c.Query("order_by"),
		Filters: map[string]string{},
	}
	req.Desc, _ = strconv.ParseBool(c.Query("desc"))
	req.Limit, _ = strconv.Atoi(c.Query("limit"))
	req.Offset, _ = strconv.Atoi(c.Query("offset"))

	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		req.Filters[key] = values[0]
	}
	return req
}

// respondError переводит доменные ошибки в HTTP-статусы
func respondError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	var cerr *apperr.ConstraintViolation
	var nerr *apperr.NotFoundError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.As(err, &cerr):
		c.JSON(http.StatusConflict, gin.H{"error": cerr.Error(), "constraint": cerr.Constraint})
	case errors.As(err, &nerr):
		c.JSON(http.StatusNotFound, gin.H{"error": nerr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
