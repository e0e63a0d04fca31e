package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/services"
)

// UserHandler обрабатывает операции над пользователями и профилями
type UserHandler struct {
	svc services.UserService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type createUserReq struct {
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	Password string          `json:"password"`
}

// CreateUser создает пользователя
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := &models.User{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
	}
	if err := h.svc.CreateUser(user, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetUser возвращает пользователя вместе с профилями
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	user, err := h.svc.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser обновляет пользователя
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	user, err := h.svc.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user.ID = id
	if err := h.svc.UpdateUser(user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser удаляет пользователя со всеми зависимыми записями
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if err := h.svc.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListUsers возвращает пользователей по списочному запросу
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(parseListRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateStudentProfile создает профиль ученика
func (h *UserHandler) CreateStudentProfile(c *gin.Context) {
	var profile models.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.CreateStudentProfile(&profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// UpdateStudentProfile обновляет профиль ученика
func (h *UserHandler) UpdateStudentProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var profile models.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile.UserID = userID
	if err := h.svc.UpdateStudentProfile(&profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// CreateTeacherProfile создает профиль преподавателя
func (h *UserHandler) CreateTeacherProfile(c *gin.Context) {
	var profile models.TeacherProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.CreateTeacherProfile(&profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// UpdateTeacherProfile обновляет профиль преподавателя
func (h *UserHandler) UpdateTeacherProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var profile models.TeacherProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile.UserID = userID
	if err := h.svc.UpdateTeacherProfile(&profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
