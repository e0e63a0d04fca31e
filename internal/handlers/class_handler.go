package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/repository"
	"github.com/raqazhet/informatics/internal/services"
)

// ClassHandler обрабатывает операции над классами и их составом
type ClassHandler struct {
	svc     services.ClassService
	reports services.ReportService
}

// NewClassHandler создает новый обработчик классов
func NewClassHandler(svc services.ClassService, reports services.ReportService) *ClassHandler {
	return &ClassHandler{svc: svc, reports: reports}
}

// ListClassGroups возвращает классы с количеством учеников
func (h *ClassHandler) ListClassGroups(c *gin.Context) {
	rows, err := h.reports.ListClassGroups(parseListRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"class_groups": rows})
}

// CreateClassGroup создает класс; руководитель обязан иметь роль teacher
func (h *ClassHandler) CreateClassGroup(c *gin.Context) {
	var group models.ClassGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.CreateClassGroup(&group); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"class_group": group})
}

// GetClassGroup возвращает класс вместе с составом
func (h *ClassHandler) GetClassGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class group id"})
		return
	}
	group, err := h.svc.GetClassGroup(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"class_group": group})
}

type saveClassGroupReq struct {
	ClassGroup models.ClassGroup               `json:"class_group"`
	Students   []repository.ClassStudentInline `json:"students"`
}

// SaveClassGroup атомарно сохраняет класс вместе с изменениями состава
func (h *ClassHandler) SaveClassGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class group id"})
		return
	}
	var req saveClassGroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ClassGroup.ID = id
	if err := h.svc.SaveClassGroupWithStudents(&req.ClassGroup, req.Students); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"class_group": req.ClassGroup})
}

// DeleteClassGroup удаляет класс вместе со списком учеников
func (h *ClassHandler) DeleteClassGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class group id"})
		return
	}
	if err := h.svc.DeleteClassGroup(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type addStudentReq struct {
	StudentID uuid.UUID `json:"student_id"`
}

// AddStudent добавляет ученика в класс
func (h *ClassHandler) AddStudent(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class group id"})
		return
	}
	var req addStudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cs := &models.ClassStudent{ClassGroupID: groupID, StudentID: req.StudentID}
	if err := h.svc.AddStudent(cs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"class_student": cs})
}

// RemoveStudent удаляет ученика из класса
func (h *ClassHandler) RemoveStudent(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class group id"})
		return
	}
	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}
	if err := h.svc.RemoveStudent(groupID, studentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListClassStudents возвращает строки состава классов по списочному запросу
func (h *ClassHandler) ListClassStudents(c *gin.Context) {
	rows, err := h.svc.ListClassStudents(parseListRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"class_students": rows})
}
