package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/repository"
	"github.com/raqazhet/informatics/internal/services"
)

// SchoolHandler обрабатывает операции над школами
type SchoolHandler struct {
	schools repository.SchoolRepository
	reports services.ReportService
}

// NewSchoolHandler создает новый обработчик школ
func NewSchoolHandler(schools repository.SchoolRepository, reports services.ReportService) *SchoolHandler {
	return &SchoolHandler{schools: schools, reports: reports}
}

// ListSchools возвращает школы с количеством преподавателей и учеников
func (h *SchoolHandler) ListSchools(c *gin.Context) {
	rows, err := h.reports.ListSchools(parseListRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schools": rows})
}

// CreateSchool создает школу
func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	var school models.School
	if err := c.ShouldBindJSON(&school); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.schools.Create(&school); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"school": school})
}

// GetSchool возвращает школу по ID
func (h *SchoolHandler) GetSchool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid school id"})
		return
	}
	school, err := h.schools.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"school": school})
}

// UpdateSchool обновляет школу
func (h *SchoolHandler) UpdateSchool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid school id"})
		return
	}
	var school models.School
	if err := c.ShouldBindJSON(&school); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	school.ID = id
	if err := h.schools.Update(&school); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"school": school})
}

// DeleteSchool удаляет школу; профили теряют ссылку на нее, но сохраняются
func (h *SchoolHandler) DeleteSchool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid school id"})
		return
	}
	if err := h.schools.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
