package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/repository"
	"github.com/raqazhet/informatics/internal/services"
)

// CourseHandler обрабатывает операции над курсами, уроками и заданиями
type CourseHandler struct {
	svc     services.CourseService
	reports services.ReportService
}

// NewCourseHandler создает новый обработчик учебного содержимого
func NewCourseHandler(svc services.CourseService, reports services.ReportService) *CourseHandler {
	return &CourseHandler{svc: svc, reports: reports}
}

// ListCourses возвращает курсы с количеством уроков
func (h *CourseHandler) ListCourses(c *gin.Context) {
	rows, err := h.reports.ListCourses(parseListRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": rows})
}

// CreateCourse создает курс
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.CreateCourse(&course); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"course": course})
}

// GetCourse возвращает курс вместе с уроками
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}
	course, err := h.svc.GetCourse(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

type saveCourseReq struct {
	Course  models.Course             `json:"course"`
	Lessons []repository.LessonInline `json:"lessons"`
}

// SaveCourse атомарно сохраняет курс вместе с изменениями его уроков:
// либо сохраняется все, либо ничего
func (h *CourseHandler) SaveCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}
	var req saveCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Course.ID = id
	if err := h.svc.SaveCourseWithLessons(&req.Course, req.Lessons); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": req.Course})
}

// DeleteCourse удаляет курс вместе с уроками, заданиями и решениями
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}
	if err := h.svc.DeleteCourse(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListLessons возвращает уроки с количеством заданий
func (h *CourseHandler) ListLessons(c *gin.Context) {
	rows, err := h.reports.ListLessons(parseListRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lessons": rows})
}

// CreateLesson создает урок
func (h *CourseHandler) CreateLesson(c *gin.Context) {
	var lesson models.Lesson
	if err := c.ShouldBindJSON(&lesson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.CreateLesson(&lesson); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lesson": lesson})
}

// GetLesson возвращает урок вместе с заданиями
func (h *CourseHandler) GetLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	lesson, err := h.svc.GetLesson(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

type saveLessonReq struct {
	Lesson      models.Lesson                 `json:"lesson"`
	Assignments []repository.AssignmentInline `json:"assignments"`
}

// SaveLesson атомарно сохраняет урок вместе с изменениями его заданий
func (h *CourseHandler) SaveLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	var req saveLessonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Lesson.ID = id
	if err := h.svc.SaveLessonWithAssignments(&req.Lesson, req.Assignments); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lesson": req.Lesson})
}

// DeleteLesson удаляет урок вместе с заданиями и их решениями
func (h *CourseHandler) DeleteLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}
	if err := h.svc.DeleteLesson(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListAssignments возвращает задания с количеством решений и средним баллом
func (h *CourseHandler) ListAssignments(c *gin.Context) {
	rows, err := h.reports.ListAssignments(parseListRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": rows})
}

// CreateAssignment создает задание
func (h *CourseHandler) CreateAssignment(c *gin.Context) {
	var assignment models.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.CreateAssignment(&assignment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assignment": assignment})
}

// GetAssignment возвращает задание по ID
func (h *CourseHandler) GetAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment id"})
		return
	}
	assignment, err := h.svc.GetAssignment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}

// UpdateAssignment обновляет задание
func (h *CourseHandler) UpdateAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment id"})
		return
	}
	var assignment models.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	assignment.ID = id
	if err := h.svc.UpdateAssignment(&assignment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}

// DeleteAssignment удаляет задание вместе с решениями
func (h *CourseHandler) DeleteAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment id"})
		return
	}
	if err := h.svc.DeleteAssignment(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
