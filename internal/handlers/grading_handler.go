package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/services"
)

// GradingHandler обрабатывает операции над решениями и рекомендациями
type GradingHandler struct {
	svc services.GradingService
}

// NewGradingHandler создает новый обработчик проверки
func NewGradingHandler(svc services.GradingService) *GradingHandler {
	return &GradingHandler{svc: svc}
}

// ListSubmissions возвращает решения по списочному запросу
func (h *GradingHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.svc.ListSubmissions(parseListRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// CreateSubmission создает решение; автор обязан иметь роль student
func (h *GradingHandler) CreateSubmission(c *gin.Context) {
	var submission models.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.CreateSubmission(&submission); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"submission": submission})
}

// GetSubmission возвращает решение по ID
func (h *GradingHandler) GetSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}
	submission, err := h.svc.GetSubmission(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submission": submission})
}

// UpdateSubmission обновляет решение
func (h *GradingHandler) UpdateSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}
	submission, err := h.svc.GetSubmission(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := c.ShouldBindJSON(submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submission.ID = id
	if err := h.svc.UpdateSubmission(submission); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submission": submission})
}

// DeleteSubmission удаляет решение
func (h *GradingHandler) DeleteSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}
	if err := h.svc.DeleteSubmission(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UploadSubmissionFile сохраняет файл решения и записывает ссылку на него
func (h *GradingHandler) UploadSubmissionFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	path, err := h.svc.AttachFile(id, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"file_path": path})
}

type gradeReq struct {
	Score       float64 `json:"score"`
	Feedback    string  `json:"feedback"`
	CheckedByAI bool    `json:"checked_by_ai"`
}

// GradeSubmission выставляет оценку и переводит решение в статус checked
func (h *GradingHandler) GradeSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}
	var req gradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.GradeSubmission(id, req.Score, req.Feedback, req.CheckedByAI); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListRecommendations возвращает рекомендации с превью текста
func (h *GradingHandler) ListRecommendations(c *gin.Context) {
	recs, err := h.svc.ListRecommendations(parseListRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}
	type recRow struct {
		models.Recommendation
		TextPreview string `json:"text_preview"`
	}
	rows := make([]recRow, 0, len(recs))
	for i := range recs {
		rows = append(rows, recRow{Recommendation: recs[i], TextPreview: recs[i].TextPreview()})
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": rows})
}

// CreateRecommendation создает рекомендацию для ученика
func (h *GradingHandler) CreateRecommendation(c *gin.Context) {
	var rec models.Recommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.CreateRecommendation(&rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recommendation": rec})
}

// GetRecommendation возвращает рекомендацию по ID
func (h *GradingHandler) GetRecommendation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recommendation id"})
		return
	}
	rec, err := h.svc.GetRecommendation(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendation": rec})
}

// UpdateRecommendation обновляет рекомендацию; generated_at не меняется
func (h *GradingHandler) UpdateRecommendation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recommendation id"})
		return
	}
	var rec models.Recommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec.ID = id
	if err := h.svc.UpdateRecommendation(&rec); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendation": rec})
}

// DeleteRecommendation удаляет рекомендацию
func (h *GradingHandler) DeleteRecommendation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recommendation id"})
		return
	}
	if err := h.svc.DeleteRecommendation(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
