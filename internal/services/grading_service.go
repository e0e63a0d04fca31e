package services

import (
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/repository"
	"github.com/raqazhet/informatics/pkg/storage"
)

// GradingService интерфейс для работы с решениями и рекомендациями
type GradingService interface {
	CreateSubmission(submission *models.Submission) error
	GetSubmission(id uuid.UUID) (*models.Submission, error)
	UpdateSubmission(submission *models.Submission) error
	DeleteSubmission(id uuid.UUID) error
	ListSubmissions(req admin.ListRequest) ([]models.Submission, error)
	// AttachFile сохраняет файл решения и записывает ссылку на него
	AttachFile(submissionID uuid.UUID, file *multipart.FileHeader) (string, error)
	// GradeSubmission выставляет оценку и переводит решение в статус checked
	GradeSubmission(id uuid.UUID, score float64, feedback string, checkedByAI bool) error

	CreateRecommendation(rec *models.Recommendation) error
	GetRecommendation(id uuid.UUID) (*models.Recommendation, error)
	UpdateRecommendation(rec *models.Recommendation) error
	DeleteRecommendation(id uuid.UUID) error
	ListRecommendations(req admin.ListRequest) ([]models.Recommendation, error)
}

// gradingService реализация сервиса проверки
type gradingService struct {
	submissions     repository.SubmissionRepository
	recommendations repository.RecommendationRepository
	files           *storage.Storage
}

// NewGradingService создает новый сервис проверки
func NewGradingService(
	submissions repository.SubmissionRepository,
	recommendations repository.RecommendationRepository,
	files *storage.Storage,
) GradingService {
	return &gradingService{submissions: submissions, recommendations: recommendations, files: files}
}

func (s *gradingService) CreateSubmission(submission *models.Submission) error {
	return s.submissions.Create(submission)
}

func (s *gradingService) GetSubmission(id uuid.UUID) (*models.Submission, error) {
	return s.submissions.GetByID(id)
}

func (s *gradingService) UpdateSubmission(submission *models.Submission) error {
	return s.submissions.Update(submission)
}

func (s *gradingService) DeleteSubmission(id uuid.UUID) error {
	return s.submissions.Delete(id)
}

func (s *gradingService) ListSubmissions(req admin.ListRequest) ([]models.Submission, error) {
	return s.submissions.List(req)
}

// AttachFile сохраняет файл во внешнем хранилище и записывает в решение
// только непрозрачную ссылку; содержимое файла ядро не читает
func (s *gradingService) AttachFile(submissionID uuid.UUID, file *multipart.FileHeader) (string, error) {
	submission, err := s.submissions.GetByID(submissionID)
	if err != nil {
		return "", err
	}
	path, err := s.files.SaveFile(file, "submissions")
	if err != nil {
		return "", fmt.Errorf("failed to store submission file: %w", err)
	}
	submission.FilePath = path
	if err := s.submissions.Update(submission); err != nil {
		return "", err
	}
	return path, nil
}

// GradeSubmission выставляет оценку, отзыв и статус checked
func (s *gradingService) GradeSubmission(id uuid.UUID, score float64, feedback string, checkedByAI bool) error {
	submission, err := s.submissions.GetByID(id)
	if err != nil {
		return err
	}
	submission.Score = &score
	submission.Feedback = feedback
	submission.CheckedByAI = checkedByAI
	submission.Status = models.SubmissionChecked
	return s.submissions.Update(submission)
}

func (s *gradingService) CreateRecommendation(rec *models.Recommendation) error {
	return s.recommendations.Create(rec)
}

func (s *gradingService) GetRecommendation(id uuid.UUID) (*models.Recommendation, error) {
	return s.recommendations.GetByID(id)
}

func (s *gradingService) UpdateRecommendation(rec *models.Recommendation) error {
	return s.recommendations.Update(rec)
}

func (s *gradingService) DeleteRecommendation(id uuid.UUID) error {
	return s.recommendations.Delete(id)
}

func (s *gradingService) ListRecommendations(req admin.ListRequest) ([]models.Recommendation, error) {
	return s.recommendations.List(req)
}
