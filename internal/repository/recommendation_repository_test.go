package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
)

func TestRecommendationStudentRoleRequired(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecommendationRepository(db, admin.BuildRegistry())
	teacher := newTestUser(t, db, "teacher1", models.RoleTeacher)

	err := repo.Create(&models.Recommendation{
		ID:        uuid.New(),
		StudentID: teacher.ID,
		Text:      "Повторить циклы",
		Source:    models.SourceAI,
	})
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "student_id" {
		t.Errorf("expected error on field student_id, got %q", verr.Field)
	}
}

func TestRecommendationGeneratedAtImmutable(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecommendationRepository(db, admin.BuildRegistry())
	student := newTestUser(t, db, "student1", models.RoleStudent)

	rec := &models.Recommendation{
		ID:        uuid.New(),
		StudentID: student.ID,
		Text:      "Повторить циклы",
		Source:    models.SourceAI,
	}
	if err := repo.Create(rec); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.GeneratedAt.IsZero() {
		t.Fatal("expected generated_at to be stamped on create")
	}
	stamped := rec.GeneratedAt

	rec.Text = "Повторить циклы и условия"
	rec.Source = models.SourceTeacher
	rec.GeneratedAt = time.Now().Add(24 * time.Hour)
	if err := repo.Update(rec); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	reloaded, err := repo.GetByID(rec.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.GeneratedAt.Equal(stamped) {
		t.Errorf("generated_at changed on update: was %v, now %v", stamped, reloaded.GeneratedAt)
	}
	if reloaded.Text != "Повторить циклы и условия" {
		t.Errorf("text edit lost: %q", reloaded.Text)
	}
	if reloaded.Source != models.SourceTeacher {
		t.Errorf("source edit lost: %q", reloaded.Source)
	}
}

func TestRecommendationListBySource(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecommendationRepository(db, admin.BuildRegistry())
	student := newTestUser(t, db, "student1", models.RoleStudent)

	for i, src := range []models.RecommendationSource{models.SourceAI, models.SourceAI, models.SourceTeacher} {
		mustCreate(t, db, &models.Recommendation{
			ID:          uuid.New(),
			StudentID:   student.ID,
			Text:        "рекомендация",
			Source:      src,
			GeneratedAt: time.Now().Add(time.Duration(i) * time.Minute),
		})
	}

	got, err := repo.List(admin.ListRequest{Filters: map[string]string{"source": "ai"}})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 ai recommendations, got %d", len(got))
	}
}
