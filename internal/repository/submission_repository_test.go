package repository

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
)

func TestSubmissionAuthorMustBeStudent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db, admin.BuildRegistry())

	teacher := newTestUser(t, db, "teacher1", models.RoleTeacher)
	student := newTestUser(t, db, "student1", models.RoleStudent)
	course := newTestCourse(t, db, "Алгоритмы", 7, teacher.ID)
	lesson := newTestLesson(t, db, course.ID, "Введение", 1)
	assignment := newTestAssignment(t, db, lesson.ID, "Тест")

	err := repo.Create(&models.Submission{
		ID:           uuid.New(),
		AssignmentID: assignment.ID,
		StudentID:    teacher.ID,
		AnswerText:   "ответ",
	})
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for teacher author, got %v", err)
	}
	if verr.Field != "student_id" {
		t.Errorf("expected error on field student_id, got %q", verr.Field)
	}

	sub := &models.Submission{
		ID:           uuid.New(),
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		AnswerText:   "ответ",
	}
	if err := repo.Create(sub); err != nil {
		t.Fatalf("create with student author failed: %v", err)
	}
	if sub.Status != models.SubmissionPending {
		t.Errorf("expected default status pending, got %q", sub.Status)
	}
}

func TestSubmissionUnknownAssignment(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db, admin.BuildRegistry())
	student := newTestUser(t, db, "student1", models.RoleStudent)

	err := repo.Create(&models.Submission{
		ID:           uuid.New(),
		AssignmentID: uuid.New(),
		StudentID:    student.ID,
	})
	var cerr *apperr.ConstraintViolation
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstraintViolation, got %v", err)
	}
	if cerr.Constraint != "submissions.assignment_id" {
		t.Errorf("expected constraint submissions.assignment_id, got %q", cerr.Constraint)
	}
}

func TestSubmissionListByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db, admin.BuildRegistry())

	teacher := newTestUser(t, db, "teacher1", models.RoleTeacher)
	student := newTestUser(t, db, "student1", models.RoleStudent)
	course := newTestCourse(t, db, "Алгоритмы", 7, teacher.ID)
	lesson := newTestLesson(t, db, course.ID, "Введение", 1)
	assignment := newTestAssignment(t, db, lesson.ID, "Тест")

	score := 85.0
	mustCreate(t, db, &models.Submission{
		ID: uuid.New(), AssignmentID: assignment.ID, StudentID: student.ID,
		Status: models.SubmissionPending,
	})
	mustCreate(t, db, &models.Submission{
		ID: uuid.New(), AssignmentID: assignment.ID, StudentID: student.ID,
		Status: models.SubmissionChecked, Score: &score, CheckedByAI: true,
	})

	got, err := repo.List(admin.ListRequest{Filters: map[string]string{"status": "checked"}})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 checked submission, got %d", len(got))
	}
	if !got[0].CheckedByAI || got[0].Score == nil || *got[0].Score != 85.0 {
		t.Errorf("unexpected submission fields: %+v", got[0])
	}

	got, err = repo.List(admin.ListRequest{Filters: map[string]string{"checked_by_ai": "true"}})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 ai-checked submission, got %d", len(got))
	}
}
