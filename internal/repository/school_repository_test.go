package repository

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
)

func TestSchoolCreateRequiresName(t *testing.T) {
	db := newTestDB(t)
	repo := NewSchoolRepository(db)

	err := repo.Create(&models.School{ID: uuid.New(), City: "Алматы"})
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "Name" {
		t.Errorf("expected error on field Name, got %q", verr.Field)
	}
}

func TestSchoolUniqueName(t *testing.T) {
	db := newTestDB(t)
	repo := NewSchoolRepository(db)

	if err := repo.Create(&models.School{ID: uuid.New(), Name: "Гимназия №1"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	err := repo.Create(&models.School{ID: uuid.New(), Name: "Гимназия №1"})
	var cerr *apperr.ConstraintViolation
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstraintViolation, got %v", err)
	}
	if cerr.Constraint != "schools.name" {
		t.Errorf("expected constraint schools.name, got %q", cerr.Constraint)
	}
}

func TestSchoolDeleteKeepsProfiles(t *testing.T) {
	db := newTestDB(t)
	repo := NewSchoolRepository(db)
	school := newTestSchool(t, db, "Лицей №2")

	student := newTestUser(t, db, "aruzhan", models.RoleStudent)
	teacher := newTestUser(t, db, "bolat", models.RoleTeacher)
	mustCreate(t, db, &models.StudentProfile{UserID: student.ID, Grade: 7, SchoolID: &school.ID})
	mustCreate(t, db, &models.TeacherProfile{UserID: teacher.ID, SchoolID: &school.ID})

	if err := repo.Delete(school.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var sp models.StudentProfile
	if err := db.First(&sp, "user_id = ?", student.ID).Error; err != nil {
		t.Fatalf("student profile should survive school deletion: %v", err)
	}
	if sp.SchoolID != nil {
		t.Errorf("expected student profile school_id to be cleared, got %v", sp.SchoolID)
	}

	var tp models.TeacherProfile
	if err := db.First(&tp, "user_id = ?", teacher.ID).Error; err != nil {
		t.Fatalf("teacher profile should survive school deletion: %v", err)
	}
	if tp.SchoolID != nil {
		t.Errorf("expected teacher profile school_id to be cleared, got %v", tp.SchoolID)
	}
}

func TestSchoolGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSchoolRepository(db)

	_, err := repo.GetByID(uuid.New())
	var nerr *apperr.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
