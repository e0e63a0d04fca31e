package repository

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
)

func TestUserCreateValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, admin.BuildRegistry())

	tests := []struct {
		name  string
		user  models.User
		field string
	}{
		{
			name:  "missing username",
			user:  models.User{ID: uuid.New(), Role: models.RoleStudent},
			field: "Username",
		},
		{
			name:  "missing role",
			user:  models.User{ID: uuid.New(), Username: "nurlan"},
			field: "Role",
		},
		{
			name:  "unknown role",
			user:  models.User{ID: uuid.New(), Username: "nurlan", Role: "director"},
			field: "Role",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(&tt.user)
			var verr *apperr.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected error on field %s, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestUserUniqueUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, admin.BuildRegistry())
	newTestUser(t, db, "aidos", models.RoleStudent)

	err := repo.Create(&models.User{ID: uuid.New(), Username: "aidos", Role: models.RoleTeacher})
	var cerr *apperr.ConstraintViolation
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConstraintViolation, got %v", err)
	}
	if cerr.Constraint != "users.username" {
		t.Errorf("expected constraint users.username, got %q", cerr.Constraint)
	}
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, admin.BuildRegistry())

	teacher := newTestUser(t, db, "teacher1", models.RoleTeacher)
	student := newTestUser(t, db, "student1", models.RoleStudent)
	mustCreate(t, db, &models.TeacherProfile{UserID: teacher.ID})
	mustCreate(t, db, &models.StudentProfile{UserID: student.ID, Grade: 7})

	course := newTestCourse(t, db, "Алгоритмы", 7, teacher.ID)
	lesson := newTestLesson(t, db, course.ID, "Введение", 1)
	assignment := newTestAssignment(t, db, lesson.ID, "Тест")
	mustCreate(t, db, &models.Submission{
		ID:           uuid.New(),
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Status:       models.SubmissionPending,
	})
	mustCreate(t, db, &models.Recommendation{
		ID:        uuid.New(),
		StudentID: student.ID,
		Text:      "Повторить циклы",
		Source:    models.SourceAI,
	})
	group := &models.ClassGroup{ID: uuid.New(), Name: "7А", TeacherID: teacher.ID}
	mustCreate(t, db, group)
	mustCreate(t, db, &models.ClassStudent{ID: uuid.New(), ClassGroupID: group.ID, StudentID: student.ID})

	// Удаление ученика: его решения, рекомендации и членство исчезают,
	// курс преподавателя остается
	if err := repo.Delete(student.ID); err != nil {
		t.Fatalf("delete student failed: %v", err)
	}
	if n := countRows(t, db, &models.Submission{}); n != 0 {
		t.Errorf("expected 0 submissions, got %d", n)
	}
	if n := countRows(t, db, &models.Recommendation{}); n != 0 {
		t.Errorf("expected 0 recommendations, got %d", n)
	}
	if n := countRows(t, db, &models.ClassStudent{}); n != 0 {
		t.Errorf("expected 0 class memberships, got %d", n)
	}
	if n := countRows(t, db, &models.StudentProfile{}); n != 0 {
		t.Errorf("expected student profile removed, got %d", n)
	}
	if n := countRows(t, db, &models.Course{}); n != 1 {
		t.Errorf("expected course to survive student deletion, got %d", n)
	}

	// Удаление преподавателя: его курсы с уроками и его классы исчезают
	if err := repo.Delete(teacher.ID); err != nil {
		t.Fatalf("delete teacher failed: %v", err)
	}
	if n := countRows(t, db, &models.Course{}); n != 0 {
		t.Errorf("expected 0 courses, got %d", n)
	}
	if n := countRows(t, db, &models.Lesson{}); n != 0 {
		t.Errorf("expected 0 lessons, got %d", n)
	}
	if n := countRows(t, db, &models.Assignment{}); n != 0 {
		t.Errorf("expected 0 assignments, got %d", n)
	}
	if n := countRows(t, db, &models.ClassGroup{}); n != 0 {
		t.Errorf("expected 0 class groups, got %d", n)
	}
	if n := countRows(t, db, &models.User{}); n != 0 {
		t.Errorf("expected 0 users, got %d", n)
	}
}

func TestUserListSearchAndFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db, admin.BuildRegistry())

	u1 := &models.User{ID: uuid.New(), Username: "aikerim", FullName: "Aikerim Saparova", Role: models.RoleStudent}
	u2 := &models.User{ID: uuid.New(), Username: "saparov", FullName: "Yermek Saparov", Role: models.RoleTeacher}
	u3 := &models.User{ID: uuid.New(), Username: "dias", FullName: "Dias Omarov", Role: models.RoleStudent}
	for _, u := range []*models.User{u1, u2, u3} {
		mustCreate(t, db, u)
	}

	got, err := repo.List(admin.ListRequest{Search: "Saparov"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users matching search, got %d", len(got))
	}

	got, err = repo.List(admin.ListRequest{
		Search:  "Saparov",
		Filters: map[string]string{"role": "teacher"},
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].Username != "saparov" {
		t.Fatalf("expected only saparov, got %v", got)
	}

	_, err = repo.List(admin.ListRequest{Filters: map[string]string{"password_hash": "x"}})
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown filter, got %v", err)
	}
}
