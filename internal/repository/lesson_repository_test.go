package repository

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
)

func TestLessonListByCourseOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewLessonRepository(db)

	teacher := newTestUser(t, db, "teacher1", models.RoleTeacher)
	course := newTestCourse(t, db, "Алгоритмы", 7, teacher.ID)
	other := newTestCourse(t, db, "Other", 8, teacher.ID)
	newTestLesson(t, db, course.ID, "Второй", 2)
	newTestLesson(t, db, course.ID, "Первый", 1)
	newTestLesson(t, db, other.ID, "Чужой", 1)

	lessons, err := repo.ListByCourse(course.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
	if lessons[0].Title != "Первый" || lessons[1].Title != "Второй" {
		t.Errorf("unexpected order: %q, %q", lessons[0].Title, lessons[1].Title)
	}
}

func TestSaveWithAssignmentsAtomic(t *testing.T) {
	db := newTestDB(t)
	repo := NewLessonRepository(db)

	teacher := newTestUser(t, db, "teacher1", models.RoleTeacher)
	course := newTestCourse(t, db, "Алгоритмы", 7, teacher.ID)
	lesson := newTestLesson(t, db, course.ID, "Введение", 1)

	lesson.Title = "Измененный"
	inlines := []AssignmentInline{
		{Assignment: models.Assignment{
			ID: uuid.New(), Title: "Тест", AssignmentType: models.AssignmentQuiz, MaxScore: 100,
		}},
		// Задание без максимального балла должно откатить всю операцию
		{Assignment: models.Assignment{
			ID: uuid.New(), Title: "Эссе", AssignmentType: models.AssignmentEssay,
		}},
	}
	err := repo.SaveWithAssignments(lesson, inlines)
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	reloaded, err := repo.GetByID(lesson.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Title != "Введение" {
		t.Errorf("lesson edit should have been rolled back, got %q", reloaded.Title)
	}
	if n := countRows(t, db, &models.Assignment{}); n != 0 {
		t.Errorf("expected no assignments after rollback, got %d", n)
	}
}

func TestSaveWithAssignmentsRejectsForeignAssignment(t *testing.T) {
	db := newTestDB(t)
	repo := NewLessonRepository(db)

	teacher := newTestUser(t, db, "teacher1", models.RoleTeacher)
	course := newTestCourse(t, db, "Алгоритмы", 7, teacher.ID)
	lesson := newTestLesson(t, db, course.ID, "Введение", 1)
	otherLesson := newTestLesson(t, db, course.ID, "Сортировки", 2)
	foreign := newTestAssignment(t, db, otherLesson.ID, "Чужое задание")

	inlines := []AssignmentInline{
		{Assignment: models.Assignment{ID: foreign.ID}, Delete: true},
	}
	err := repo.SaveWithAssignments(lesson, inlines)
	var nerr *apperr.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError for assignment of another lesson, got %v", err)
	}
	if n := countRows(t, db, &models.Assignment{}); n != 1 {
		t.Errorf("expected foreign assignment to survive, got %d", n)
	}
}

func TestAssignmentDeleteCascadesSubmissions(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssignmentRepository(db)

	teacher := newTestUser(t, db, "teacher1", models.RoleTeacher)
	student := newTestUser(t, db, "student1", models.RoleStudent)
	course := newTestCourse(t, db, "Алгоритмы", 7, teacher.ID)
	lesson := newTestLesson(t, db, course.ID, "Введение", 1)
	assignment := newTestAssignment(t, db, lesson.ID, "Тест")
	mustCreate(t, db, &models.Submission{
		ID: uuid.New(), AssignmentID: assignment.ID, StudentID: student.ID,
		Status: models.SubmissionPending,
	})

	if err := repo.Delete(assignment.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if n := countRows(t, db, &models.Submission{}); n != 0 {
		t.Errorf("expected submissions removed with assignment, got %d", n)
	}
	if n := countRows(t, db, &models.Lesson{}); n != 1 {
		t.Errorf("expected lesson to survive, got %d", n)
	}
}
