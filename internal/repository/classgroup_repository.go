package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/apperr"
	"github.com/raqazhet/informatics/internal/models"
)

// ClassStudentInline описывает изменение состава класса при
// встроенном редактировании
type ClassStudentInline struct {
	ClassStudent models.ClassStudent `json:"class_student"`
	Delete       bool                `json:"delete"`
}

// ClassGroupRepository интерфейс для работы с классами и их составом
type ClassGroupRepository interface {
	Create(group *models.ClassGroup) error
	GetByID(id uuid.UUID) (*models.ClassGroup, error)
	Update(group *models.ClassGroup) error
	Delete(id uuid.UUID) error

	AddStudent(cs *models.ClassStudent) error
	RemoveStudent(groupID, studentID uuid.UUID) error
	ListStudents(groupID uuid.UUID) ([]models.ClassStudent, error)
	ListClassStudents(req admin.ListRequest) ([]models.ClassStudent, error)

	// SaveWithStudents атомарно сохраняет класс вместе с изменениями состава
	SaveWithStudents(group *models.ClassGroup, inlines []ClassStudentInline) error
}

// classGroupRepository реализация репозитория классов
type classGroupRepository struct {
	db   *gorm.DB
	spec admin.EntitySpec
}

// NewClassGroupRepository создает новый репозиторий классов
func NewClassGroupRepository(db *gorm.DB, registry admin.Registry) ClassGroupRepository {
	return &classGroupRepository{db: db, spec: registry["class_student"]}
}

// Create создает класс; руководитель обязан иметь роль teacher
func (r *classGroupRepository) Create(group *models.ClassGroup) error {
	if err := checkModel(group); err != nil {
		return err
	}
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureRole(tx, group.TeacherID, models.RoleTeacher, "teacher_id"); err != nil {
			return err
		}
		return translateError(tx.Create(group).Error, "class_group", group.ID.String())
	})
}

// GetByID получает класс вместе с составом
func (r *classGroupRepository) GetByID(id uuid.UUID) (*models.ClassGroup, error) {
	var group models.ClassGroup
	err := r.db.Preload("Teacher").Preload("Students").Preload("Students.Student").
		First(&group, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, "class_group", id.String())
	}
	return &group, nil
}

// Update обновляет класс
func (r *classGroupRepository) Update(group *models.ClassGroup) error {
	if err := checkModel(group); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ClassGroup
		if err := tx.First(&existing, "id = ?", group.ID).Error; err != nil {
			return translateError(err, "class_group", group.ID.String())
		}
		if group.TeacherID != existing.TeacherID {
			if err := ensureRole(tx, group.TeacherID, models.RoleTeacher, "teacher_id"); err != nil {
				return err
			}
		}
		return translateError(tx.Save(group).Error, "class_group", group.ID.String())
	})
}

// Delete удаляет класс вместе со списком его учеников
func (r *classGroupRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var group models.ClassGroup
		if err := tx.First(&group, "id = ?", id).Error; err != nil {
			return translateError(err, "class_group", id.String())
		}
		return translateError(deleteClassGroupCascade(tx, id), "class_group", id.String())
	})
}

// AddStudent добавляет ученика в класс; пара (класс, ученик) уникальна
func (r *classGroupRepository) AddStudent(cs *models.ClassStudent) error {
	if err := checkModel(cs); err != nil {
		return err
	}
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.ClassGroup{}, cs.ClassGroupID, "class_students.class_group_id"); err != nil {
			return err
		}
		if err := ensureRole(tx, cs.StudentID, models.RoleStudent, "student_id"); err != nil {
			return err
		}
		return translateError(tx.Create(cs).Error, "class_student", cs.ID.String())
	})
}

// RemoveStudent удаляет ученика из класса
func (r *classGroupRepository) RemoveStudent(groupID, studentID uuid.UUID) error {
	res := r.db.Where("class_group_id = ? AND student_id = ?", groupID, studentID).
		Delete(&models.ClassStudent{})
	if res.Error != nil {
		return translateError(res.Error, "class_student", studentID.String())
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "class_student", studentID.String())
	}
	return nil
}

// ListStudents возвращает состав класса
func (r *classGroupRepository) ListStudents(groupID uuid.UUID) ([]models.ClassStudent, error) {
	var students []models.ClassStudent
	err := r.db.Preload("Student").Where("class_group_id = ?", groupID).Find(&students).Error
	return students, err
}

// ListClassStudents возвращает строки состава классов по списочному запросу
func (r *classGroupRepository) ListClassStudents(req admin.ListRequest) ([]models.ClassStudent, error) {
	q := r.db.Model(&models.ClassStudent{}).Select("class_students.*")
	q, err := admin.ApplyListQuery(q, r.spec, req)
	if err != nil {
		return nil, err
	}
	var rows []models.ClassStudent
	if err := q.Preload("Student").Preload("ClassGroup").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SaveWithStudents сохраняет класс и изменения его состава одной
// транзакцией: при любой ошибке не сохраняется ничего
func (r *classGroupRepository) SaveWithStudents(group *models.ClassGroup, inlines []ClassStudentInline) error {
	if err := checkModel(group); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if group.ID == uuid.Nil {
			group.ID = uuid.New()
		} else {
			var existing models.ClassGroup
			if err := tx.First(&existing, "id = ?", group.ID).Error; err != nil {
				return translateError(err, "class_group", group.ID.String())
			}
		}
		if err := ensureRole(tx, group.TeacherID, models.RoleTeacher, "teacher_id"); err != nil {
			return err
		}
		if err := tx.Save(group).Error; err != nil {
			return translateError(err, "class_group", group.ID.String())
		}

		for i := range inlines {
			inline := &inlines[i]
			if inline.Delete {
				// Удалять можно только строку состава этого класса
				res := tx.Where("id = ? AND class_group_id = ?", inline.ClassStudent.ID, group.ID).
					Delete(&models.ClassStudent{})
				if res.Error != nil {
					return translateError(res.Error, "class_student", inline.ClassStudent.ID.String())
				}
				if res.RowsAffected == 0 {
					return apperr.NotFound("class_student", inline.ClassStudent.ID.String())
				}
				continue
			}
			inline.ClassStudent.ClassGroupID = group.ID
			if err := checkModel(&inline.ClassStudent); err != nil {
				return err
			}
			if err := ensureRole(tx, inline.ClassStudent.StudentID, models.RoleStudent, "student_id"); err != nil {
				return err
			}
			if inline.ClassStudent.ID == uuid.Nil {
				inline.ClassStudent.ID = uuid.New()
				if err := tx.Create(&inline.ClassStudent).Error; err != nil {
					return translateError(err, "class_student", inline.ClassStudent.ID.String())
				}
				continue
			}
			if err := tx.Save(&inline.ClassStudent).Error; err != nil {
				return translateError(err, "class_student", inline.ClassStudent.ID.String())
			}
		}
		return nil
	})
}
