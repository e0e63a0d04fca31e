package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raqazhet/informatics/internal/models"
)

// ProfileRepository интерфейс для работы с профилями учеников и преподавателей
type ProfileRepository interface {
	CreateStudentProfile(profile *models.StudentProfile) error
	GetStudentProfile(userID uuid.UUID) (*models.StudentProfile, error)
	UpdateStudentProfile(profile *models.StudentProfile) error
	DeleteStudentProfile(userID uuid.UUID) error
	ListStudentProfilesBySchool(schoolID uuid.UUID) ([]models.StudentProfile, error)

	CreateTeacherProfile(profile *models.TeacherProfile) error
	GetTeacherProfile(userID uuid.UUID) (*models.TeacherProfile, error)
	UpdateTeacherProfile(profile *models.TeacherProfile) error
	DeleteTeacherProfile(userID uuid.UUID) error
	ListTeacherProfilesBySchool(schoolID uuid.UUID) ([]models.TeacherProfile, error)
}

// profileRepository реализация репозитория профилей
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository создает новый репозиторий профилей
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// CreateStudentProfile создает профиль ученика; пользователь должен иметь роль student
func (r *profileRepository) CreateStudentProfile(profile *models.StudentProfile) error {
	if err := checkModel(profile); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureRole(tx, profile.UserID, models.RoleStudent, "user_id"); err != nil {
			return err
		}
		if profile.SchoolID != nil {
			if err := ensureExists(tx, &models.School{}, *profile.SchoolID, "student_profiles.school_id"); err != nil {
				return err
			}
		}
		return translateError(tx.Create(profile).Error, "student_profile", profile.UserID.String())
	})
}

// GetStudentProfile получает профиль ученика по ID пользователя
func (r *profileRepository) GetStudentProfile(userID uuid.UUID) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.Preload("User").Preload("School").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, translateError(err, "student_profile", userID.String())
	}
	return &profile, nil
}

// UpdateStudentProfile обновляет профиль ученика
func (r *profileRepository) UpdateStudentProfile(profile *models.StudentProfile) error {
	if err := checkModel(profile); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.StudentProfile
		if err := tx.First(&existing, "user_id = ?", profile.UserID).Error; err != nil {
			return translateError(err, "student_profile", profile.UserID.String())
		}
		if profile.SchoolID != nil {
			if err := ensureExists(tx, &models.School{}, *profile.SchoolID, "student_profiles.school_id"); err != nil {
				return err
			}
		}
		return translateError(tx.Save(profile).Error, "student_profile", profile.UserID.String())
	})
}

// DeleteStudentProfile удаляет профиль ученика
func (r *profileRepository) DeleteStudentProfile(userID uuid.UUID) error {
	res := r.db.Delete(&models.StudentProfile{}, "user_id = ?", userID)
	if res.Error != nil {
		return translateError(res.Error, "student_profile", userID.String())
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "student_profile", userID.String())
	}
	return nil
}

// ListStudentProfilesBySchool возвращает профили учеников школы
func (r *profileRepository) ListStudentProfilesBySchool(schoolID uuid.UUID) ([]models.StudentProfile, error) {
	var profiles []models.StudentProfile
	err := r.db.Preload("User").Where("school_id = ?", schoolID).Find(&profiles).Error
	return profiles, err
}

// CreateTeacherProfile создает профиль преподавателя; пользователь должен иметь роль teacher
func (r *profileRepository) CreateTeacherProfile(profile *models.TeacherProfile) error {
	if err := checkModel(profile); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureRole(tx, profile.UserID, models.RoleTeacher, "user_id"); err != nil {
			return err
		}
		if profile.SchoolID != nil {
			if err := ensureExists(tx, &models.School{}, *profile.SchoolID, "teacher_profiles.school_id"); err != nil {
				return err
			}
		}
		return translateError(tx.Create(profile).Error, "teacher_profile", profile.UserID.String())
	})
}

// GetTeacherProfile получает профиль преподавателя по ID пользователя
func (r *profileRepository) GetTeacherProfile(userID uuid.UUID) (*models.TeacherProfile, error) {
	var profile models.TeacherProfile
	err := r.db.Preload("User").Preload("School").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, translateError(err, "teacher_profile", userID.String())
	}
	return &profile, nil
}

// UpdateTeacherProfile обновляет профиль преподавателя
func (r *profileRepository) UpdateTeacherProfile(profile *models.TeacherProfile) error {
	if err := checkModel(profile); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.TeacherProfile
		if err := tx.First(&existing, "user_id = ?", profile.UserID).Error; err != nil {
			return translateError(err, "teacher_profile", profile.UserID.String())
		}
		if profile.SchoolID != nil {
			if err := ensureExists(tx, &models.School{}, *profile.SchoolID, "teacher_profiles.school_id"); err != nil {
				return err
			}
		}
		return translateError(tx.Save(profile).Error, "teacher_profile", profile.UserID.String())
	})
}

// DeleteTeacherProfile удаляет профиль преподавателя
func (r *profileRepository) DeleteTeacherProfile(userID uuid.UUID) error {
	res := r.db.Delete(&models.TeacherProfile{}, "user_id = ?", userID)
	if res.Error != nil {
		return translateError(res.Error, "teacher_profile", userID.String())
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "teacher_profile", userID.String())
	}
	return nil
}

// ListTeacherProfilesBySchool возвращает профили преподавателей школы
func (r *profileRepository) ListTeacherProfilesBySchool(schoolID uuid.UUID) ([]models.TeacherProfile, error) {
	var profiles []models.TeacherProfile
	err := r.db.Preload("User").Where("school_id = ?", schoolID).Find(&profiles).Error
	return profiles, err
}
