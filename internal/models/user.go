package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole определяет роли пользователей
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// User представляет пользователя платформы
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:text;primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex:idx_users_username;not null" validate:"required"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Role         UserRole   `json:"role" gorm:"type:text;not null" validate:"required,oneof=student teacher admin"`
	PasswordHash string     `json:"-"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"date_joined"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Связи
	StudentProfile *StudentProfile `json:"student_profile,omitempty" gorm:"foreignKey:UserID"`
	TeacherProfile *TeacherProfile `json:"teacher_profile,omitempty" gorm:"foreignKey:UserID"`
}

// StudentProfile представляет профиль ученика (1:1 с User)
type StudentProfile struct {
	UserID        uuid.UUID  `json:"user_id" gorm:"type:text;primaryKey" validate:"required"`
	Grade         int        `json:"grade" gorm:"not null" validate:"required"`
	SchoolID      *uuid.UUID `json:"school_id" gorm:"type:text"`
	ParentContact string     `json:"parent_contact"`

	// Связи
	User   User    `json:"user" gorm:"foreignKey:UserID"`
	School *School `json:"school,omitempty" gorm:"foreignKey:SchoolID"`
}

// TeacherProfile представляет профиль преподавателя (1:1 с User)
type TeacherProfile struct {
	UserID          uuid.UUID  `json:"user_id" gorm:"type:text;primaryKey" validate:"required"`
	Subject         string     `json:"subject" gorm:"default:'Информатика'"`
	SchoolID        *uuid.UUID `json:"school_id" gorm:"type:text"`
	ExperienceYears int        `json:"experience_years"`

	// Связи
	User   User    `json:"user" gorm:"foreignKey:UserID"`
	School *School `json:"school,omitempty" gorm:"foreignKey:SchoolID"`
}
