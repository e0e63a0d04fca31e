package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/raqazhet/informatics/internal/admin"
	"github.com/raqazhet/informatics/internal/models"
	"github.com/raqazhet/informatics/internal/repository"
)

func TestLoginAndValidateToken(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db, admin.BuildRegistry())
	svc := NewAuthService(userRepo, "test-secret", time.Hour)

	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	adminUser := &models.User{
		ID:           uuid.New(),
		Username:     "admin",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	}
	mustCreate(t, db, adminUser)

	result, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.Role != "admin" {
		t.Errorf("expected role admin, got %q", result.Role)
	}
	if result.User.LastLogin == nil {
		t.Error("expected last_login to be stamped")
	}

	user, err := svc.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if user.ID != adminUser.ID {
		t.Errorf("token resolved to wrong user: %v", user.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db, admin.BuildRegistry())
	svc := NewAuthService(userRepo, "test-secret", time.Hour)

	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	mustCreate(t, db, &models.User{
		ID:           uuid.New(),
		Username:     "admin",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	})

	if _, err := svc.Login("admin", "wrong"); err == nil {
		t.Error("expected error for wrong password")
	}
	if _, err := svc.Login("ghost", "admin123"); err == nil {
		t.Error("expected error for unknown user")
	}
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db, admin.BuildRegistry())
	svc := NewAuthService(userRepo, "test-secret", time.Hour)
	other := NewAuthService(userRepo, "other-secret", time.Hour)

	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	mustCreate(t, db, &models.User{
		ID:           uuid.New(),
		Username:     "admin",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	})

	result, err := other.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.ValidateToken(result.Token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}
