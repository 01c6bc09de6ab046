package service

import (
	"context"
	"errors"
	"lls_backend/internal/config"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/internal/util"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const adminDisplayName = "Administrator"

type LoginResult struct {
	Token  string         `json:"token"`
	Role   model.UserRole `json:"role"`
	UserID uint           `json:"user_id"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
}

type AuthService struct {
	StaffRepo   *repository.StaffRepository
	StudentRepo *repository.StudentRepository
	Cfg         *config.Config
}

func NewAuthService(staffRepo *repository.StaffRepository, studentRepo *repository.StudentRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		StaffRepo:   staffRepo,
		StudentRepo: studentRepo,
		Cfg:         cfg,
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hash *string, password string) error {
	if hash == nil || *hash == "" {
		return util.ErrLoginUnavailable
	}
	if bcrypt.CompareHashAndPassword([]byte(*hash), []byte(password)) != nil {
		return util.ErrInvalidCredentials
	}
	return nil
}

// Login 依次匹配配置中的管理员、教职工、学生账号
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)

	if s.Cfg.Admin.Email != "" && strings.EqualFold(email, s.Cfg.Admin.Email) {
		if err := checkPassword(&s.Cfg.Admin.PasswordHash, password); err != nil {
			return nil, err
		}
		return s.issue(0, model.RoleAdmin, adminDisplayName, s.Cfg.Admin.Email)
	}

	staff, err := s.StaffRepo.FindByEmail(ctx, email)
	if err == nil {
		if err := checkPassword(staff.PasswordHash, password); err != nil {
			return nil, err
		}
		return s.issue(staff.StaffID, model.RoleStaff, staff.Name, staff.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	student, err := s.StudentRepo.FindByEmail(ctx, email)
	if err == nil {
		if err := checkPassword(student.PasswordHash, password); err != nil {
			return nil, err
		}
		return s.issue(student.StudentID, model.RoleStudent, student.Name, student.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, util.ErrInvalidCredentials
}

func (s *AuthService) issue(userID uint, role model.UserRole, name, email string) (*LoginResult, error) {
	token, err := util.GenerateJWT(userID, role, name, email, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:  token,
		Role:   role,
		UserID: userID,
		Name:   name,
		Email:  email,
	}, nil
}
