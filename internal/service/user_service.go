package service

import (
	"context"
	"errors"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/internal/util"
	"slices"

	"gorm.io/gorm"
)

type StaffService struct {
	Repo *repository.StaffRepository
}

func NewStaffService(repo *repository.StaffRepository) *StaffService {
	return &StaffService{Repo: repo}
}

// StaffUpdate 为 nil 的字段保持不变
type StaffUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	Qualifications *string
	Status         *model.RecordStatus
	Password       *string
}

// CreateStaff password 为空时账号不可登录
func (s *StaffService) CreateStaff(ctx context.Context, staff *model.Staff, password string) error {
	if staff.Status == "" {
		staff.Status = model.StatusActive
	}
	if password != "" {
		hash, err := HashPassword(password)
		if err != nil {
			return err
		}
		staff.PasswordHash = &hash
	}
	return s.Repo.Create(ctx, staff)
}

func (s *StaffService) ListStaff(ctx context.Context) ([]model.StaffListRow, error) {
	staff, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]model.StaffListRow, len(staff))
	for i, st := range staff {
		rows[i] = model.StaffListRow{
			Staff:       st,
			HasPassword: st.PasswordHash != nil && *st.PasswordHash != "",
		}
	}
	return rows, nil
}

func (s *StaffService) UpdateStaff(ctx context.Context, id uint, in StaffUpdate) (*model.Staff, error) {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStaffNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Qualifications != nil {
		updates["qualifications"] = *in.Qualifications
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hash
	}

	if err := s.Repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(ctx, id)
}

type StudentService struct {
	Repo         *repository.StudentRepository
	AcademicRepo *repository.AcademicRepository
}

func NewStudentService(repo *repository.StudentRepository, academicRepo *repository.AcademicRepository) *StudentService {
	return &StudentService{Repo: repo, AcademicRepo: academicRepo}
}

// Register 学生自助注册，邮箱不可重复
func (s *StudentService) Register(ctx context.Context, student *model.Student, password string) error {
	exists, err := s.Repo.EmailExists(ctx, student.Email)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrEmailRegistered
	}
	return s.CreateStudent(ctx, student, password)
}

func (s *StudentService) CreateStudent(ctx context.Context, student *model.Student, password string) error {
	if password != "" {
		hash, err := HashPassword(password)
		if err != nil {
			return err
		}
		student.PasswordHash = &hash
	}
	return s.Repo.Create(ctx, student)
}

func (s *StudentService) ListStudents(ctx context.Context, programID, courseID *uint) ([]model.StudentListRow, error) {
	return s.Repo.List(ctx, programID, courseID)
}

func (s *StudentService) GetStudent(ctx context.Context, id uint) (*model.Student, error) {
	student, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// ListStaffStudents 教师所授课程的学生；指定 courseID 时该课程必须由此教师讲授
func (s *StudentService) ListStaffStudents(ctx context.Context, staffID uint, courseID *uint) ([]model.StudentListRow, error) {
	courseIDs, err := s.AcademicRepo.StaffCourseIDs(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []model.StudentListRow{}, nil
	}

	if courseID != nil {
		if !slices.Contains(courseIDs, *courseID) {
			return nil, util.ErrCourseNotAssigned
		}
		courseIDs = []uint{*courseID}
	}
	return s.Repo.ListByCourses(ctx, courseIDs)
}
