package repository

import (
	"context"
	"lls_backend/internal/model"

	"gorm.io/gorm"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) Create(ctx context.Context, staff *model.Staff) error {
	return r.DB.WithContext(ctx).Create(staff).Error
}

func (r *StaffRepository) FindByID(ctx context.Context, id uint) (*model.Staff, error) {
	var staff model.Staff
	if err := r.DB.WithContext(ctx).First(&staff, "staff_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*model.Staff, error) {
	var staff model.Staff
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepository) List(ctx context.Context) ([]model.Staff, error) {
	staff := make([]model.Staff, 0)
	err := r.DB.WithContext(ctx).Order("staff_id asc").Find(&staff).Error
	return staff, err
}

// Update 只更新 updates 中给出的列
func (r *StaffRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&model.Staff{}).
		Where("staff_id = ?", id).
		Updates(updates).Error
}

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.DB.WithContext(ctx).Create(student).Error
}

func (r *StudentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.DB.WithContext(ctx).First(&student, "student_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	var student model.Student
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Student{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *StudentRepository) listQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Table("student s").
		Select("s.*, p.program_name, c.course_name").
		Joins("LEFT JOIN program p ON p.program_id = s.program_id").
		Joins("LEFT JOIN course c ON c.course_id = s.course_id")
}

// List 可按专业或课程过滤
func (r *StudentRepository) List(ctx context.Context, programID, courseID *uint) ([]model.StudentListRow, error) {
	rows := make([]model.StudentListRow, 0)
	q := r.listQuery(ctx)
	if programID != nil {
		q = q.Where("s.program_id = ?", *programID)
	}
	if courseID != nil {
		q = q.Where("s.course_id = ?", *courseID)
	}
	err := q.Order("s.student_id asc").Scan(&rows).Error
	return rows, err
}

func (r *StudentRepository) ListByCourses(ctx context.Context, courseIDs []uint) ([]model.StudentListRow, error) {
	rows := make([]model.StudentListRow, 0)
	if len(courseIDs) == 0 {
		return rows, nil
	}
	err := r.listQuery(ctx).
		Where("s.course_id IN ?", courseIDs).
		Order("s.student_id asc").
		Scan(&rows).Error
	return rows, err
}
