package repository

import (
	"context"
	"lls_backend/internal/model"

	"gorm.io/gorm"
)

type AcademicRepository struct {
	DB *gorm.DB
}

func NewAcademicRepository(db *gorm.DB) *AcademicRepository {
	return &AcademicRepository{DB: db}
}

func (r *AcademicRepository) CreateAcademicYear(ctx context.Context, year *model.AcademicYear) error {
	return r.DB.WithContext(ctx).Create(year).Error
}

func (r *AcademicRepository) ListAcademicYears(ctx context.Context) ([]model.AcademicYear, error) {
	years := make([]model.AcademicYear, 0)
	err := r.DB.WithContext(ctx).Order("start_date desc").Find(&years).Error
	return years, err
}

func (r *AcademicRepository) CreateProgram(ctx context.Context, program *model.Program) error {
	return r.DB.WithContext(ctx).Create(program).Error
}

func (r *AcademicRepository) ListPrograms(ctx context.Context, academicYearID *uint) ([]model.ProgramDetail, error) {
	rows := make([]model.ProgramDetail, 0)
	q := r.DB.WithContext(ctx).Table("program p").
		Select("p.*, y.year AS academic_year_name").
		Joins("LEFT JOIN academic_year y ON y.academic_year_id = p.academic_year_id")
	if academicYearID != nil {
		q = q.Where("p.academic_year_id = ?", *academicYearID)
	}
	err := q.Order("p.program_id asc").Scan(&rows).Error
	return rows, err
}

// CreateCourse 创建课程并关联到指定专业，关联学期默认为 1
func (r *AcademicRepository) CreateCourse(ctx context.Context, course *model.Course, programIDs []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		if len(programIDs) == 0 {
			return nil
		}

		links := make([]model.ProgramCourse, 0, len(programIDs))
		for _, pid := range programIDs {
			links = append(links, model.ProgramCourse{
				ProgramID: pid,
				CourseID:  course.CourseID,
				Semester:  1,
			})
		}
		return tx.Create(&links).Error
	})
}

func (r *AcademicRepository) FindCourseByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.DB.WithContext(ctx).First(&course, "course_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *AcademicRepository) ListCourses(ctx context.Context) ([]model.CourseDetail, error) {
	rows := make([]model.CourseDetail, 0)
	err := r.DB.WithContext(ctx).Table("course c").
		Select("c.*, s.name AS teacher_name").
		Joins("LEFT JOIN staff s ON s.staff_id = c.staff_id").
		Order("c.course_id asc").
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return rows, err
	}

	type link struct {
		CourseID uint
		model.LinkedProgram
	}
	var links []link
	err = r.DB.WithContext(ctx).Table("program_course pc").
		Select("pc.course_id, p.program_id, p.program_name, p.semester").
		Joins("JOIN program p ON p.program_id = pc.program_id").
		Order("pc.program_course_id asc").
		Scan(&links).Error
	if err != nil {
		return nil, err
	}

	byCourse := make(map[uint][]model.LinkedProgram)
	for _, l := range links {
		byCourse[l.CourseID] = append(byCourse[l.CourseID], l.LinkedProgram)
	}
	for i := range rows {
		rows[i].LinkedPrograms = byCourse[rows[i].CourseID]
		if rows[i].LinkedPrograms == nil {
			rows[i].LinkedPrograms = []model.LinkedProgram{}
		}
	}
	return rows, nil
}

func (r *AcademicRepository) AddCourseToProgram(ctx context.Context, link *model.ProgramCourse) error {
	return r.DB.WithContext(ctx).Create(link).Error
}

func (r *AcademicRepository) ListProgramCourses(ctx context.Context, programID uint) ([]model.ProgramCourseRow, error) {
	rows := make([]model.ProgramCourseRow, 0)
	err := r.DB.WithContext(ctx).Table("program_course pc").
		Select("pc.program_course_id, pc.course_id, c.course_name, pc.semester, c.credits").
		Joins("JOIN course c ON c.course_id = pc.course_id").
		Where("pc.program_id = ?", programID).
		Order("pc.semester asc, pc.program_course_id asc").
		Scan(&rows).Error
	return rows, err
}

// ListStaffCourses 教师所授课程及各课程材料数
func (r *AcademicRepository) ListStaffCourses(ctx context.Context, staffID uint) ([]model.CourseSummary, error) {
	rows := make([]model.CourseSummary, 0)
	err := r.DB.WithContext(ctx).Table("course c").
		Select("c.*, (SELECT COUNT(*) FROM study_material m WHERE m.course_id = c.course_id) AS material_count").
		Where("c.staff_id = ?", staffID).
		Order("c.course_id asc").
		Scan(&rows).Error
	return rows, err
}

func (r *AcademicRepository) StaffCourseIDs(ctx context.Context, staffID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.WithContext(ctx).Model(&model.Course{}).
		Where("staff_id = ?", staffID).
		Pluck("course_id", &ids).Error
	return ids, err
}
