package service

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
)

// AcademicService 学年、专业、课程及其关联
type AcademicService struct {
	Repo *repository.AcademicRepository
}

func NewAcademicService(repo *repository.AcademicRepository) *AcademicService {
	return &AcademicService{Repo: repo}
}

func (s *AcademicService) CreateAcademicYear(ctx context.Context, year *model.AcademicYear) error {
	if year.Status == "" {
		year.Status = model.StatusActive
	}
	return s.Repo.CreateAcademicYear(ctx, year)
}

func (s *AcademicService) ListAcademicYears(ctx context.Context) ([]model.AcademicYear, error) {
	return s.Repo.ListAcademicYears(ctx)
}

func (s *AcademicService) CreateProgram(ctx context.Context, program *model.Program) error {
	if program.Status == "" {
		program.Status = model.StatusActive
	}
	if program.Semester == 0 {
		program.Semester = 1
	}
	return s.Repo.CreateProgram(ctx, program)
}

func (s *AcademicService) ListPrograms(ctx context.Context, academicYearID *uint) ([]model.ProgramDetail, error) {
	return s.Repo.ListPrograms(ctx, academicYearID)
}

func (s *AcademicService) CreateCourse(ctx context.Context, course *model.Course, programIDs []uint) error {
	if course.Status == "" {
		course.Status = model.StatusActive
	}
	return s.Repo.CreateCourse(ctx, course, programIDs)
}

func (s *AcademicService) ListCourses(ctx context.Context) ([]model.CourseDetail, error) {
	return s.Repo.ListCourses(ctx)
}

func (s *AcademicService) AddCourseToProgram(ctx context.Context, link *model.ProgramCourse) error {
	return s.Repo.AddCourseToProgram(ctx, link)
}

func (s *AcademicService) ListProgramCourses(ctx context.Context, programID uint) ([]model.ProgramCourseRow, error) {
	return s.Repo.ListProgramCourses(ctx, programID)
}

func (s *AcademicService) ListStaffCourses(ctx context.Context, staffID uint) ([]model.CourseSummary, error) {
	return s.Repo.ListStaffCourses(ctx, staffID)
}
