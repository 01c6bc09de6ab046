package service

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/pkg/tracing"
)

type ProgressService struct {
	Repo *repository.ProgressRepository
}

func NewProgressService(repo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{Repo: repo}
}

// ComputeProgress 有成绩（无论通过与否）即算完成测验，有提交即算完成作业
func (s *ProgressService) ComputeProgress(ctx context.Context, studentID, courseID uint) (*model.CourseProgress, error) {
	ctx, span := tracing.Tracer.Start(ctx, "ProgressService.ComputeProgress")
	defer span.End()

	totalQuizzes, totalAssignments, err := s.Repo.CountCourseItems(ctx, courseID)
	if err != nil {
		return nil, err
	}
	completedQuizzes, submitted, err := s.Repo.CountStudentCompletions(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	p := &model.CourseProgress{
		TotalQuizzes:         totalQuizzes,
		CompletedQuizzes:     completedQuizzes,
		TotalAssignments:     totalAssignments,
		SubmittedAssignments: submitted,
		TotalItems:           totalQuizzes + totalAssignments,
		CompletedItems:       completedQuizzes + submitted,
	}
	p.ProgressPercentage = Percentage(p.CompletedItems, p.TotalItems)
	return p, nil
}
