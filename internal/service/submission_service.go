package service

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/pkg/logger"
	"lls_backend/pkg/monitoring"
	"lls_backend/pkg/tracing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubmitAssignmentInput struct {
	AssignmentID   uint
	StudentID      uint
	AssignmentText *string
	FilePath       *string
}

type SubmitAssignmentResult struct {
	SubmissionID uint `json:"submission_id"`
	Created      bool `json:"created"`
}

type SubmissionService struct {
	DB   *gorm.DB
	Repo *repository.SubmissionRepository
	// Now 提交时间来源，测试中可替换
	Now func() time.Time
}

func NewSubmissionService(db *gorm.DB, repo *repository.SubmissionRepository) *SubmissionService {
	return &SubmissionService{DB: db, Repo: repo, Now: time.Now}
}

// SubmitAssignment 每个学生每个作业只保留一条提交，重复提交覆盖内容并刷新提交时间。
// 不校验作业是否存在，也不校验截止日期
func (s *SubmissionService) SubmitAssignment(ctx context.Context, in SubmitAssignmentInput) (*SubmitAssignmentResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "SubmissionService.SubmitAssignment")
	defer span.End()
	span.SetAttributes(
		attribute.Int("assignment.id", int(in.AssignmentID)),
		attribute.Int("student.id", int(in.StudentID)),
	)

	now := s.Now()
	out := &SubmitAssignmentResult{}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		created, err := repo.InsertIfAbsent(ctx, &model.AssignmentSubmission{
			AssignmentID:   in.AssignmentID,
			StudentID:      in.StudentID,
			AssignmentText: in.AssignmentText,
			FilePath:       in.FilePath,
			SubmittedDate:  now,
		})
		if err != nil {
			return err
		}
		if !created {
			if err := repo.OverwriteContent(ctx, in.AssignmentID, in.StudentID, in.AssignmentText, in.FilePath, now); err != nil {
				return err
			}
		}

		// 冲突时驱动返回的自增 ID 不可靠，按业务键回读
		saved, err := repo.FindByAssignmentAndStudent(ctx, in.AssignmentID, in.StudentID)
		if err != nil {
			return err
		}
		out.SubmissionID = saved.SubmissionID
		out.Created = created
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	kind := "updated"
	if out.Created {
		kind = "created"
	}
	monitoring.SubmissionsRecorded.WithLabelValues(kind).Inc()
	logger.Log.Info("Assignment submission recorded",
		zap.Uint("submission_id", out.SubmissionID),
		zap.Uint("assignment_id", in.AssignmentID),
		zap.Uint("student_id", in.StudentID),
		zap.String("kind", kind))

	return out, nil
}

func (s *SubmissionService) GetSubmissionsForStudentMaterial(ctx context.Context, studentID, materialID uint) ([]model.StudentSubmissionRow, error) {
	return s.Repo.ListForStudentMaterial(ctx, studentID, materialID)
}

func (s *SubmissionService) GetSubmissionsForStaff(ctx context.Context, staffID uint) ([]model.StaffSubmissionRow, error) {
	return s.Repo.ListForStaff(ctx, staffID)
}
