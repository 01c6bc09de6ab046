package service

import (
	"context"
	"errors"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/internal/util"
	"lls_backend/pkg/logger"
	"lls_backend/pkg/monitoring"
	"lls_backend/pkg/tracing"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EvaluateInput struct {
	SubmissionID uint
	Marks        float64
	Feedback     *string
	EvaluatedBy  *uint
}

type EvaluateResult struct {
	EvaluationID uint                `json:"evaluation_id"`
	SubmissionID uint                `json:"submission_id"`
	Created      bool                `json:"created"`
	Status       *model.ResultStatus `json:"status,omitempty"`
	Grade        *string             `json:"grade,omitempty"`
}

type EvaluationService struct {
	DB          *gorm.DB
	Repo        *repository.EvaluationRepository
	Submissions *repository.SubmissionRepository

	rederive atomic.Bool
}

func NewEvaluationService(db *gorm.DB, repo *repository.EvaluationRepository, submissions *repository.SubmissionRepository) *EvaluationService {
	return &EvaluationService{DB: db, Repo: repo, Submissions: submissions}
}

// SetRederiveOnReevaluation 开启后重新评分会同步更新已生成的成绩，默认关闭
func (s *EvaluationService) SetRederiveOnReevaluation(enabled bool) {
	s.rederive.Store(enabled)
}

func (s *EvaluationService) RederiveOnReevaluation() bool {
	return s.rederive.Load()
}

// EvaluateSubmission 首次评分写入评价和成绩；再次评分只更新评价，
// 除非开启了重新评分同步成绩
func (s *EvaluationService) EvaluateSubmission(ctx context.Context, in EvaluateInput) (*EvaluateResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "EvaluationService.EvaluateSubmission")
	defer span.End()
	span.SetAttributes(attribute.Int("submission.id", int(in.SubmissionID)))

	// 与 decimal(5,2) 列保持一致，按入库后的分数判定等级
	in.Marks = RoundMarks(in.Marks)
	if in.Marks < 0 || in.Marks > 100 {
		return nil, util.ErrMarksOutOfRange
	}

	status := DeriveStatus(in.Marks)
	grade := DeriveGrade(in.Marks)
	rederive := s.rederive.Load()
	out := &EvaluateResult{SubmissionID: in.SubmissionID}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		submission, err := s.Submissions.WithTx(tx).FindByID(ctx, in.SubmissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrSubmissionNotFound
			}
			return err
		}

		evaluation := &model.AssignmentEvaluation{
			SubmissionID: in.SubmissionID,
			Marks:        in.Marks,
			Feedback:     in.Feedback,
			EvaluatedBy:  in.EvaluatedBy,
		}
		created, err := repo.InsertIfAbsent(ctx, evaluation)
		if err != nil {
			return err
		}

		if !created {
			if err := repo.UpdateBySubmission(ctx, in.SubmissionID, in.Marks, in.Feedback, in.EvaluatedBy); err != nil {
				return err
			}
		}

		saved, err := repo.FindBySubmission(ctx, in.SubmissionID)
		if err != nil {
			return err
		}
		out.EvaluationID = saved.EvaluationID
		out.Created = created

		switch {
		case created:
			evaluationID := saved.EvaluationID
			if err := repo.CreateResult(ctx, &model.Result{
				StudentID:    submission.StudentID,
				EvaluationID: &evaluationID,
				Status:       status,
				Grade:        grade,
			}); err != nil {
				return err
			}
		case rederive:
			if _, err := repo.UpdateResultsByEvaluation(ctx, saved.EvaluationID, status, grade); err != nil {
				return err
			}
		default:
			return nil
		}

		out.Status = &status
		out.Grade = &grade
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
	monitoring.EvaluationsRecorded.WithLabelValues(kind, string(status)).Inc()
	logger.Log.Info("Evaluation recorded",
		zap.Uint("evaluation_id", out.EvaluationID),
		zap.Uint("submission_id", in.SubmissionID),
		zap.Float64("marks", in.Marks),
		zap.String("kind", kind),
		zap.Bool("result_derived", out.Status != nil))

	return out, nil
}

func (s *EvaluationService) GetResultsForStudent(ctx context.Context, studentID uint) ([]model.StudentResultRow, error) {
	return s.Repo.ListResultsForStudent(ctx, studentID)
}
