package service

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/pkg/logger"
	"lls_backend/pkg/monitoring"
	"lls_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizAnswer struct {
	MCQID          uint   `json:"mcq_id" binding:"required"`
	SelectedOption string `json:"selected_option"`
}

type QuizAnswerResult struct {
	MCQID         uint   `json:"mcq_id"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectOption string `json:"correct_option"`
}

type QuizSubmissionResult struct {
	CorrectCount    int                `json:"correct_count"`
	TotalCount      int                `json:"total_count"`
	ScorePercentage int                `json:"score_percentage"`
	Results         []QuizAnswerResult `json:"results"`
}

type QuizService struct {
	DB   *gorm.DB
	Repo *repository.QuizRepository
}

func NewQuizService(db *gorm.DB, repo *repository.QuizRepository) *QuizService {
	return &QuizService{DB: db, Repo: repo}
}

// SubmitQuiz 批量判分并写入成绩，整批在一个事务中完成；
// 不存在的题目跳过且不出现在 results 中，但仍计入 total_count
func (s *QuizService) SubmitQuiz(ctx context.Context, studentID uint, answers []QuizAnswer) (*QuizSubmissionResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "QuizService.SubmitQuiz")
	defer span.End()
	span.SetAttributes(
		attribute.Int("student.id", int(studentID)),
		attribute.Int("quiz.answers", len(answers)),
	)

	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.MCQID)
	}

	out := &QuizSubmissionResult{
		TotalCount: len(answers),
		Results:    make([]QuizAnswerResult, 0, len(answers)),
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)

		mcqs, err := repo.FindMCQsByIDs(ctx, ids)
		if err != nil {
			return err
		}

		for _, a := range answers {
			mcq, ok := mcqs[a.MCQID]
			if !ok {
				logger.Log.Warn("Skipping answer for unknown quiz question",
					zap.Uint("student_id", studentID),
					zap.Uint("mcq_id", a.MCQID))
				continue
			}

			correct := mcq.IsCorrect(a.SelectedOption)
			status, grade := quizOutcome(correct)
			mcqID := mcq.MCQID
			if err := repo.UpsertResult(ctx, &model.Result{
				StudentID: studentID,
				MCQID:     &mcqID,
				Status:    status,
				Grade:     grade,
			}); err != nil {
				return err
			}

			if correct {
				out.CorrectCount++
			}
			out.Results = append(out.Results, QuizAnswerResult{
				MCQID:         mcq.MCQID,
				IsCorrect:     correct,
				CorrectOption: mcq.CorrectOption,
			})
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	out.ScorePercentage = Percentage(int64(out.CorrectCount), int64(out.TotalCount))

	monitoring.QuizAnswersGraded.WithLabelValues("correct").Add(float64(out.CorrectCount))
	monitoring.QuizAnswersGraded.WithLabelValues("incorrect").Add(float64(len(out.Results) - out.CorrectCount))
	monitoring.QuizAnswersGraded.WithLabelValues("skipped").Add(float64(out.TotalCount - len(out.Results)))

	logger.Log.Info("Quiz graded",
		zap.Uint("student_id", studentID),
		zap.Int("correct", out.CorrectCount),
		zap.Int("total", out.TotalCount),
		zap.Int("score", out.ScorePercentage))

	return out, nil
}

func (s *QuizService) GetQuizResults(ctx context.Context, studentID, materialID uint) ([]model.QuizResultRow, error) {
	return s.Repo.ListQuizResults(ctx, studentID, materialID)
}
