package repository

import (
	"context"
	"lls_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EvaluationRepository struct {
	DB *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{DB: db}
}

func (r *EvaluationRepository) WithTx(tx *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{DB: tx}
}

// InsertIfAbsent 依赖 submission_id 唯一约束，已有评价时返回 false
func (r *EvaluationRepository) InsertIfAbsent(ctx context.Context, e *model.AssignmentEvaluation) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "submission_id"}},
			DoNothing: true,
		}).
		Create(e)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *EvaluationRepository) UpdateBySubmission(ctx context.Context, submissionID uint, marks float64, feedback *string, evaluatedBy *uint) error {
	return r.DB.WithContext(ctx).Model(&model.AssignmentEvaluation{}).
		Where("submission_id = ?", submissionID).
		Updates(map[string]interface{}{
			"marks":        marks,
			"feedback":     feedback,
			"evaluated_by": evaluatedBy,
		}).Error
}

func (r *EvaluationRepository) FindBySubmission(ctx context.Context, submissionID uint) (*model.AssignmentEvaluation, error) {
	var e model.AssignmentEvaluation
	if err := r.DB.WithContext(ctx).Where("submission_id = ?", submissionID).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EvaluationRepository) CreateResult(ctx context.Context, result *model.Result) error {
	return r.DB.WithContext(ctx).Create(result).Error
}

// UpdateResultsByEvaluation 重新评分时同步该评价生成的成绩
func (r *EvaluationRepository) UpdateResultsByEvaluation(ctx context.Context, evaluationID uint, status model.ResultStatus, grade string) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.Result{}).
		Where("evaluation_id = ?", evaluationID).
		Updates(map[string]interface{}{"status": status, "grade": grade})
	return res.RowsAffected, res.Error
}

func (r *EvaluationRepository) ListResultsForStudent(ctx context.Context, studentID uint) ([]model.StudentResultRow, error) {
	rows := make([]model.StudentResultRow, 0)
	err := r.DB.WithContext(ctx).Table("result r").
		Select("r.result_id, r.mcq_id, r.evaluation_id, r.status, r.grade, e.marks").
		Joins("LEFT JOIN assignment_evaluation e ON e.evaluation_id = r.evaluation_id").
		Where("r.student_id = ?", studentID).
		Order("r.result_id asc").
		Scan(&rows).Error
	return rows, err
}
