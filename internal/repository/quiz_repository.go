package repository

import (
	"context"
	"lls_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// WithTx 返回绑定到事务的仓储
func (r *QuizRepository) WithTx(tx *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: tx}
}

// FindMCQsByIDs 按 ID 批量查询题目，不存在的 ID 不会出现在结果中
func (r *QuizRepository) FindMCQsByIDs(ctx context.Context, ids []uint) (map[uint]model.MCQ, error) {
	found := make(map[uint]model.MCQ, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var mcqs []model.MCQ
	if err := r.DB.WithContext(ctx).Where("mcq_id IN ?", ids).Find(&mcqs).Error; err != nil {
		return nil, err
	}
	for _, q := range mcqs {
		found[q.MCQID] = q
	}
	return found, nil
}

// UpsertResult 以 (student_id, mcq_id) 唯一约束为准插入或覆盖结果
func (r *QuizRepository) UpsertResult(ctx context.Context, result *model.Result) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "mcq_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "grade", "updated_at"}),
		}).
		Create(result).Error
}

func (r *QuizRepository) ListQuizResults(ctx context.Context, studentID, materialID uint) ([]model.QuizResultRow, error) {
	rows := make([]model.QuizResultRow, 0)
	err := r.DB.WithContext(ctx).Table("result r").
		Select("r.result_id, r.mcq_id, r.status, r.grade").
		Joins("JOIN mcq m ON m.mcq_id = r.mcq_id").
		Where("r.student_id = ? AND m.material_id = ?", studentID, materialID).
		Order("r.mcq_id asc").
		Scan(&rows).Error
	return rows, err
}
