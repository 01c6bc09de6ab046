package repository

import (
	"context"
	"database/sql"
	"lls_backend/internal/model"

	"gorm.io/gorm"
)

// LearningRepository 学习材料、作业和单选题
type LearningRepository struct {
	DB *gorm.DB
}

func NewLearningRepository(db *gorm.DB) *LearningRepository {
	return &LearningRepository{DB: db}
}

// CreateMaterial 在事务内取课程当前最大 order_index 并加一
func (r *LearningRepository) CreateMaterial(ctx context.Context, material *model.StudyMaterial) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder sql.NullInt64
		err := tx.Model(&model.StudyMaterial{}).
			Where("course_id = ?", material.CourseID).
			Select("MAX(order_index)").
			Row().Scan(&maxOrder)
		if err != nil {
			return err
		}

		material.OrderIndex = int(maxOrder.Int64) + 1
		return tx.Create(material).Error
	})
}

func (r *LearningRepository) FindMaterialByID(ctx context.Context, id uint) (*model.StudyMaterial, error) {
	var m model.StudyMaterial
	if err := r.DB.WithContext(ctx).First(&m, "material_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *LearningRepository) ListMaterialsByCourse(ctx context.Context, courseID uint) ([]model.MaterialSummary, error) {
	rows := make([]model.MaterialSummary, 0)
	err := r.DB.WithContext(ctx).Table("study_material m").
		Select("m.*, " +
			"(SELECT COUNT(*) FROM assignment a WHERE a.material_id = m.material_id) AS assignment_count, " +
			"(SELECT COUNT(*) FROM mcq q WHERE q.material_id = m.material_id) AS mcq_count").
		Where("m.course_id = ?", courseID).
		Order("m.order_index asc").
		Scan(&rows).Error
	return rows, err
}

// DeleteMaterial 级联删除材料及其题目、作业、提交、评价、成绩和沟通记录
func (r *LearningRepository) DeleteMaterial(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var material model.StudyMaterial
		if err := tx.First(&material, "material_id = ?", id).Error; err != nil {
			return err
		}

		var mcqIDs, assignmentIDs, submissionIDs, evaluationIDs, resultIDs []uint
		if err := tx.Model(&model.MCQ{}).Where("material_id = ?", id).Pluck("mcq_id", &mcqIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Assignment{}).Where("material_id = ?", id).Pluck("assignment_id", &assignmentIDs).Error; err != nil {
			return err
		}
		if len(assignmentIDs) > 0 {
			if err := tx.Model(&model.AssignmentSubmission{}).Where("assignment_id IN ?", assignmentIDs).
				Pluck("submission_id", &submissionIDs).Error; err != nil {
				return err
			}
		}
		if len(submissionIDs) > 0 {
			if err := tx.Model(&model.AssignmentEvaluation{}).Where("submission_id IN ?", submissionIDs).
				Pluck("evaluation_id", &evaluationIDs).Error; err != nil {
				return err
			}
		}
		if len(mcqIDs) > 0 || len(evaluationIDs) > 0 {
			q := tx.Model(&model.Result{})
			switch {
			case len(mcqIDs) > 0 && len(evaluationIDs) > 0:
				q = q.Where("mcq_id IN ? OR evaluation_id IN ?", mcqIDs, evaluationIDs)
			case len(mcqIDs) > 0:
				q = q.Where("mcq_id IN ?", mcqIDs)
			default:
				q = q.Where("evaluation_id IN ?", evaluationIDs)
			}
			if err := q.Pluck("result_id", &resultIDs).Error; err != nil {
				return err
			}
		}

		if err := detachResults(tx, resultIDs); err != nil {
			return err
		}
		if len(submissionIDs) > 0 {
			if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&model.Communication{}).Error; err != nil {
				return err
			}
		}
		if len(evaluationIDs) > 0 {
			if err := tx.Where("evaluation_id IN ?", evaluationIDs).Delete(&model.AssignmentEvaluation{}).Error; err != nil {
				return err
			}
		}
		if len(submissionIDs) > 0 {
			if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&model.AssignmentSubmission{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("material_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("material_id = ?", id).Delete(&model.MCQ{}).Error; err != nil {
			return err
		}
		return tx.Delete(&material).Error
	})
}

// detachResults 删除成绩前清理引用：证书置空，沟通记录删除
func detachResults(tx *gorm.DB, resultIDs []uint) error {
	if len(resultIDs) == 0 {
		return nil
	}
	if err := tx.Model(&model.Certificate{}).Where("result_id IN ?", resultIDs).
		Update("result_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Where("result_id IN ?", resultIDs).Delete(&model.Communication{}).Error; err != nil {
		return err
	}
	return tx.Where("result_id IN ?", resultIDs).Delete(&model.Result{}).Error
}

func (r *LearningRepository) CreateAssignment(ctx context.Context, a *model.Assignment) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *LearningRepository) ListAssignments(ctx context.Context, materialID uint) ([]model.Assignment, error) {
	assignments := make([]model.Assignment, 0)
	err := r.DB.WithContext(ctx).Where("material_id = ?", materialID).
		Order("assignment_id asc").Find(&assignments).Error
	return assignments, err
}

func (r *LearningRepository) CreateMCQ(ctx context.Context, q *model.MCQ) error {
	return r.DB.WithContext(ctx).Create(q).Error
}

// ListMCQs 返回的题目不含正确答案
func (r *LearningRepository) ListMCQs(ctx context.Context, materialID uint) ([]model.MCQ, error) {
	mcqs := make([]model.MCQ, 0)
	err := r.DB.WithContext(ctx).
		Select("mcq_id", "material_id", "question", "option_a", "option_b", "option_c", "option_d", "created_at", "updated_at").
		Where("material_id = ?", materialID).
		Order("mcq_id asc").
		Find(&mcqs).Error
	return mcqs, err
}

// DeleteMCQ 删除单选题及其测验成绩
func (r *LearningRepository) DeleteMCQ(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mcq model.MCQ
		if err := tx.First(&mcq, "mcq_id = ?", id).Error; err != nil {
			return err
		}

		var resultIDs []uint
		if err := tx.Model(&model.Result{}).Where("mcq_id = ?", id).Pluck("result_id", &resultIDs).Error; err != nil {
			return err
		}
		if err := detachResults(tx, resultIDs); err != nil {
			return err
		}
		return tx.Delete(&mcq).Error
	})
}
