package repository

import (
	"context"
	"lls_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) courseMaterials(ctx context.Context, courseID uint) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&model.StudyMaterial{}).
		Select("material_id").
		Where("course_id = ?", courseID)
}

// CountCourseItems 课程下的题目数和作业数
func (r *ProgressRepository) CountCourseItems(ctx context.Context, courseID uint) (mcqs int64, assignments int64, err error) {
	err = r.DB.WithContext(ctx).Model(&model.MCQ{}).
		Where("material_id IN (?)", r.courseMaterials(ctx, courseID)).
		Count(&mcqs).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.DB.WithContext(ctx).Model(&model.Assignment{}).
		Where("material_id IN (?)", r.courseMaterials(ctx, courseID)).
		Count(&assignments).Error
	if err != nil {
		return 0, 0, err
	}
	return mcqs, assignments, nil
}

// CountStudentCompletions 学生在课程内已有结果的题目数和已提交的作业数
func (r *ProgressRepository) CountStudentCompletions(ctx context.Context, studentID, courseID uint) (answered int64, submitted int64, err error) {
	courseMCQs := r.DB.WithContext(ctx).Model(&model.MCQ{}).
		Select("mcq_id").
		Where("material_id IN (?)", r.courseMaterials(ctx, courseID))
	err = r.DB.WithContext(ctx).Model(&model.Result{}).
		Where("student_id = ? AND mcq_id IN (?)", studentID, courseMCQs).
		Count(&answered).Error
	if err != nil {
		return 0, 0, err
	}

	courseAssignments := r.DB.WithContext(ctx).Model(&model.Assignment{}).
		Select("assignment_id").
		Where("material_id IN (?)", r.courseMaterials(ctx, courseID))
	err = r.DB.WithContext(ctx).Model(&model.AssignmentSubmission{}).
		Where("student_id = ? AND assignment_id IN (?)", studentID, courseAssignments).
		Count(&submitted).Error
	if err != nil {
		return 0, 0, err
	}
	return answered, submitted, nil
}
