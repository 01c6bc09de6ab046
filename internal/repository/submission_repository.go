package repository

import (
	"context"
	"lls_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) WithTx(tx *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: tx}
}

// InsertIfAbsent 依赖 (assignment_id, student_id) 唯一约束，已存在时不写入并返回 false
func (r *SubmissionRepository) InsertIfAbsent(ctx context.Context, s *model.AssignmentSubmission) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assignment_id"}, {Name: "student_id"}},
			DoNothing: true,
		}).
		Create(s)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// OverwriteContent 覆盖已有提交的内容和提交时间
func (r *SubmissionRepository) OverwriteContent(ctx context.Context, assignmentID, studentID uint, text, filePath *string, submittedAt time.Time) error {
	return r.DB.WithContext(ctx).Model(&model.AssignmentSubmission{}).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		Updates(map[string]interface{}{
			"assignment_text": text,
			"file_path":       filePath,
			"submitted_date":  submittedAt,
			"updated_at":      submittedAt,
		}).Error
}

func (r *SubmissionRepository) FindByAssignmentAndStudent(ctx context.Context, assignmentID, studentID uint) (*model.AssignmentSubmission, error) {
	var s model.AssignmentSubmission
	err := r.DB.WithContext(ctx).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id uint) (*model.AssignmentSubmission, error) {
	var s model.AssignmentSubmission
	if err := r.DB.WithContext(ctx).First(&s, "submission_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListForStudentMaterial 学生在某材料下的提交，评价唯一约束保证每条提交至多关联一条评价
func (r *SubmissionRepository) ListForStudentMaterial(ctx context.Context, studentID, materialID uint) ([]model.StudentSubmissionRow, error) {
	type row struct {
		model.StudentSubmissionRow
		EvaluationID *uint
	}
	var rows []row
	err := r.DB.WithContext(ctx).Table("assignment_submission s").
		Select("s.submission_id, s.assignment_id, a.title AS assignment_title, s.assignment_text, s.file_path, " +
			"s.submitted_date, e.evaluation_id, e.marks, e.feedback").
		Joins("JOIN assignment a ON a.assignment_id = s.assignment_id").
		Joins("LEFT JOIN assignment_evaluation e ON e.submission_id = s.submission_id").
		Where("s.student_id = ? AND a.material_id = ?", studentID, materialID).
		Order("s.submission_id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]model.StudentSubmissionRow, len(rows))
	for i, rw := range rows {
		out[i] = rw.StudentSubmissionRow
		out[i].IsEvaluated = rw.EvaluationID != nil
	}
	return out, nil
}

// ListForStaff 教师所授课程下全部作业提交，每次调用实时查询
func (r *SubmissionRepository) ListForStaff(ctx context.Context, staffID uint) ([]model.StaffSubmissionRow, error) {
	type row struct {
		model.StaffSubmissionRow
		EvaluationID *uint
	}
	var rows []row
	err := r.DB.WithContext(ctx).Table("assignment_submission s").
		Select("s.submission_id, s.assignment_id, a.title AS assignment_title, " +
			"m.material_id, m.title AS material_title, c.course_id, c.course_name, " +
			"st.student_id, st.name AS student_name, s.assignment_text, s.file_path, s.submitted_date, " +
			"e.evaluation_id, e.marks, e.feedback").
		Joins("JOIN assignment a ON a.assignment_id = s.assignment_id").
		Joins("JOIN study_material m ON m.material_id = a.material_id").
		Joins("JOIN course c ON c.course_id = m.course_id").
		Joins("JOIN student st ON st.student_id = s.student_id").
		Joins("LEFT JOIN assignment_evaluation e ON e.submission_id = s.submission_id").
		Where("c.staff_id = ?", staffID).
		Order("s.submitted_date desc, s.submission_id desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]model.StaffSubmissionRow, len(rows))
	for i, rw := range rows {
		out[i] = rw.StaffSubmissionRow
		out[i].IsEvaluated = rw.EvaluationID != nil
	}
	return out, nil
}
