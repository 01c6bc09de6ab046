package model

import "time"

// AssignmentSubmission 每个 (assignment_id, student_id) 最多一条，重复提交覆盖原记录
// swagger:model AssignmentSubmission
type AssignmentSubmission struct {
	SubmissionID   uint      `gorm:"column:submission_id;primaryKey;autoIncrement" json:"submission_id"`
	AssignmentID   uint      `gorm:"not null;uniqueIndex:idx_submission_assignment_student,priority:1" json:"assignment_id"`
	StudentID      uint      `gorm:"not null;uniqueIndex:idx_submission_assignment_student,priority:2;index" json:"student_id"`
	FilePath       *string   `gorm:"size:255" json:"file_path"`
	SubmittedDate  time.Time `gorm:"not null" json:"submitted_date"`
	AssignmentText *string   `gorm:"type:text" json:"assignment_text"`
	Timestamps
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submission"
}

// AssignmentEvaluation 每条提交最多一条评价
// swagger:model AssignmentEvaluation
type AssignmentEvaluation struct {
	EvaluationID uint    `gorm:"column:evaluation_id;primaryKey;autoIncrement" json:"evaluation_id"`
	SubmissionID uint    `gorm:"not null;uniqueIndex" json:"submission_id"`
	Marks        float64 `gorm:"type:decimal(5,2);not null" json:"marks"`
	Feedback     *string `gorm:"type:text" json:"feedback"`
	EvaluatedBy  *uint   `gorm:"index" json:"evaluated_by"`
	Timestamps
}

func (AssignmentEvaluation) TableName() string {
	return "assignment_evaluation"
}
