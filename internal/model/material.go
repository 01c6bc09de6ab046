package model

import (
	"strings"

	"gorm.io/datatypes"
)

type MaterialType string

const (
	MaterialVideo      MaterialType = "video"
	MaterialDocument   MaterialType = "document"
	MaterialQuiz       MaterialType = "quiz"
	MaterialAssignment MaterialType = "assignment"
)

// StudyMaterial 课程内按 order_index 排序的学习单元
// swagger:model StudyMaterial
type StudyMaterial struct {
	MaterialID      uint           `gorm:"column:material_id;primaryKey;autoIncrement" json:"material_id"`
	CourseID        uint           `gorm:"not null;index:idx_material_course_order,priority:1" json:"course_id"`
	Title           string         `gorm:"size:200;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	MaterialType    MaterialType   `gorm:"size:20;default:'video'" json:"material_type"`
	VideoURL        string         `gorm:"size:500" json:"video_url"`
	FilePath        string         `gorm:"size:255" json:"file_path"`
	DurationMinutes *int           `json:"duration_minutes"`
	OrderIndex      int            `gorm:"default:0;index:idx_material_course_order,priority:2" json:"order_index"`
	UploadDate      datatypes.Date `json:"upload_date"`
	UploadedBy      *uint          `gorm:"index" json:"uploaded_by"`
	Timestamps
}

func (StudyMaterial) TableName() string {
	return "study_material"
}

// swagger:model Assignment
type Assignment struct {
	AssignmentID uint            `gorm:"column:assignment_id;primaryKey;autoIncrement" json:"assignment_id"`
	MaterialID   uint            `gorm:"not null;index" json:"material_id"`
	Title        string          `gorm:"size:200;not null" json:"title"`
	Instructions string          `gorm:"type:text" json:"instructions"`
	DueDate      *datatypes.Date `json:"due_date"` // 仅作展示，不做截止校验
	Timestamps
}

func (Assignment) TableName() string {
	return "assignment"
}

// MCQ 单选题，correct_option 取 A/B/C/D
// swagger:model MCQ
type MCQ struct {
	MCQID         uint   `gorm:"column:mcq_id;primaryKey;autoIncrement" json:"mcq_id"`
	MaterialID    uint   `gorm:"not null;index" json:"material_id"`
	Question      string `gorm:"type:text;not null" json:"question"`
	OptionA       string `gorm:"size:200" json:"option_a"`
	OptionB       string `gorm:"size:200" json:"option_b"`
	OptionC       string `gorm:"size:200" json:"option_c"`
	OptionD       string `gorm:"size:200" json:"option_d"`
	CorrectOption string `gorm:"size:1" json:"correct_option,omitempty"`
	Timestamps
}

func (MCQ) TableName() string {
	return "mcq"
}

// IsCorrect 忽略大小写比较选项
func (m *MCQ) IsCorrect(selected string) bool {
	return strings.EqualFold(strings.TrimSpace(selected), strings.TrimSpace(m.CorrectOption))
}
