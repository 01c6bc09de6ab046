package model

import "gorm.io/datatypes"

// swagger:model AcademicYear
type AcademicYear struct {
	AcademicYearID uint           `gorm:"column:academic_year_id;primaryKey;autoIncrement" json:"academic_year_id"`
	Year           string         `gorm:"size:20;not null" json:"year"`
	StartDate      datatypes.Date `gorm:"not null" json:"start_date"`
	EndDate        datatypes.Date `gorm:"not null" json:"end_date"`
	Status         RecordStatus   `gorm:"size:10;default:'Active'" json:"status"`
	Timestamps
}

func (AcademicYear) TableName() string {
	return "academic_year"
}

// swagger:model Program
type Program struct {
	ProgramID      uint         `gorm:"column:program_id;primaryKey;autoIncrement" json:"program_id"`
	ProgramName    string       `gorm:"size:100;not null" json:"program_name"` // 如 BCA、BCom
	Description    string       `gorm:"type:text" json:"description"`
	DurationMonths *int         `json:"duration_months"`
	Semester       int          `gorm:"not null;default:1" json:"semester"`
	AcademicYearID *uint        `gorm:"index" json:"academic_year_id"`
	Status         RecordStatus `gorm:"size:10;default:'Active'" json:"status"`
	Timestamps
}

func (Program) TableName() string {
	return "program"
}

// swagger:model Course
type Course struct {
	CourseID    uint         `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	CourseName  string       `gorm:"size:100;not null" json:"course_name"`
	Description string       `gorm:"type:text" json:"description"`
	Credits     *int         `json:"credits"`
	StaffID     *uint        `gorm:"index" json:"staff_id"` // 授课教师
	Status      RecordStatus `gorm:"size:10;default:'Active'" json:"status"`
	Timestamps
}

func (Course) TableName() string {
	return "course"
}

// ProgramCourse 课程与专业的多对多关联（带学期）
type ProgramCourse struct {
	ProgramCourseID uint `gorm:"column:program_course_id;primaryKey;autoIncrement" json:"program_course_id"`
	ProgramID       uint `gorm:"not null;uniqueIndex:idx_program_course" json:"program_id"`
	CourseID        uint `gorm:"not null;uniqueIndex:idx_program_course;index" json:"course_id"`
	Semester        int  `gorm:"not null" json:"semester"`
	Timestamps
}

func (ProgramCourse) TableName() string {
	return "program_course"
}
