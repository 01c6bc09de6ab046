package model

import "gorm.io/datatypes"

// swagger:model Staff
type Staff struct {
	StaffID        uint         `gorm:"column:staff_id;primaryKey;autoIncrement" json:"staff_id"`
	Name           string       `gorm:"size:100;not null" json:"name"`
	Email          string       `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash   *string      `gorm:"size:255" json:"-"`
	Phone          string       `gorm:"size:20" json:"phone"`
	Qualifications string       `gorm:"type:text" json:"qualifications"`
	Status         RecordStatus `gorm:"size:10;default:'Active'" json:"status"`
	Timestamps
}

func (Staff) TableName() string {
	return "staff"
}

// swagger:model Student
type Student struct {
	StudentID     uint            `gorm:"column:student_id;primaryKey;autoIncrement" json:"student_id"`
	Name          string          `gorm:"size:100;not null" json:"name"`
	Email         string          `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash  *string         `gorm:"size:255" json:"-"`
	DOB           *datatypes.Date `gorm:"column:dob" json:"dob"`
	Contact       string          `gorm:"size:20" json:"contact"`
	ParentName    string          `gorm:"size:100" json:"parent_name"`
	ParentContact string          `gorm:"size:20" json:"parent_contact"`
	ParentEmail   string          `gorm:"size:100" json:"parent_email"`
	ProgramID     *uint           `gorm:"index" json:"program_id"`
	CourseID      *uint           `gorm:"index" json:"course_id"` // 直接选修的课程
	Timestamps
}

func (Student) TableName() string {
	return "student"
}
