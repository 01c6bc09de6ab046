package model

import "time"

// CourseProgress 学生在某课程中的完成进度
type CourseProgress struct {
	TotalQuizzes         int64 `json:"total_quizzes"`
	CompletedQuizzes     int64 `json:"completed_quizzes"`
	TotalAssignments     int64 `json:"total_assignments"`
	SubmittedAssignments int64 `json:"submitted_assignments"`
	TotalItems           int64 `json:"total_items"`
	CompletedItems       int64 `json:"completed_items"`
	ProgressPercentage   int   `json:"progress_percentage"`
}

// QuizResultRow 某学习材料下学生的单题结果
type QuizResultRow struct {
	ResultID uint         `json:"result_id"`
	MCQID    uint         `gorm:"column:mcq_id" json:"mcq_id"`
	Status   ResultStatus `json:"status"`
	Grade    string       `json:"grade"`
}

// StudentResultRow 学生成绩列表，作业成绩的分数来自评价记录
type StudentResultRow struct {
	ResultID     uint         `json:"result_id"`
	MCQID        *uint        `gorm:"column:mcq_id" json:"mcq_id"`
	EvaluationID *uint        `json:"evaluation_id"`
	Status       ResultStatus `json:"status"`
	Grade        string       `json:"grade"`
	Marks        *float64     `json:"marks"`
}

// StudentSubmissionRow 学生在某学习材料下的作业提交及评价
type StudentSubmissionRow struct {
	SubmissionID    uint      `json:"submission_id"`
	AssignmentID    uint      `json:"assignment_id"`
	AssignmentTitle string    `json:"assignment_title"`
	AssignmentText  *string   `json:"assignment_text"`
	FilePath        *string   `json:"file_path"`
	SubmittedDate   time.Time `json:"submitted_date"`
	IsEvaluated     bool      `json:"is_evaluated"`
	Marks           *float64  `json:"marks"`
	Feedback        *string   `json:"feedback"`
}

// StaffSubmissionRow 教师视角的作业提交，带学生、课程、材料、作业名称
type StaffSubmissionRow struct {
	SubmissionID    uint      `json:"submission_id"`
	AssignmentID    uint      `json:"assignment_id"`
	AssignmentTitle string    `json:"assignment_title"`
	MaterialID      uint      `json:"material_id"`
	MaterialTitle   string    `json:"material_title"`
	CourseID        uint      `json:"course_id"`
	CourseName      string    `json:"course_name"`
	StudentID       uint      `json:"student_id"`
	StudentName     string    `json:"student_name"`
	AssignmentText  *string   `json:"assignment_text"`
	FilePath        *string   `json:"file_path"`
	SubmittedDate   time.Time `json:"submitted_date"`
	IsEvaluated     bool      `json:"is_evaluated"`
	Marks           *float64  `json:"marks"`
	Feedback        *string   `json:"feedback"`
}

// MaterialSummary 课程材料列表项
type MaterialSummary struct {
	StudyMaterial
	AssignmentCount int64 `json:"assignment_count"`
	MCQCount        int64 `gorm:"column:mcq_count" json:"mcq_count"`
}

// CourseSummary 教师所授课程列表项
type CourseSummary struct {
	Course
	MaterialCount int64 `json:"material_count"`
}

// LinkedProgram 课程关联的专业
type LinkedProgram struct {
	ProgramID   uint   `json:"program_id"`
	ProgramName string `json:"program_name"`
	Semester    int    `json:"semester"`
}

// CourseDetail 课程列表项，带授课教师和关联专业
type CourseDetail struct {
	Course
	TeacherName    *string         `json:"teacher_name"`
	LinkedPrograms []LinkedProgram `gorm:"-" json:"linked_programs"`
}

// ProgramDetail 专业列表项，带学年名称
type ProgramDetail struct {
	Program
	AcademicYearName *string `json:"academic_year_name"`
}

// ProgramCourseRow 专业下的课程
type ProgramCourseRow struct {
	ProgramCourseID uint   `json:"program_course_id"`
	CourseID        uint   `json:"course_id"`
	CourseName      string `json:"course_name"`
	Semester        int    `json:"semester"`
	Credits         *int   `json:"credits"`
}

// StudentListRow 学生列表项，带专业和课程名称
type StudentListRow struct {
	Student
	ProgramName *string `json:"program_name"`
	CourseName  *string `json:"course_name"`
}

// StaffListRow 教职工列表项
type StaffListRow struct {
	Staff
	HasPassword bool `gorm:"-" json:"has_password"`
}

// MaterialDetail 材料详情，题目不含正确答案
type MaterialDetail struct {
	StudyMaterial
	Assignments []Assignment `json:"assignments"`
	MCQs        []MCQ        `json:"mcqs"`
}
