package model

type ResultStatus string

const (
	ResultPass ResultStatus = "Pass"
	ResultFail ResultStatus = "Fail"
)

// Result 学生的单题测验结果或作业评价结果，二者择一
// swagger:model Result
type Result struct {
	ResultID     uint         `gorm:"column:result_id;primaryKey;autoIncrement" json:"result_id"`
	StudentID    uint         `gorm:"not null;index;uniqueIndex:idx_result_student_mcq,priority:1" json:"student_id"`
	MCQID        *uint        `gorm:"column:mcq_id;uniqueIndex:idx_result_student_mcq,priority:2" json:"mcq_id"`
	EvaluationID *uint        `gorm:"index" json:"evaluation_id"`
	Status       ResultStatus `gorm:"size:10" json:"status"`
	Grade        string       `gorm:"size:5" json:"grade"`
	Timestamps
}

func (Result) TableName() string {
	return "result"
}
