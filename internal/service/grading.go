package service

import (
	"lls_backend/internal/model"
	"math"

	"github.com/shopspring/decimal"
)

const (
	PassMark = 40.0

	QuizGradePass = "A"
	QuizGradeFail = "F"
)

// gradeBands 从高到低匹配，首个满足 marks >= min 的等级即结果；D 从及格线起算，及格成绩不会出现 F
var gradeBands = []struct {
	min   float64
	grade string
}{
	{90, "A+"},
	{80, "A"},
	{70, "B"},
	{60, "C"},
	{PassMark, "D"},
}

// RoundMarks 分数保留两位小数，四舍五入
func RoundMarks(marks float64) float64 {
	return decimal.NewFromFloat(marks).Round(2).InexactFloat64()
}

func DeriveStatus(marks float64) model.ResultStatus {
	if marks >= PassMark {
		return model.ResultPass
	}
	return model.ResultFail
}

func DeriveGrade(marks float64) string {
	for _, band := range gradeBands {
		if marks >= band.min {
			return band.grade
		}
	}
	return "F"
}

// Percentage 返回 part/total 的百分比，四舍六入五成双；total 为 0 时返回 0
func Percentage(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(part) / float64(total) * 100))
}

func quizOutcome(correct bool) (model.ResultStatus, string) {
	if correct {
		return model.ResultPass, QuizGradePass
	}
	return model.ResultFail, QuizGradeFail
}
