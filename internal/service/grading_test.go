package service

import (
	"lls_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatusAndGrade(t *testing.T) {
	cases := []struct {
		marks  float64
		status model.ResultStatus
		grade  string
	}{
		{100, model.ResultPass, "A+"},
		{90, model.ResultPass, "A+"},
		{85, model.ResultPass, "A"},
		{70, model.ResultPass, "B"},
		{65.5, model.ResultPass, "C"},
		{50, model.ResultPass, "D"},
		{49.99, model.ResultPass, "D"},
		{40, model.ResultPass, "D"},
		{39.99, model.ResultFail, "F"},
		{0, model.ResultFail, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, DeriveStatus(tc.marks), "status for %v", tc.marks)
		assert.Equal(t, tc.grade, DeriveGrade(tc.marks), "grade for %v", tc.marks)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(3, 0))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 100, Percentage(4, 4))
	// 12.5 取偶
	assert.Equal(t, 12, Percentage(1, 8))
}

func TestRoundMarks(t *testing.T) {
	assert.Equal(t, 40.0, RoundMarks(39.996))
	assert.Equal(t, 39.99, RoundMarks(39.994))
	assert.Equal(t, 85.5, RoundMarks(85.5))
	assert.Equal(t, 0.0, RoundMarks(-0.004))
}

func TestQuizOutcome(t *testing.T) {
	status, grade := quizOutcome(true)
	assert.Equal(t, model.ResultPass, status)
	assert.Equal(t, "A", grade)

	status, grade = quizOutcome(false)
	assert.Equal(t, model.ResultFail, status)
	assert.Equal(t, "F", grade)
}
