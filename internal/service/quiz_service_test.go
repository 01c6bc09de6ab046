package service

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuiz_ScoresAndStoresResults(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Lektion 1")
	q1 := testutil.CreateMCQ(t, db, material.MaterialID, "A")
	q2 := testutil.CreateMCQ(t, db, material.MaterialID, "C")
	q3 := testutil.CreateMCQ(t, db, material.MaterialID, "B")

	svc := NewQuizService(db, repository.NewQuizRepository(db))
	out, err := svc.SubmitQuiz(context.Background(), f.Student.StudentID, []QuizAnswer{
		{MCQID: q1.MCQID, SelectedOption: "a"},
		{MCQID: q2.MCQID, SelectedOption: "C"},
		{MCQID: q3.MCQID, SelectedOption: "D"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.CorrectCount)
	assert.Equal(t, 3, out.TotalCount)
	assert.Equal(t, 67, out.ScorePercentage)
	require.Len(t, out.Results, 3)
	assert.True(t, out.Results[0].IsCorrect)
	assert.False(t, out.Results[2].IsCorrect)
	assert.Equal(t, "B", out.Results[2].CorrectOption)

	rows, err := svc.GetQuizResults(context.Background(), f.Student.StudentID, material.MaterialID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, model.ResultPass, rows[0].Status)
	assert.Equal(t, "A", rows[0].Grade)
	assert.Equal(t, model.ResultFail, rows[2].Status)
	assert.Equal(t, "F", rows[2].Grade)
}

func TestSubmitQuiz_UnknownQuestionCountsTowardTotal(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Lektion 1")
	q := testutil.CreateMCQ(t, db, material.MaterialID, "A")

	svc := NewQuizService(db, repository.NewQuizRepository(db))
	out, err := svc.SubmitQuiz(context.Background(), f.Student.StudentID, []QuizAnswer{
		{MCQID: q.MCQID, SelectedOption: "A"},
		{MCQID: 9999, SelectedOption: "A"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.CorrectCount)
	assert.Equal(t, 2, out.TotalCount)
	assert.Equal(t, 50, out.ScorePercentage)
	require.Len(t, out.Results, 1)
	assert.Equal(t, q.MCQID, out.Results[0].MCQID)

	var count int64
	require.NoError(t, db.Model(&model.Result{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitQuiz_ResubmissionOverwritesResult(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Lektion 1")
	q := testutil.CreateMCQ(t, db, material.MaterialID, "B")

	svc := NewQuizService(db, repository.NewQuizRepository(db))
	ctx := context.Background()

	_, err := svc.SubmitQuiz(ctx, f.Student.StudentID, []QuizAnswer{{MCQID: q.MCQID, SelectedOption: "A"}})
	require.NoError(t, err)
	_, err = svc.SubmitQuiz(ctx, f.Student.StudentID, []QuizAnswer{{MCQID: q.MCQID, SelectedOption: "b"}})
	require.NoError(t, err)

	var results []model.Result
	require.NoError(t, db.Where("student_id = ? AND mcq_id = ?", f.Student.StudentID, q.MCQID).Find(&results).Error)
	require.Len(t, results, 1)
	assert.Equal(t, model.ResultPass, results[0].Status)
	assert.Equal(t, "A", results[0].Grade)
}

func TestSubmitQuiz_EmptyAnswers(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)

	svc := NewQuizService(db, repository.NewQuizRepository(db))
	out, err := svc.SubmitQuiz(context.Background(), f.Student.StudentID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalCount)
	assert.Equal(t, 0, out.ScorePercentage)
	assert.Empty(t, out.Results)
}

func TestSubmitQuiz_FailureRollsBackWholeBatch(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Lektion 1")
	q1 := testutil.CreateMCQ(t, db, material.MaterialID, "A")
	q2 := testutil.CreateMCQ(t, db, material.MaterialID, "B")
	q3 := testutil.CreateMCQ(t, db, material.MaterialID, "C")

	// 第一题写入成功，第二题失败
	testutil.FailResultWrites(t, db, 1)

	svc := NewQuizService(db, repository.NewQuizRepository(db))
	_, err := svc.SubmitQuiz(context.Background(), f.Student.StudentID, []QuizAnswer{
		{MCQID: q1.MCQID, SelectedOption: "A"},
		{MCQID: q2.MCQID, SelectedOption: "B"},
		{MCQID: q3.MCQID, SelectedOption: "C"},
	})
	require.ErrorIs(t, err, testutil.ErrResultWrite)

	var count int64
	require.NoError(t, db.Model(&model.Result{}).Count(&count).Error)
	assert.Zero(t, count)
}
