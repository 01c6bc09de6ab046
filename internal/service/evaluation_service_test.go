package service

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/internal/testutil"
	"lls_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type evaluationFixture struct {
	db           *gorm.DB
	student      model.Student
	submissionID uint
	svc          *EvaluationService
}

func newEvaluationFixture(t *testing.T) *evaluationFixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Schreiben")
	assignment := testutil.CreateAssignment(t, db, material.MaterialID, "Brief")

	submissions := NewSubmissionService(db, repository.NewSubmissionRepository(db))
	sub, err := submissions.SubmitAssignment(context.Background(), SubmitAssignmentInput{
		AssignmentID:   assignment.AssignmentID,
		StudentID:      f.Student.StudentID,
		AssignmentText: strPtr("Liebe Anna"),
	})
	require.NoError(t, err)

	return &evaluationFixture{
		db:           db,
		student:      f.Student,
		submissionID: sub.SubmissionID,
		svc:          NewEvaluationService(db, repository.NewEvaluationRepository(db), repository.NewSubmissionRepository(db)),
	}
}

func (f *evaluationFixture) results(t *testing.T) []model.Result {
	t.Helper()
	var results []model.Result
	require.NoError(t, f.db.Where("student_id = ? AND evaluation_id IS NOT NULL", f.student.StudentID).Find(&results).Error)
	return results
}

func TestEvaluateSubmission_FirstEvaluationDerivesResult(t *testing.T) {
	f := newEvaluationFixture(t)

	out, err := f.svc.EvaluateSubmission(context.Background(), EvaluateInput{SubmissionID: f.submissionID, Marks: 85, Feedback: strPtr("Sehr gut")})
	require.NoError(t, err)
	assert.True(t, out.Created)
	require.NotNil(t, out.Status)
	require.NotNil(t, out.Grade)
	assert.Equal(t, model.ResultPass, *out.Status)
	assert.Equal(t, "A", *out.Grade)

	results := f.results(t)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].EvaluationID)
	assert.Equal(t, out.EvaluationID, *results[0].EvaluationID)
	assert.Equal(t, "A", results[0].Grade)

	rows, err := f.svc.GetResultsForStudent(context.Background(), f.student.StudentID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Marks)
	assert.InDelta(t, 85, *rows[0].Marks, 0.001)
}

func TestEvaluateSubmission_ReevaluationKeepsResultByDefault(t *testing.T) {
	f := newEvaluationFixture(t)
	ctx := context.Background()

	first, err := f.svc.EvaluateSubmission(ctx, EvaluateInput{SubmissionID: f.submissionID, Marks: 85})
	require.NoError(t, err)

	second, err := f.svc.EvaluateSubmission(ctx, EvaluateInput{SubmissionID: f.submissionID, Marks: 30, Feedback: strPtr("Bitte überarbeiten")})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.EvaluationID, second.EvaluationID)
	assert.Nil(t, second.Status)
	assert.Nil(t, second.Grade)

	var evaluations []model.AssignmentEvaluation
	require.NoError(t, f.db.Where("submission_id = ?", f.submissionID).Find(&evaluations).Error)
	require.Len(t, evaluations, 1)
	assert.InDelta(t, 30, evaluations[0].Marks, 0.001)

	results := f.results(t)
	require.Len(t, results, 1)
	assert.Equal(t, model.ResultPass, results[0].Status)
	assert.Equal(t, "A", results[0].Grade)
}

func TestEvaluateSubmission_ReevaluationRederivesWhenEnabled(t *testing.T) {
	f := newEvaluationFixture(t)
	f.svc.SetRederiveOnReevaluation(true)
	ctx := context.Background()

	_, err := f.svc.EvaluateSubmission(ctx, EvaluateInput{SubmissionID: f.submissionID, Marks: 85})
	require.NoError(t, err)
	second, err := f.svc.EvaluateSubmission(ctx, EvaluateInput{SubmissionID: f.submissionID, Marks: 30})
	require.NoError(t, err)
	require.NotNil(t, second.Status)
	assert.Equal(t, model.ResultFail, *second.Status)

	results := f.results(t)
	require.Len(t, results, 1)
	assert.Equal(t, model.ResultFail, results[0].Status)
	assert.Equal(t, "F", results[0].Grade)
}

func TestEvaluateSubmission_Errors(t *testing.T) {
	f := newEvaluationFixture(t)
	ctx := context.Background()

	_, err := f.svc.EvaluateSubmission(ctx, EvaluateInput{SubmissionID: 9999, Marks: 50})
	assert.ErrorIs(t, err, util.ErrSubmissionNotFound)

	_, err = f.svc.EvaluateSubmission(ctx, EvaluateInput{SubmissionID: f.submissionID, Marks: 100.5})
	assert.ErrorIs(t, err, util.ErrMarksOutOfRange)

	_, err = f.svc.EvaluateSubmission(ctx, EvaluateInput{SubmissionID: f.submissionID, Marks: -1})
	assert.ErrorIs(t, err, util.ErrMarksOutOfRange)

	var count int64
	require.NoError(t, f.db.Model(&model.AssignmentEvaluation{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEvaluateSubmission_ResultFailureRollsBackEvaluation(t *testing.T) {
	f := newEvaluationFixture(t)
	testutil.FailResultWrites(t, f.db, 0)

	_, err := f.svc.EvaluateSubmission(context.Background(), EvaluateInput{SubmissionID: f.submissionID, Marks: 70})
	require.ErrorIs(t, err, testutil.ErrResultWrite)

	var evaluations, results int64
	require.NoError(t, f.db.Model(&model.AssignmentEvaluation{}).Count(&evaluations).Error)
	require.NoError(t, f.db.Model(&model.Result{}).Count(&results).Error)
	assert.Zero(t, evaluations)
	assert.Zero(t, results)
}

func TestEvaluateSubmission_MarksRoundedBeforeGrading(t *testing.T) {
	f := newEvaluationFixture(t)

	out, err := f.svc.EvaluateSubmission(context.Background(), EvaluateInput{SubmissionID: f.submissionID, Marks: 39.996})
	require.NoError(t, err)
	require.NotNil(t, out.Status)
	assert.Equal(t, model.ResultPass, *out.Status)
	assert.Equal(t, "D", *out.Grade)

	var evaluation model.AssignmentEvaluation
	require.NoError(t, f.db.Where("submission_id = ?", f.submissionID).First(&evaluation).Error)
	assert.InDelta(t, 40, evaluation.Marks, 0.0001)

	// 四舍五入后超过 100 仍然拒绝
	_, err = f.svc.EvaluateSubmission(context.Background(), EvaluateInput{SubmissionID: f.submissionID, Marks: 100.005})
	assert.ErrorIs(t, err, util.ErrMarksOutOfRange)
}

func TestEvaluateSubmission_PassMarkBoundary(t *testing.T) {
	f := newEvaluationFixture(t)

	out, err := f.svc.EvaluateSubmission(context.Background(), EvaluateInput{SubmissionID: f.submissionID, Marks: 40})
	require.NoError(t, err)
	assert.Equal(t, model.ResultPass, *out.Status)
	assert.Equal(t, "D", *out.Grade)
}
