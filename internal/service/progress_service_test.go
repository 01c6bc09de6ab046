package service

import (
	"context"
	"lls_backend/internal/repository"
	"lls_backend/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProgress_EmptyCourse(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)

	svc := NewProgressService(repository.NewProgressRepository(db))
	p, err := svc.ComputeProgress(context.Background(), f.Student.StudentID, f.Course.CourseID)
	require.NoError(t, err)
	assert.Zero(t, p.TotalItems)
	assert.Zero(t, p.CompletedItems)
	assert.Equal(t, 0, p.ProgressPercentage)
}

func TestComputeProgress_CountsAnsweredAndSubmitted(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	ctx := context.Background()

	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Lektion 1")
	q1 := testutil.CreateMCQ(t, db, material.MaterialID, "A")
	testutil.CreateMCQ(t, db, material.MaterialID, "B")
	assignment := testutil.CreateAssignment(t, db, material.MaterialID, "Brief")

	// 其他课程的题目不计入
	other := testutil.CreateMaterial(t, db, f.Course.CourseID+100, "Fremd")
	otherQ := testutil.CreateMCQ(t, db, other.MaterialID, "A")

	quiz := NewQuizService(db, repository.NewQuizRepository(db))
	_, err := quiz.SubmitQuiz(ctx, f.Student.StudentID, []QuizAnswer{
		{MCQID: q1.MCQID, SelectedOption: "D"},
		{MCQID: otherQ.MCQID, SelectedOption: "A"},
	})
	require.NoError(t, err)

	submissions := NewSubmissionService(db, repository.NewSubmissionRepository(db))
	_, err = submissions.SubmitAssignment(ctx, SubmitAssignmentInput{
		AssignmentID:   assignment.AssignmentID,
		StudentID:      f.Student.StudentID,
		AssignmentText: strPtr("fertig"),
	})
	require.NoError(t, err)

	svc := NewProgressService(repository.NewProgressRepository(db))
	p, err := svc.ComputeProgress(ctx, f.Student.StudentID, f.Course.CourseID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, p.TotalQuizzes)
	assert.EqualValues(t, 1, p.CompletedQuizzes)
	assert.EqualValues(t, 1, p.TotalAssignments)
	assert.EqualValues(t, 1, p.SubmittedAssignments)
	assert.EqualValues(t, 3, p.TotalItems)
	assert.EqualValues(t, 2, p.CompletedItems)
	assert.Equal(t, 67, p.ProgressPercentage)
}
