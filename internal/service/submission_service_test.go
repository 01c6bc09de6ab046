package service

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSubmitAssignment_ResubmissionOverwrites(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Schreiben")
	assignment := testutil.CreateAssignment(t, db, material.MaterialID, "Brief")

	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)
	clock := first

	svc := NewSubmissionService(db, repository.NewSubmissionRepository(db))
	svc.Now = func() time.Time { return clock }
	ctx := context.Background()

	created, err := svc.SubmitAssignment(ctx, SubmitAssignmentInput{
		AssignmentID:   assignment.AssignmentID,
		StudentID:      f.Student.StudentID,
		AssignmentText: strPtr("Hallo"),
	})
	require.NoError(t, err)
	assert.True(t, created.Created)

	clock = second
	updated, err := svc.SubmitAssignment(ctx, SubmitAssignmentInput{
		AssignmentID:   assignment.AssignmentID,
		StudentID:      f.Student.StudentID,
		AssignmentText: strPtr("Hallo, wie geht's?"),
	})
	require.NoError(t, err)
	assert.False(t, updated.Created)
	assert.Equal(t, created.SubmissionID, updated.SubmissionID)

	var rows []model.AssignmentSubmission
	require.NoError(t, db.Where("assignment_id = ? AND student_id = ?", assignment.AssignmentID, f.Student.StudentID).Find(&rows).Error)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].AssignmentText)
	assert.Equal(t, "Hallo, wie geht's?", *rows[0].AssignmentText)
	assert.True(t, rows[0].SubmittedDate.Equal(second), "submitted_date %v", rows[0].SubmittedDate)
}

func TestGetSubmissionsForStudentMaterial_ReportsEvaluation(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Schreiben")
	a1 := testutil.CreateAssignment(t, db, material.MaterialID, "Brief")
	a2 := testutil.CreateAssignment(t, db, material.MaterialID, "Postkarte")

	submissions := NewSubmissionService(db, repository.NewSubmissionRepository(db))
	evaluations := NewEvaluationService(db, repository.NewEvaluationRepository(db), repository.NewSubmissionRepository(db))
	ctx := context.Background()

	s1, err := submissions.SubmitAssignment(ctx, SubmitAssignmentInput{AssignmentID: a1.AssignmentID, StudentID: f.Student.StudentID, AssignmentText: strPtr("eins")})
	require.NoError(t, err)
	_, err = submissions.SubmitAssignment(ctx, SubmitAssignmentInput{AssignmentID: a2.AssignmentID, StudentID: f.Student.StudentID, FilePath: strPtr("uploads/karte.pdf")})
	require.NoError(t, err)

	_, err = evaluations.EvaluateSubmission(ctx, EvaluateInput{SubmissionID: s1.SubmissionID, Marks: 72})
	require.NoError(t, err)

	rows, err := submissions.GetSubmissionsForStudentMaterial(ctx, f.Student.StudentID, material.MaterialID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byAssignment := map[uint]model.StudentSubmissionRow{}
	for _, r := range rows {
		byAssignment[r.AssignmentID] = r
	}
	assert.True(t, byAssignment[a1.AssignmentID].IsEvaluated)
	require.NotNil(t, byAssignment[a1.AssignmentID].Marks)
	assert.InDelta(t, 72, *byAssignment[a1.AssignmentID].Marks, 0.001)
	assert.False(t, byAssignment[a2.AssignmentID].IsEvaluated)
	assert.Nil(t, byAssignment[a2.AssignmentID].Marks)

	staffRows, err := submissions.GetSubmissionsForStaff(ctx, f.Staff.StaffID)
	require.NoError(t, err)
	assert.Len(t, staffRows, 2)
	for _, r := range staffRows {
		assert.Equal(t, f.Course.CourseName, r.CourseName)
		assert.Equal(t, f.Student.Name, r.StudentName)
	}
}
