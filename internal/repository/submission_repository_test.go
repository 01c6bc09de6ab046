package repository

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertIfAbsent_ReportsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Schreiben")
	a := testutil.CreateAssignment(t, db, material.MaterialID, "Brief")
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	created, err := repo.InsertIfAbsent(ctx, &model.AssignmentSubmission{AssignmentID: a.AssignmentID, StudentID: f.Student.StudentID, SubmittedDate: time.Now()})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.InsertIfAbsent(ctx, &model.AssignmentSubmission{AssignmentID: a.AssignmentID, StudentID: f.Student.StudentID, SubmittedDate: time.Now()})
	require.NoError(t, err)
	assert.False(t, created)

	var n int64
	require.NoError(t, db.Model(&model.AssignmentSubmission{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
