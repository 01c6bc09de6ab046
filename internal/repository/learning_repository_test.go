package repository

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateMaterial_AppendsOrderIndexPerCourse(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewLearningRepository(db)
	ctx := context.Background()

	first := &model.StudyMaterial{CourseID: f.Course.CourseID, Title: "Begrüßung"}
	second := &model.StudyMaterial{CourseID: f.Course.CourseID, Title: "Zahlen"}
	otherCourse := &model.StudyMaterial{CourseID: f.Course.CourseID + 1, Title: "Andere"}
	require.NoError(t, repo.CreateMaterial(ctx, first))
	require.NoError(t, repo.CreateMaterial(ctx, second))
	require.NoError(t, repo.CreateMaterial(ctx, otherCourse))

	assert.Equal(t, 1, first.OrderIndex)
	assert.Equal(t, 2, second.OrderIndex)
	assert.Equal(t, 1, otherCourse.OrderIndex)

	testutil.CreateMCQ(t, db, second.MaterialID, "A")
	testutil.CreateAssignment(t, db, second.MaterialID, "Zahlen schreiben")

	list, err := repo.ListMaterialsByCourse(ctx, f.Course.CourseID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Begrüßung", list[0].Title)
	assert.Equal(t, "Zahlen", list[1].Title)
	assert.EqualValues(t, 1, list[1].MCQCount)
	assert.EqualValues(t, 1, list[1].AssignmentCount)
}

func TestListMCQs_HidesCorrectOption(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Quiz")
	testutil.CreateMCQ(t, db, material.MaterialID, "C")

	mcqs, err := NewLearningRepository(db).ListMCQs(context.Background(), material.MaterialID)
	require.NoError(t, err)
	require.Len(t, mcqs, 1)
	assert.Empty(t, mcqs[0].CorrectOption)
	assert.NotEmpty(t, mcqs[0].OptionA)
}

func TestDeleteMaterial_CascadesDependents(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	ctx := context.Background()

	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Lektion 1")
	keep := testutil.CreateMaterial(t, db, f.Course.CourseID, "Lektion 2")
	q := testutil.CreateMCQ(t, db, material.MaterialID, "A")
	keptQ := testutil.CreateMCQ(t, db, keep.MaterialID, "A")
	a := testutil.CreateAssignment(t, db, material.MaterialID, "Brief")

	sub := model.AssignmentSubmission{AssignmentID: a.AssignmentID, StudentID: f.Student.StudentID, SubmittedDate: time.Now()}
	require.NoError(t, db.Create(&sub).Error)
	eval := model.AssignmentEvaluation{SubmissionID: sub.SubmissionID, Marks: 75}
	require.NoError(t, db.Create(&eval).Error)

	quizResult := model.Result{StudentID: f.Student.StudentID, MCQID: &q.MCQID, Status: model.ResultPass, Grade: "A"}
	evalResult := model.Result{StudentID: f.Student.StudentID, EvaluationID: &eval.EvaluationID, Status: model.ResultPass, Grade: "B"}
	keptResult := model.Result{StudentID: f.Student.StudentID, MCQID: &keptQ.MCQID, Status: model.ResultFail, Grade: "F"}
	require.NoError(t, db.Create(&quizResult).Error)
	require.NoError(t, db.Create(&evalResult).Error)
	require.NoError(t, db.Create(&keptResult).Error)

	cert := model.Certificate{StudentID: f.Student.StudentID, ResultID: &evalResult.ResultID, CertificateNumber: "CERT-TEST", Status: model.CertificateIssued}
	require.NoError(t, db.Create(&cert).Error)
	require.NoError(t, db.Create(&model.Communication{SubmissionID: &sub.SubmissionID, Message: "Bitte prüfen", SentDate: time.Now()}).Error)
	require.NoError(t, db.Create(&model.Communication{ResultID: &quizResult.ResultID, Message: "Gut gemacht", SentDate: time.Now()}).Error)

	require.NoError(t, NewLearningRepository(db).DeleteMaterial(ctx, material.MaterialID))

	count := func(m interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		return n
	}
	assert.EqualValues(t, 1, count(&model.StudyMaterial{}))
	assert.EqualValues(t, 1, count(&model.MCQ{}))
	assert.EqualValues(t, 0, count(&model.Assignment{}))
	assert.EqualValues(t, 0, count(&model.AssignmentSubmission{}))
	assert.EqualValues(t, 0, count(&model.AssignmentEvaluation{}))
	assert.EqualValues(t, 1, count(&model.Result{}))
	assert.EqualValues(t, 0, count(&model.Communication{}))

	var reloaded model.Certificate
	require.NoError(t, db.First(&reloaded, cert.CertificateID).Error)
	assert.Nil(t, reloaded.ResultID)

	err := NewLearningRepository(db).DeleteMaterial(ctx, material.MaterialID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMCQ_RemovesResults(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	material := testutil.CreateMaterial(t, db, f.Course.CourseID, "Quiz")
	q := testutil.CreateMCQ(t, db, material.MaterialID, "A")
	require.NoError(t, db.Create(&model.Result{StudentID: f.Student.StudentID, MCQID: &q.MCQID, Status: model.ResultPass, Grade: "A"}).Error)

	repo := NewLearningRepository(db)
	require.NoError(t, repo.DeleteMCQ(context.Background(), q.MCQID))

	var n int64
	require.NoError(t, db.Model(&model.Result{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.ErrorIs(t, repo.DeleteMCQ(context.Background(), q.MCQID), gorm.ErrRecordNotFound)
}
