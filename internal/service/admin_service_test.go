package service

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/internal/testutil"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Defaults(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	ctx := context.Background()

	svc := NewAdminService(repository.NewAdminRepository(db))
	fixed := time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC)
	svc.Now = func() time.Time { return fixed }

	payment := &model.Payment{StudentID: f.Student.StudentID, Amount: decimal.RequireFromString("150.00"), Method: model.PaymentCard}
	require.NoError(t, svc.RecordPayment(ctx, payment))
	assert.Equal(t, model.PaymentCompleted, payment.Status)
	assert.Equal(t, 2024, time.Time(payment.Date).Year())

	cert := &model.Certificate{StudentID: f.Student.StudentID}
	require.NoError(t, svc.IssueCertificate(ctx, cert))
	assert.True(t, strings.HasPrefix(cert.CertificateNumber, "CERT-"))
	assert.Equal(t, model.CertificateIssued, cert.Status)

	comm := &model.Communication{Message: "Bitte Aufgabe nachreichen"}
	require.NoError(t, svc.LogCommunication(ctx, comm))
	assert.True(t, comm.SentDate.Equal(fixed))

	other := model.Student{Name: "Mia Roth", Email: "mia@lls.test"}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, svc.RecordPayment(ctx, &model.Payment{StudentID: other.StudentID, Amount: decimal.NewFromInt(20), Method: model.PaymentCash}))

	all, err := svc.ListPayments(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListPayments(ctx, &f.Student.StudentID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.True(t, mine[0].Amount.Equal(decimal.NewFromInt(150)))
}

func TestListStaffStudents(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	ctx := context.Background()

	enrolled := model.Student{Name: "Mia Roth", Email: "mia@lls.test", CourseID: &f.Course.CourseID}
	require.NoError(t, db.Create(&enrolled).Error)

	svc := NewStudentService(repository.NewStudentRepository(db), repository.NewAcademicRepository(db))

	rows, err := svc.ListStaffStudents(ctx, f.Staff.StaffID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Mia Roth", rows[0].Name)
	require.NotNil(t, rows[0].CourseName)
	assert.Equal(t, f.Course.CourseName, *rows[0].CourseName)

	foreign := f.Course.CourseID + 50
	_, err = svc.ListStaffStudents(ctx, f.Staff.StaffID, &foreign)
	assert.Error(t, err)

	none, err := svc.ListStaffStudents(ctx, f.Staff.StaffID+99, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
