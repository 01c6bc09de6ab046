package repository

import (
	"context"
	"lls_backend/internal/model"

	"gorm.io/gorm"
)

// AdminRepository 缴费、证书、反馈和沟通记录，均为直接读写
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func byStudent(q *gorm.DB, studentID *uint) *gorm.DB {
	if studentID != nil {
		return q.Where("student_id = ?", *studentID)
	}
	return q
}

func (r *AdminRepository) CreatePayment(ctx context.Context, p *model.Payment) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *AdminRepository) ListPayments(ctx context.Context, studentID *uint) ([]model.Payment, error) {
	payments := make([]model.Payment, 0)
	err := byStudent(r.DB.WithContext(ctx), studentID).Order("payment_id desc").Find(&payments).Error
	return payments, err
}

func (r *AdminRepository) CreateCertificate(ctx context.Context, c *model.Certificate) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *AdminRepository) ListCertificates(ctx context.Context, studentID *uint) ([]model.Certificate, error) {
	certs := make([]model.Certificate, 0)
	err := byStudent(r.DB.WithContext(ctx), studentID).Order("certificate_id desc").Find(&certs).Error
	return certs, err
}

func (r *AdminRepository) CreateFeedback(ctx context.Context, f *model.Feedback) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

func (r *AdminRepository) ListFeedback(ctx context.Context, studentID *uint) ([]model.Feedback, error) {
	feedback := make([]model.Feedback, 0)
	err := byStudent(r.DB.WithContext(ctx), studentID).Order("feedback_id desc").Find(&feedback).Error
	return feedback, err
}

func (r *AdminRepository) CreateCommunication(ctx context.Context, c *model.Communication) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *AdminRepository) ListCommunications(ctx context.Context, submissionID, resultID *uint) ([]model.Communication, error) {
	comms := make([]model.Communication, 0)
	q := r.DB.WithContext(ctx)
	if submissionID != nil {
		q = q.Where("submission_id = ?", *submissionID)
	}
	if resultID != nil {
		q = q.Where("result_id = ?", *resultID)
	}
	err := q.Order("sent_date desc").Find(&comms).Error
	return comms, err
}
