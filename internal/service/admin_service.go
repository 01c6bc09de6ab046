package service

import (
	"context"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AdminService 缴费、证书、反馈、沟通记录，仅做默认值填充
type AdminService struct {
	Repo *repository.AdminRepository
	Now  func() time.Time
}

func NewAdminService(repo *repository.AdminRepository) *AdminService {
	return &AdminService{Repo: repo, Now: time.Now}
}

func (s *AdminService) RecordPayment(ctx context.Context, p *model.Payment) error {
	if p.Status == "" {
		p.Status = model.PaymentCompleted
	}
	if time.Time(p.Date).IsZero() {
		p.Date = today(s.Now())
	}
	return s.Repo.CreatePayment(ctx, p)
}

func (s *AdminService) ListPayments(ctx context.Context, studentID *uint) ([]model.Payment, error) {
	return s.Repo.ListPayments(ctx, studentID)
}

// IssueCertificate 未提供证书编号时生成 CERT-<uuid>
func (s *AdminService) IssueCertificate(ctx context.Context, c *model.Certificate) error {
	if c.CertificateNumber == "" {
		c.CertificateNumber = "CERT-" + strings.ToUpper(uuid.NewString())
	}
	if c.Status == "" {
		c.Status = model.CertificateIssued
	}
	if time.Time(c.IssueDate).IsZero() {
		c.IssueDate = today(s.Now())
	}
	return s.Repo.CreateCertificate(ctx, c)
}

func (s *AdminService) ListCertificates(ctx context.Context, studentID *uint) ([]model.Certificate, error) {
	return s.Repo.ListCertificates(ctx, studentID)
}

func (s *AdminService) SubmitFeedback(ctx context.Context, f *model.Feedback) error {
	if time.Time(f.Date).IsZero() {
		f.Date = today(s.Now())
	}
	return s.Repo.CreateFeedback(ctx, f)
}

func (s *AdminService) ListFeedback(ctx context.Context, studentID *uint) ([]model.Feedback, error) {
	return s.Repo.ListFeedback(ctx, studentID)
}

// LogCommunication 仅记录，不发送
func (s *AdminService) LogCommunication(ctx context.Context, c *model.Communication) error {
	if c.SentDate.IsZero() {
		c.SentDate = s.Now()
	}
	return s.Repo.CreateCommunication(ctx, c)
}

func (s *AdminService) ListCommunications(ctx context.Context, submissionID, resultID *uint) ([]model.Communication, error) {
	return s.Repo.ListCommunications(ctx, submissionID, resultID)
}
