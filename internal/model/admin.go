package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "Card"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentCash         PaymentMethod = "Cash"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

// swagger:model Payment
type Payment struct {
	PaymentID uint            `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id"`
	StudentID uint            `gorm:"not null;index" json:"student_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date      datatypes.Date  `json:"date"`
	Method    PaymentMethod   `gorm:"size:20" json:"method"`
	Status    PaymentStatus   `gorm:"size:10;default:'Pending'" json:"status"`
	Timestamps
}

func (Payment) TableName() string {
	return "payment"
}

type CertificateStatus string

const (
	CertificateIssued  CertificateStatus = "Issued"
	CertificatePending CertificateStatus = "Pending"
	CertificateRevoked CertificateStatus = "Revoked"
)

// swagger:model Certificate
type Certificate struct {
	CertificateID     uint              `gorm:"column:certificate_id;primaryKey;autoIncrement" json:"certificate_id"`
	StudentID         uint              `gorm:"not null;index" json:"student_id"`
	ResultID          *uint             `gorm:"index" json:"result_id"`
	IssueDate         datatypes.Date    `json:"issue_date"`
	CertificateNumber string            `gorm:"size:50;uniqueIndex" json:"certificate_number"`
	Status            CertificateStatus `gorm:"size:10;default:'Pending'" json:"status"`
	Timestamps
}

func (Certificate) TableName() string {
	return "certificate"
}

// swagger:model Feedback
type Feedback struct {
	FeedbackID uint           `gorm:"column:feedback_id;primaryKey;autoIncrement" json:"feedback_id"`
	StudentID  uint           `gorm:"not null;index" json:"student_id"`
	Rating     int            `json:"rating"`
	Comments   string         `gorm:"type:text" json:"comments"`
	Date       datatypes.Date `json:"date"`
	Timestamps
}

func (Feedback) TableName() string {
	return "feedback"
}

// Communication 仅作留档，不做任何推送
// swagger:model Communication
type Communication struct {
	CommunicationID uint      `gorm:"column:communication_id;primaryKey;autoIncrement" json:"communication_id"`
	SubmissionID    *uint     `gorm:"index" json:"submission_id"`
	ResultID        *uint     `gorm:"index" json:"result_id"`
	Message         string    `gorm:"type:text;not null" json:"message"`
	SentDate        time.Time `json:"sent_date"`
	Timestamps
}

func (Communication) TableName() string {
	return "communication"
}
