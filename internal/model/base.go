package model

import (
	"time"

	"github.com/google/uuid"
)

// Timestamps 通用时间戳字段
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordStatus 学年、专业、课程、教职工共用的启用状态
type RecordStatus string

const (
	StatusActive   RecordStatus = "Active"
	StatusInactive RecordStatus = "Inactive"
)

func GenerateUUID() string {
	return uuid.New().String()
}
