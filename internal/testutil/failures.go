package testutil

import (
	"errors"
	"lls_backend/internal/model"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ErrResultWrite = errors.New("result write failed")

// FailResultWrites 从第 after+1 次写入成绩起返回 ErrResultWrite
func FailResultWrites(t *testing.T, db *gorm.DB, after int64) {
	t.Helper()
	var writes atomic.Int64
	err := db.Callback().Create().Before("gorm:create").Register("testutil:fail_result", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*model.Result); !ok {
			return
		}
		if writes.Add(1) > after {
			tx.AddError(ErrResultWrite)
		}
	})
	require.NoError(t, err)
}
