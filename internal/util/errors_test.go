package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handle(t *testing.T, err error) (int, Response) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, err)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   ErrorCode
	}{
		{"app error", ErrSubmissionNotFound, http.StatusNotFound, CodeNotFound},
		{"wrapped app error", fmt.Errorf("evaluate: %w", ErrMarksOutOfRange), http.StatusBadRequest, CodeValidation},
		{"forbidden", ErrPermissionDenied, http.StatusForbidden, CodeForbidden},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, CodeNotFound},
		{"duplicate", gorm.ErrDuplicatedKey, http.StatusConflict, CodeConflict},
		{"foreign key", gorm.ErrForeignKeyViolated, http.StatusBadRequest, CodeValidation},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := handle(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.status, resp.Code)
			assert.Equal(t, tc.code, resp.ErrorCode)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("dob", "2001-04-30")
	require.NoError(t, err)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Contains(t, fmt.Sprint(v), "2001-04-30")

	_, err = ParseDate("dob", "30/04/2001")
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, CodeValidation, appErr.Code)

	opt, err := ParseOptionalDate("due_date", nil)
	require.NoError(t, err)
	assert.Nil(t, opt)

	empty := ""
	opt, err = ParseOptionalDate("due_date", &empty)
	require.NoError(t, err)
	assert.Nil(t, opt)
}
