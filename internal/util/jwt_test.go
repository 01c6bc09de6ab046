package util

import (
	"lls_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-with-enough-length-0123456789"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(7, model.RoleStaff, "Anna Becker", "anna@lls.test", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, model.RoleStaff, claims.Role)
	assert.Equal(t, "anna@lls.test", claims.Email)

	_, err = ParseJWT(token, "another-secret")
	assert.Error(t, err)

	expired, err := GenerateJWT(7, model.RoleStaff, "Anna Becker", "anna@lls.test", testSecret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, testSecret)
	assert.Error(t, err)
}

func TestClaimsScopes(t *testing.T) {
	student := &Claims{UserID: 3, Role: model.RoleStudent}
	staff := &Claims{UserID: 5, Role: model.RoleStaff}
	admin := &Claims{Role: model.RoleAdmin}
	var anonymous *Claims

	assert.True(t, student.CanActAsStudent(3))
	assert.False(t, student.CanActAsStudent(4))
	assert.True(t, staff.CanActAsStudent(4))
	assert.True(t, admin.CanActAsStudent(4))
	assert.False(t, anonymous.CanActAsStudent(3))

	assert.True(t, staff.CanActAsStaff(5))
	assert.False(t, staff.CanActAsStaff(6))
	assert.True(t, admin.CanActAsStaff(6))
	assert.False(t, student.CanActAsStaff(3))
	assert.False(t, anonymous.CanActAsStaff(5))
}
