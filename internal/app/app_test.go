package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lls_backend/internal/config"
	"lls_backend/internal/service"
	"lls_backend/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@lls.test"
	adminPassword = "admin-pass"
)

type envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

type client struct {
	t   *testing.T
	app *App
}

func newClient(t *testing.T) *client {
	t.Helper()
	hash, err := service.HashPassword(adminPassword)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.JWT.Secret = "app-test-secret-0123456789abcdefghijkl"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Admin.Email = adminEmail
	cfg.Admin.PasswordHash = hash
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	return &client{t: t, app: New(cfg, testutil.NewDB(t))}
}

func (c *client) do(method, path, token string, body interface{}) (int, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.app.Router.ServeHTTP(w, req)

	var env envelope
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (c *client) login(email, password string) string {
	c.t.Helper()
	status, env := c.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(c.t, http.StatusOK, status, env.Message)
	var out service.LoginResult
	require.NoError(c.t, json.Unmarshal(env.Data, &out))
	return out.Token
}

func decode(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func TestHealth(t *testing.T) {
	c := newClient(t)
	status, env := c.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, http.StatusOK, env.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	c := newClient(t)
	status, env := c.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": adminEmail, "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", env.ErrorCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	c := newClient(t)
	status, _ := c.do(http.MethodPost, "/api/learning/quiz/submit", "", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAssessmentFlow(t *testing.T) {
	c := newClient(t)
	adminToken := c.login(adminEmail, adminPassword)

	status, env := c.do(http.MethodPost, "/api/staff/staff", adminToken, map[string]interface{}{
		"name": "Anna Becker", "email": "anna@lls.test", "password": "staff-pass",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var staff struct {
		StaffID uint `json:"staff_id"`
	}
	decode(t, env, &staff)

	status, env = c.do(http.MethodPost, "/api/academic/courses", adminToken, map[string]interface{}{
		"course_name": "German A1", "staff_id": staff.StaffID,
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var course struct {
		CourseID uint `json:"course_id"`
	}
	decode(t, env, &course)

	staffToken := c.login("anna@lls.test", "staff-pass")

	status, env = c.do(http.MethodPost, "/api/learning/materials", staffToken, map[string]interface{}{
		"course_id": course.CourseID, "title": "Lektion 1", "material_type": "quiz",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var material struct {
		MaterialID uint `json:"material_id"`
		OrderIndex int  `json:"order_index"`
	}
	decode(t, env, &material)
	assert.Equal(t, 1, material.OrderIndex)

	var mcqIDs []uint
	for _, correct := range []string{"b", "C"} {
		status, env = c.do(http.MethodPost, "/api/learning/mcqs", staffToken, map[string]interface{}{
			"material_id": material.MaterialID, "question": "Wie geht's?",
			"option_a": "Gut", "option_b": "Schlecht", "option_c": "Danke", "option_d": "Bitte",
			"correct_option": correct,
		})
		require.Equal(t, http.StatusCreated, status, env.Message)
		var mcq struct {
			MCQID uint `json:"mcq_id"`
		}
		decode(t, env, &mcq)
		mcqIDs = append(mcqIDs, mcq.MCQID)
	}

	status, _ = c.do(http.MethodPost, "/api/learning/mcqs", staffToken, map[string]interface{}{
		"material_id": material.MaterialID, "question": "?", "option_a": "x", "option_b": "y", "correct_option": "E",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = c.do(http.MethodPost, "/api/learning/assignments", staffToken, map[string]interface{}{
		"material_id": material.MaterialID, "title": "Brief", "due_date": "2024-06-30",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var assignment struct {
		AssignmentID uint `json:"assignment_id"`
	}
	decode(t, env, &assignment)

	status, env = c.do(http.MethodPost, "/api/student/register", "", map[string]interface{}{
		"name": "Ravi Kumar", "email": "ravi@lls.test", "password": "student-pass",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var student struct {
		StudentID uint `json:"student_id"`
	}
	decode(t, env, &student)
	studentToken := c.login("ravi@lls.test", "student-pass")

	status, env = c.do(http.MethodGet, fmt.Sprintf("/api/learning/materials/%d/mcqs", material.MaterialID), studentToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotContains(t, string(env.Data), "correct_option")

	// 学生不能创建材料
	status, _ = c.do(http.MethodPost, "/api/learning/materials", studentToken, map[string]interface{}{
		"course_id": course.CourseID, "title": "Nope",
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, env = c.do(http.MethodPost, "/api/learning/quiz/submit", studentToken, map[string]interface{}{
		"student_id": student.StudentID,
		"answers":    []map[string]interface{}{{"mcq_id": mcqIDs[0], "selected_option": "B"}},
	})
	require.Equal(t, http.StatusOK, status, env.Message)
	var quiz service.QuizSubmissionResult
	decode(t, env, &quiz)
	assert.Equal(t, 1, quiz.CorrectCount)
	assert.Equal(t, 100, quiz.ScorePercentage)

	status, _ = c.do(http.MethodPost, "/api/learning/quiz/submit", studentToken, map[string]interface{}{
		"student_id": student.StudentID + 1,
		"answers":    []map[string]interface{}{{"mcq_id": mcqIDs[0], "selected_option": "B"}},
	})
	assert.Equal(t, http.StatusForbidden, status)

	submit := map[string]interface{}{
		"assignment_id": assignment.AssignmentID, "student_id": student.StudentID, "assignment_text": "Liebe Anna",
	}
	status, env = c.do(http.MethodPost, "/api/learning/assignments/submit", studentToken, submit)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var submission service.SubmitAssignmentResult
	decode(t, env, &submission)
	assert.True(t, submission.Created)

	status, env = c.do(http.MethodPost, "/api/learning/assignments/submit", studentToken, submit)
	require.Equal(t, http.StatusOK, status, env.Message)

	status, _ = c.do(http.MethodPost, "/api/submission/evaluations", studentToken, map[string]interface{}{
		"submission_id": submission.SubmissionID, "marks": 90,
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = c.do(http.MethodPost, "/api/submission/evaluations", staffToken, map[string]interface{}{
		"submission_id": submission.SubmissionID, "marks": 120,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = c.do(http.MethodPost, "/api/submission/evaluations", staffToken, map[string]interface{}{
		"submission_id": submission.SubmissionID, "marks": 82, "feedback": "Gut",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var evaluation service.EvaluateResult
	decode(t, env, &evaluation)
	require.NotNil(t, evaluation.Grade)
	assert.Equal(t, "A", *evaluation.Grade)

	status, env = c.do(http.MethodGet, fmt.Sprintf("/api/learning/student/%d/course/%d/progress", student.StudentID, course.CourseID), studentToken, nil)
	require.Equal(t, http.StatusOK, status)
	var progress struct {
		TotalItems         int64 `json:"total_items"`
		CompletedItems     int64 `json:"completed_items"`
		ProgressPercentage int   `json:"progress_percentage"`
	}
	decode(t, env, &progress)
	assert.EqualValues(t, 3, progress.TotalItems)
	assert.EqualValues(t, 2, progress.CompletedItems)
	assert.Equal(t, 67, progress.ProgressPercentage)

	status, env = c.do(http.MethodGet, fmt.Sprintf("/api/submission/staff/%d/submissions", staff.StaffID), staffToken, nil)
	require.Equal(t, http.StatusOK, status)
	var rows []struct {
		IsEvaluated bool   `json:"is_evaluated"`
		StudentName string `json:"student_name"`
	}
	decode(t, env, &rows)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsEvaluated)
	assert.Equal(t, "Ravi Kumar", rows[0].StudentName)
}
