package testutil

import (
	"lls_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixture 一门课程、一位教师、一名学生的最小数据集
type Fixture struct {
	Staff   model.Staff
	Course  model.Course
	Student model.Student
}

func Seed(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()

	f := &Fixture{}
	f.Staff = model.Staff{Name: "Anna Becker", Email: "anna@lls.test", Status: model.StatusActive}
	require.NoError(t, db.Create(&f.Staff).Error)

	f.Course = model.Course{CourseName: "German A1", StaffID: &f.Staff.StaffID, Status: model.StatusActive}
	require.NoError(t, db.Create(&f.Course).Error)

	f.Student = model.Student{Name: "Ravi Kumar", Email: "ravi@lls.test"}
	require.NoError(t, db.Create(&f.Student).Error)

	return f
}

func CreateMaterial(t *testing.T, db *gorm.DB, courseID uint, title string) model.StudyMaterial {
	t.Helper()
	m := model.StudyMaterial{CourseID: courseID, Title: title, MaterialType: model.MaterialQuiz}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func CreateMCQ(t *testing.T, db *gorm.DB, materialID uint, correct string) model.MCQ {
	t.Helper()
	q := model.MCQ{
		MaterialID:    materialID,
		Question:      "Wie heißt du?",
		OptionA:       "Ich heiße Ravi",
		OptionB:       "Ich bin gut",
		OptionC:       "Danke",
		OptionD:       "Tschüss",
		CorrectOption: correct,
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func CreateAssignment(t *testing.T, db *gorm.DB, materialID uint, title string) model.Assignment {
	t.Helper()
	a := model.Assignment{MaterialID: materialID, Title: title}
	require.NoError(t, db.Create(&a).Error)
	return a
}
