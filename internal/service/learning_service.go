package service

import (
	"context"
	"errors"
	"io"
	"lls_backend/internal/model"
	"lls_backend/internal/repository"
	"lls_backend/internal/util"
	"lls_backend/pkg/logger"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UploadMaterialInput struct {
	CourseID     uint
	Title        string
	Description  string
	MaterialType model.MaterialType
	UploadedBy   *uint
	FileName     string
	File         io.Reader
}

// LearningService 学习材料、作业、单选题的维护
type LearningService struct {
	Repo    *repository.LearningRepository
	Storage *StorageService
	// ProbeDuration 读取视频时长（分钟），测试中可替换
	ProbeDuration func(path string) (int, error)
	Now           func() time.Time
}

func NewLearningService(repo *repository.LearningRepository, storage *StorageService) *LearningService {
	return &LearningService{
		Repo:          repo,
		Storage:       storage,
		ProbeDuration: util.ProbeDurationMinutes,
		Now:           time.Now,
	}
}

func today(now time.Time) datatypes.Date {
	y, m, d := now.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// CreateMaterial order_index 由仓储在事务内分配
func (s *LearningService) CreateMaterial(ctx context.Context, material *model.StudyMaterial) error {
	if material.MaterialType == "" {
		material.MaterialType = model.MaterialVideo
	}
	material.UploadDate = today(s.Now())
	return s.Repo.CreateMaterial(ctx, material)
}

// UploadMaterial 保存上传文件并创建材料，视频文件会探测时长
func (s *LearningService) UploadMaterial(ctx context.Context, in UploadMaterialInput) (*model.StudyMaterial, error) {
	tmp, err := os.CreateTemp("", "lls-upload-*")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, in.File); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	mimeType, err := util.ValidateMimeType(tmp, util.AllowedUploadMimeTypes)
	isVideo := util.IsVideo(mimeType) || util.HasVideoExtension(in.FileName)
	if err != nil && !isVideo {
		return nil, util.ErrUnsupportedFileType
	}
	if isVideo && !util.IsVideo(mimeType) {
		mimeType = util.MimeOctetStream
	}

	material := &model.StudyMaterial{
		CourseID:     in.CourseID,
		Title:        in.Title,
		Description:  in.Description,
		MaterialType: in.MaterialType,
		UploadedBy:   in.UploadedBy,
	}

	if isVideo {
		if material.MaterialType == "" {
			material.MaterialType = model.MaterialVideo
		}
		if minutes, err := s.ProbeDuration(tmp.Name()); err != nil {
			logger.Log.Warn("Failed to probe video duration",
				zap.String("file", in.FileName),
				zap.Error(err))
		} else {
			material.DurationMinutes = &minutes
		}
	} else if material.MaterialType == "" {
		material.MaterialType = model.MaterialDocument
	}

	objectName := ObjectName("materials", in.FileName, s.Now())
	url, err := s.Storage.UploadFile(ctx, objectName, tmp.Name(), mimeType)
	if err != nil {
		return nil, err
	}
	if isVideo {
		material.VideoURL = url
	} else {
		material.FilePath = url
	}

	if err := s.CreateMaterial(ctx, material); err != nil {
		return nil, err
	}

	logger.Log.Info("Material uploaded",
		zap.Uint("material_id", material.MaterialID),
		zap.Uint("course_id", material.CourseID),
		zap.String("object", objectName))
	return material, nil
}

func (s *LearningService) ListCourseMaterials(ctx context.Context, courseID uint) ([]model.MaterialSummary, error) {
	return s.Repo.ListMaterialsByCourse(ctx, courseID)
}

func (s *LearningService) GetMaterial(ctx context.Context, id uint) (*model.MaterialDetail, error) {
	material, err := s.Repo.FindMaterialByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMaterialNotFound
		}
		return nil, err
	}

	assignments, err := s.Repo.ListAssignments(ctx, id)
	if err != nil {
		return nil, err
	}
	mcqs, err := s.Repo.ListMCQs(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.MaterialDetail{
		StudyMaterial: *material,
		Assignments:   assignments,
		MCQs:          mcqs,
	}, nil
}

func (s *LearningService) DeleteMaterial(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteMaterial(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrMaterialNotFound
		}
		return err
	}
	logger.Log.Info("Material deleted", zap.Uint("material_id", id))
	return nil
}

func (s *LearningService) CreateAssignment(ctx context.Context, a *model.Assignment) error {
	return s.Repo.CreateAssignment(ctx, a)
}

func (s *LearningService) ListAssignments(ctx context.Context, materialID uint) ([]model.Assignment, error) {
	return s.Repo.ListAssignments(ctx, materialID)
}

func (s *LearningService) CreateMCQ(ctx context.Context, q *model.MCQ) error {
	q.CorrectOption = strings.ToUpper(strings.TrimSpace(q.CorrectOption))
	return s.Repo.CreateMCQ(ctx, q)
}

func (s *LearningService) ListMCQs(ctx context.Context, materialID uint) ([]model.MCQ, error) {
	return s.Repo.ListMCQs(ctx, materialID)
}

func (s *LearningService) DeleteMCQ(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteMCQ(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrMCQNotFound
		}
		return err
	}
	return nil
}
