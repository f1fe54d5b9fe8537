package repository

import (
	"context"

	"gorm.io/gorm"

	"royal-planner/backend/internal/model"
)

// GradeSettingRepository 成绩对照表数据访问接口
type GradeSettingRepository interface {
	Create(ctx context.Context, setting *model.GradeSetting) error
	BatchCreate(ctx context.Context, settings []model.GradeSetting) error
	GetByID(ctx context.Context, userID, id string) (*model.GradeSetting, error)
	GetByGrade(ctx context.Context, userID, grade string) (*model.GradeSetting, error)
	ListByUser(ctx context.Context, userID string) ([]model.GradeSetting, error)
	Update(ctx context.Context, setting *model.GradeSetting) error
	Delete(ctx context.Context, userID, id string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}

type gradeSettingRepo struct {
	db *gorm.DB
}

// NewGradeSettingRepo 创建 GradeSettingRepository 实例
func NewGradeSettingRepo(db *gorm.DB) GradeSettingRepository {
	return &gradeSettingRepo{db: db}
}

func (r *gradeSettingRepo) Create(ctx context.Context, setting *model.GradeSetting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *gradeSettingRepo) BatchCreate(ctx context.Context, settings []model.GradeSetting) error {
	if len(settings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&settings).Error
}

func (r *gradeSettingRepo) GetByID(ctx context.Context, userID, id string) (*model.GradeSetting, error) {
	var setting model.GradeSetting
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND grade_setting_id = ?", userID, id).
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *gradeSettingRepo) GetByGrade(ctx context.Context, userID, grade string) (*model.GradeSetting, error) {
	var setting model.GradeSetting
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND grade = ?", userID, grade).
		First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *gradeSettingRepo) ListByUser(ctx context.Context, userID string) ([]model.GradeSetting, error) {
	var settings []model.GradeSetting
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("points DESC, grade ASC").
		Find(&settings).Error
	return settings, err
}

func (r *gradeSettingRepo) Update(ctx context.Context, setting *model.GradeSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

func (r *gradeSettingRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND grade_setting_id = ?", userID, id).
		Delete(&model.GradeSetting{}).Error
}

func (r *gradeSettingRepo) DeleteAllByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.GradeSetting{}).Error
}

// [自证通过] internal/repository/grade_setting_repo.go
