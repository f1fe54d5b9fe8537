package handler

import (
	"github.com/gin-gonic/gin"

	"royal-planner/backend/internal/service"
	"royal-planner/backend/pkg/response"
)

// AnalyticsHandler 学业分析模块 HTTP 处理器
// 所有端点均为只读派生数据，Service 层带用户级缓存
type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

// NewAnalyticsHandler 创建 AnalyticsHandler
func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// GPAHistory 逐学期 GPA 历史
// GET /api/v1/analytics/gpa-history
func (h *AnalyticsHandler) GPAHistory(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.GPAHistory(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GPATrend GPA 走势（最近两学期差值与方向）
// GET /api/v1/analytics/gpa-trend
func (h *AnalyticsHandler) GPATrend(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.GPATrend(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CumulativeGPA 全部课程并集的累计 GPA
// GET /api/v1/analytics/cumulative-gpa
func (h *AnalyticsHandler) CumulativeGPA(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.CumulativeGPA(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CourseAnalysis 课程表现分析（最佳/最差）
// GET /api/v1/analytics/course-analysis
func (h *AnalyticsHandler) CourseAnalysis(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.CourseAnalysis(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GradeDistribution 成绩分布
// GET /api/v1/analytics/grade-distribution
func (h *AnalyticsHandler) GradeDistribution(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.GradeDistribution(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DeadlineClustering 截止日聚集分析与周预警
// GET /api/v1/analytics/deadline-clustering
func (h *AnalyticsHandler) DeadlineClustering(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.DeadlineClustering(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// WorkloadWeeks 逐周工作量
// GET /api/v1/analytics/workload-weeks
func (h *AnalyticsHandler) WorkloadWeeks(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.WorkloadWeeks(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// WorkloadDistribution 工作量按类型分布
// GET /api/v1/analytics/workload-distribution
func (h *AnalyticsHandler) WorkloadDistribution(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticsSvc.WorkloadDistribution(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/analytics_handler.go
