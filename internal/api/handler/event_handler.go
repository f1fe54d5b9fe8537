package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/service"
	"royal-planner/backend/pkg/response"
)

// EventHandler 日程事件模块 HTTP 处理器
type EventHandler struct {
	eventSvc     service.EventService
	analyticsSvc service.AnalyticsService
}

// NewEventHandler 创建 EventHandler
func NewEventHandler(eventSvc service.EventService, analyticsSvc service.AnalyticsService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc, analyticsSvc: analyticsSvc}
}

// List 获取原始事件列表（周期模板不展开）
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.eventSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListExpanded 获取展开视图：周期模板展开为具体实例
// GET /api/v1/events/expanded?weeks=16
func (h *EventHandler) ListExpanded(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var query dto.ExpandedEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.eventSvc.ListExpanded(c.Request.Context(), userID, query.Weeks)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Create 创建事件
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.eventSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	h.analyticsSvc.Invalidate(userID)
	response.Created(c, result)
}

// Update 更新事件（整体替换语义）
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.eventSvc.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 11401, "事件不存在")
			return
		}
		response.InternalError(c)
		return
	}

	h.analyticsSvc.Invalidate(userID)
	response.OK(c, result)
}

// Delete 删除事件
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 11401, "事件不存在")
			return
		}
		response.InternalError(c)
		return
	}

	h.analyticsSvc.Invalidate(userID)
	response.OK(c, nil)
}

// ImportICS 从 ICS 课表文件导入事件
// POST /api/v1/events/import-ics
// multipart/form-data, field="file"
func (h *EventHandler) ImportICS(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 11402, "请上传 ICS 文件")
		return
	}
	defer file.Close()

	result, err := h.eventSvc.ImportICS(c.Request.Context(), userID, file)
	if err != nil {
		response.BadRequest(c, 11403, "ICS 文件解析失败")
		return
	}

	h.analyticsSvc.Invalidate(userID)
	response.Created(c, result)
}

// [自证通过] internal/api/handler/event_handler.go
