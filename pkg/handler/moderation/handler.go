/*
 * @Description: 审核后台接口
 * @Author: 安知鱼
 * @Date: 2026-08-15 15:10:33
 * @LastEditTime: 2026-08-31 10:07:44
 * @LastEditors: 安知鱼
 */
package moderation

import (
	"net/http"
	"strconv"

	"github.com/mundo-tango/mundo-tango-app/internal/pkg/auth"
	"github.com/mundo-tango/mundo-tango-app/pkg/handler/content/dto"
	"github.com/mundo-tango/mundo-tango-app/pkg/response"
	content_service "github.com/mundo-tango/mundo-tango-app/pkg/service/content"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *content_service.Service
}

func NewHandler(svc *content_service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListQueue
// @Summary      获取人工审核队列
// @Description  返回 flagged/pending 的内容，按标记数量与反向评分排序
// @Tags         审核后台
// @Security     BearerAuth
// @Produce      json
// @Param        limit query int false "最多返回条数" default(50)
// @Success      200 {object} response.Response{data=[]model.ContentItem} "成功响应"
// @Router       /moderation/queue [get]
func (h *Handler) ListQueue(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.svc.GetContentForModeration(c.Request.Context(), limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取审核队列失败: "+err.Error())
		return
	}

	response.Success(c, items, "获取成功")
}

// Review
// @Summary      提交人工审核结论
// @Tags         审核后台
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "内容的公共ID"
// @Param        body body dto.ReviewContentRequest true "审核结论"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "内容不存在"
// @Router       /moderation/content/{id}/review [post]
func (h *Handler) Review(c *gin.Context) {
	var req dto.ReviewContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}

	claims, ok := c.MustGet(auth.ClaimsKey).(*auth.CustomClaims)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "无法识别审核员身份")
		return
	}

	updated, err := h.svc.ReviewContent(c.Request.Context(), c.Param("id"), claims.UserID,
		content_service.ReviewDecision(req.Decision), req.Notes)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "提交审核结论失败: "+err.Error())
		return
	}
	if !updated {
		response.NotFound(c, "内容不存在")
		return
	}

	response.Success(c, nil, "审核完成")
}

// ListEvents
// @Summary      获取内容的审核审计记录
// @Tags         审核后台
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "内容的公共ID"
// @Success      200 {object} response.Response{data=[]model.ModerationEvent} "成功响应"
// @Router       /moderation/content/{id}/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.svc.GetModerationEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取审计记录失败: "+err.Error())
		return
	}

	response.Success(c, events, "获取成功")
}

// Stats
// @Summary      获取内容与审核的运行统计
// @Tags         审核后台
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} response.Response{data=content_service.SystemStats} "成功响应"
// @Router       /moderation/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.GetSystemStats(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取统计失败: "+err.Error())
		return
	}

	response.Success(c, stats, "获取成功")
}
