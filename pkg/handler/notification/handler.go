/*
 * @Description: 站内通知接口
 * @Author: 安知鱼
 * @Date: 2026-08-18 11:22:05
 * @LastEditTime: 2026-08-18 11:22:10
 * @LastEditors: 安知鱼
 */
package notification

import (
	"net/http"

	"github.com/mundo-tango/mundo-tango-app/internal/pkg/auth"
	"github.com/mundo-tango/mundo-tango-app/pkg/response"
	notification_service "github.com/mundo-tango/mundo-tango-app/pkg/service/notification"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *notification_service.Service
}

func NewHandler(svc *notification_service.Service) *Handler {
	return &Handler{svc: svc}
}

// List
// @Summary      获取当前用户的通知列表
// @Tags         通知
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} response.Response{data=[]model.Notification} "成功响应"
// @Router       /notifications [get]
func (h *Handler) List(c *gin.Context) {
	claims, ok := c.MustGet(auth.ClaimsKey).(*auth.CustomClaims)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "无法识别用户身份")
		return
	}

	response.Success(c, h.svc.ListByUser(claims.UserID), "获取成功")
}

// MarkRead
// @Summary      标记一条通知为已读
// @Tags         通知
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "通知ID"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "通知不存在"
// @Router       /notifications/{id}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	claims, ok := c.MustGet(auth.ClaimsKey).(*auth.CustomClaims)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "无法识别用户身份")
		return
	}

	if !h.svc.MarkRead(claims.UserID, c.Param("id")) {
		response.NotFound(c, "通知不存在")
		return
	}

	response.Success(c, nil, "已读")
}
