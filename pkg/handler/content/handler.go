/*
 * @Description: 内容公开接口
 * @Author: 安知鱼
 * @Date: 2026-08-15 14:35:48
 * @LastEditTime: 2026-08-31 10:02:19
 * @LastEditors: 安知鱼
 */
package content

import (
	"net/http"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
	"github.com/mundo-tango/mundo-tango-app/pkg/handler/content/dto"
	"github.com/mundo-tango/mundo-tango-app/pkg/response"
	content_service "github.com/mundo-tango/mundo-tango-app/pkg/service/content"
	parser_service "github.com/mundo-tango/mundo-tango-app/pkg/service/parser"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc       *content_service.Service
	parserSvc *parser_service.Service
}

func NewHandler(svc *content_service.Service, parserSvc *parser_service.Service) *Handler {
	return &Handler{svc: svc, parserSvc: parserSvc}
}

// Create
// @Summary      创建内容
// @Description  创建一条内容并异步进入审核队列，立即返回新内容的ID
// @Tags         公开内容
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateContentRequest true "内容参数"
// @Success      201 {object} response.Response{data=dto.CreateContentResponse} "成功响应"
// @Failure      400 {object} response.Response "请求参数错误"
// @Router       /public/content [post]
func (h *Handler) Create(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}

	contentID, err := h.svc.CreateContent(c.Request.Context(), req.AuthorID, model.ContentType(req.Type), req.Body, content_service.CreateOptions{
		Title:              req.Title,
		MediaRefs:          req.MediaRefs,
		PublishImmediately: req.PublishImmediately,
	})
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "创建内容失败: "+err.Error())
		return
	}

	response.Created(c, dto.CreateContentResponse{ContentID: contentID}, "创建成功")
}

// Update
// @Summary      更新内容
// @Description  更新内容并追加一个历史版本，正文变更会触发重新审核
// @Tags         公开内容
// @Accept       json
// @Produce      json
// @Param        id path string true "内容的公共ID"
// @Param        body body dto.UpdateContentRequest true "变更集"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "内容不存在"
// @Router       /public/content/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	contentID := c.Param("id")

	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}

	ok, err := h.svc.UpdateContent(c.Request.Context(), contentID, content_service.UpdateFields{
		Body:      req.Body,
		Title:     req.Title,
		MediaRefs: req.MediaRefs,
	}, req.EditorID, req.Reason)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "更新内容失败: "+err.Error())
		return
	}
	if !ok {
		response.NotFound(c, "内容不存在")
		return
	}

	response.Success(c, nil, "更新成功")
}

// Get
// @Summary      获取内容详情
// @Tags         公开内容
// @Produce      json
// @Param        id path string true "内容的公共ID"
// @Success      200 {object} response.Response{data=model.ContentItem} "成功响应"
// @Failure      404 {object} response.Response "内容不存在"
// @Router       /public/content/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	item, err := h.svc.GetContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取内容失败: "+err.Error())
		return
	}
	if item == nil {
		response.NotFound(c, "内容不存在")
		return
	}

	response.Success(c, item, "获取成功")
}

// ListByAuthor
// @Summary      获取作者的内容列表
// @Tags         公开内容
// @Produce      json
// @Param        authorId path string true "作者ID"
// @Param        status query string false "按发布状态过滤" Enums(draft, published, archived, deleted)
// @Success      200 {object} response.Response{data=[]model.ContentItem} "成功响应"
// @Router       /public/content/author/{authorId} [get]
func (h *Handler) ListByAuthor(c *gin.Context) {
	var status *model.PublicationStatus
	if raw := c.Query("status"); raw != "" {
		s := model.PublicationStatus(raw)
		status = &s
	}

	items, err := h.svc.GetContentByAuthor(c.Request.Context(), c.Param("authorId"), status)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取内容列表失败: "+err.Error())
		return
	}

	response.Success(c, items, "获取成功")
}

// ListVersions
// @Summary      获取内容的历史版本列表
// @Tags         公开内容
// @Produce      json
// @Param        id path string true "内容的公共ID"
// @Success      200 {object} response.Response{data=[]model.ContentVersion} "成功响应"
// @Router       /public/content/{id}/versions [get]
func (h *Handler) ListVersions(c *gin.Context) {
	versions, err := h.svc.GetContentVersions(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取历史版本失败: "+err.Error())
		return
	}

	response.Success(c, versions, "获取成功")
}

// Report
// @Summary      举报内容
// @Description  追加一条举报记录；已通过审核的内容会被重新标记待审
// @Tags         公开内容
// @Accept       json
// @Produce      json
// @Param        id path string true "内容的公共ID"
// @Param        body body dto.ReportContentRequest true "举报参数"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "内容不存在"
// @Router       /public/content/{id}/report [post]
func (h *Handler) Report(c *gin.Context) {
	var req dto.ReportContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}

	ok, err := h.svc.ReportContent(c.Request.Context(), c.Param("id"), req.ReporterID, req.Reason)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "举报失败: "+err.Error())
		return
	}
	if !ok {
		response.NotFound(c, "内容不存在")
		return
	}

	response.Success(c, nil, "举报成功")
}

// Render
// @Summary      富文本渲染预览
// @Description  把受限的 Markdown 子集渲染为净化后的 HTML
// @Tags         公开内容
// @Accept       json
// @Produce      json
// @Param        body body dto.RenderRequest true "待渲染的正文"
// @Success      200 {object} response.Response{data=dto.RenderResponse} "成功响应"
// @Router       /public/content/render [post]
func (h *Handler) Render(c *gin.Context) {
	var req dto.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}

	html, err := h.parserSvc.Render(c.Request.Context(), req.Content)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "渲染失败: "+err.Error())
		return
	}

	response.Success(c, dto.RenderResponse{HTML: html}, "渲染成功")
}
