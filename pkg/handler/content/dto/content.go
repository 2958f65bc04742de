/*
 * @Description: 内容接口的请求/响应结构
 * @Author: 安知鱼
 * @Date: 2026-08-15 14:20:11
 * @LastEditTime: 2026-08-30 23:40:28
 * @LastEditors: 安知鱼
 */
package dto

// CreateContentRequest 是创建内容的请求体。
type CreateContentRequest struct {
	AuthorID           string   `json:"authorId" binding:"required"`
	Type               string   `json:"type" binding:"required"`
	Body               string   `json:"body" binding:"required"`
	Title              string   `json:"title"`
	MediaRefs          []string `json:"mediaRefs"`
	PublishImmediately bool     `json:"publishImmediately"`
}

// CreateContentResponse 返回新内容的公共 ID。
type CreateContentResponse struct {
	ContentID string `json:"contentId"`
}

// UpdateContentRequest 是更新内容的请求体，nil 字段表示不变更。
type UpdateContentRequest struct {
	Body      *string  `json:"body"`
	Title     *string  `json:"title"`
	MediaRefs []string `json:"mediaRefs"`
	EditorID  string   `json:"editorId" binding:"required"`
	Reason    string   `json:"reason"`
}

// ReportContentRequest 是举报内容的请求体。
type ReportContentRequest struct {
	ReporterID string `json:"reporterId" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

// RenderRequest 是富文本渲染预览的请求体。
type RenderRequest struct {
	Content string `json:"content" binding:"required"`
}

// RenderResponse 返回渲染后的 HTML。
type RenderResponse struct {
	HTML string `json:"html"`
}

// ReviewContentRequest 是人工审核的请求体。
type ReviewContentRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Notes    string `json:"notes"`
}
