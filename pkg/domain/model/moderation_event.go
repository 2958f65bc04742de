/*
 * @Description: 审核事件（审计记录）领域模型
 * @Author: 安知鱼
 * @Date: 2026-08-12 10:40:19
 * @LastEditTime: 2026-08-12 10:40:23
 * @LastEditors: 安知鱼
 */
package model

import "time"

// ModerationEventKind 定义了审核审计记录的种类。
type ModerationEventKind string

const (
	EventAutoFlag     ModerationEventKind = "auto_flag"
	EventUserReport   ModerationEventKind = "user_report"
	EventManualReview ModerationEventKind = "manual_review"
	EventAppeal       ModerationEventKind = "appeal"
)

// ModerationEvent 是一条不可变的审核审计记录。
// 同一内容的事件按创建顺序追加，不会被重排或修改。
type ModerationEvent struct {
	ID          string              `json:"id"`
	ContentID   string              `json:"contentId"`
	Kind        ModerationEventKind `json:"kind"`
	Details     string              `json:"details"`
	ModeratorID string              `json:"moderatorId,omitempty"`
	ReporterID  string              `json:"reporterId,omitempty"`
	Timestamp   time.Time           `json:"timestamp"`
}
