/*
 * @Description: 站内通知领域模型
 * @Author: 安知鱼
 * @Date: 2026-08-18 09:12:30
 * @LastEditTime: 2026-08-18 09:12:35
 * @LastEditors: 安知鱼
 */
package model

import "time"

// NotificationKind 定义了站内通知的种类。
type NotificationKind string

const (
	NotifyContentModerated NotificationKind = "content_moderated"
	NotifyContentReviewed  NotificationKind = "content_reviewed"
	NotifyContentReported  NotificationKind = "content_reported"
)

// Notification 是投递给内容作者的一条站内通知。
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Kind      NotificationKind `json:"kind"`
	ContentID string           `json:"contentId"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
