/*
 * @Description: 内容历史版本领域模型
 * @Author: 安知鱼
 * @Date: 2026-08-12 10:36:48
 * @LastEditTime: 2026-08-12 10:36:52
 * @LastEditors: 安知鱼
 */
package model

import "time"

// ContentVersion 是内容正文在某一时刻的不可变快照。
// 同一内容的版本号从 1 开始，连续且严格递增，追加后不再变更。
type ContentVersion struct {
	ID           string    `json:"id"`
	ContentID    string    `json:"contentId"`
	Version      int       `json:"version"`
	Body         string    `json:"body"`
	MediaRefs    []string  `json:"mediaRefs"`
	ChangeReason string    `json:"changeReason,omitempty"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
