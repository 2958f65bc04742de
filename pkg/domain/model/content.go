/*
 * @Description: 内容核心领域模型
 * @Author: 安知鱼
 * @Date: 2026-08-12 10:22:41
 * @LastEditTime: 2026-08-29 16:40:12
 * @LastEditors: 安知鱼
 */
package model

import "time"

// ContentType 定义了可审核内容的种类。
type ContentType string

const (
	ContentTypePost             ContentType = "post"
	ContentTypeComment          ContentType = "comment"
	ContentTypeEvent            ContentType = "event"
	ContentTypeUserBio          ContentType = "user_bio"
	ContentTypeGroupDescription ContentType = "group_description"
)

// IsValid 检查内容类型是否在允许的集合内。
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypePost, ContentTypeComment, ContentTypeEvent,
		ContentTypeUserBio, ContentTypeGroupDescription:
		return true
	}
	return false
}

// PublicationStatus 定义了内容的发布生命周期状态，与审核状态相互独立。
type PublicationStatus string

const (
	PubStatusDraft     PublicationStatus = "draft"
	PubStatusPublished PublicationStatus = "published"
	PubStatusArchived  PublicationStatus = "archived"
	PubStatusDeleted   PublicationStatus = "deleted"
)

// ModerationStatus 定义了内容的审核状态。
type ModerationStatus string

const (
	ModStatusPending  ModerationStatus = "pending"
	ModStatusApproved ModerationStatus = "approved"
	ModStatusRejected ModerationStatus = "rejected"
	ModStatusFlagged  ModerationStatus = "flagged"
)

// ContentMetadata 是分析器从正文中推导出的元数据。
type ContentMetadata struct {
	WordCount   int      `json:"wordCount"`
	ReadingTime int      `json:"readingTime"` // 预计阅读时长（分钟），最小为 1
	Language    string   `json:"language"`    // "es" | "en" | "unknown"
	Mentions    []string `json:"mentions"`
	Hashtags    []string `json:"hashtags"`
	Links       []string `json:"links"`
}

// ModerationRecord 记录了一条内容当前的审核结论。
type ModerationRecord struct {
	Status        ModerationStatus `json:"status"`
	Score         float64          `json:"score"` // 0-100，越高越安全
	Flags         []string         `json:"flags"`
	ReviewedBy    string           `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time       `json:"reviewedAt,omitempty"`
	AutoModerated bool             `json:"autoModerated"`
}

// ContentItem 是一个可审核的内容单元，是本系统的核心领域模型。
// ID 是由 idgen 生成的不可变公共 ID。
type ContentItem struct {
	ID          string            `json:"id"`
	Type        ContentType       `json:"type"`
	AuthorID    string            `json:"authorId"`
	Title       string            `json:"title,omitempty"`
	Body        string            `json:"body"`
	MediaRefs   []string          `json:"mediaRefs"`
	Metadata    ContentMetadata   `json:"metadata"`
	Moderation  ModerationRecord  `json:"moderation"`
	Status      PublicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	PublishedAt *time.Time        `json:"publishedAt,omitempty"`
}

// IsPublished 检查内容是否已发布。
func (c *ContentItem) IsPublished() bool {
	return c.Status == PubStatusPublished
}

// NeedsReview 检查内容是否在人工审核队列中。
func (c *ContentItem) NeedsReview() bool {
	return c.Moderation.Status == ModStatusFlagged || c.Moderation.Status == ModStatusPending
}

// ReviewPriority 返回该内容在人工审核队列中的排序权重。
// 标记越多、自动评分越低的内容排序越靠前。
func (c *ContentItem) ReviewPriority() float64 {
	return float64(len(c.Moderation.Flags))*10 + (100 - c.Moderation.Score)
}
