/*
 * @Description: 内容服务，聚合审核流水线的全部公开操作
 * @Author: 安知鱼
 * @Date: 2026-08-13 15:27:44
 * @LastEditTime: 2026-08-31 09:48:12
 * @LastEditors: 安知鱼
 */
package content

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mundo-tango/mundo-tango-app/internal/pkg/event"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/repository"
	"github.com/mundo-tango/mundo-tango-app/pkg/service/analyzer"
	"github.com/mundo-tango/mundo-tango-app/pkg/service/moderation"
)

// CreateOptions 是创建内容时的可选参数。
type CreateOptions struct {
	Title              string
	MediaRefs          []string
	PublishImmediately bool
}

// UpdateFields 是更新内容时的变更集，nil 字段表示不变更。
type UpdateFields struct {
	Body      *string
	Title     *string
	MediaRefs []string
}

// ReviewDecision 是人工审核的结论。
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

// SystemStats 是 GetSystemStats 返回的运行统计。
type SystemStats struct {
	TotalContent           int                              `json:"totalContent"`
	Last24Hours            int                              `json:"last24Hours"`
	ByStatus               map[model.PublicationStatus]int  `json:"byStatus"`
	ByModerationStatus     map[model.ModerationStatus]int   `json:"byModerationStatus"`
	ProcessingQueue        int                              `json:"processingQueue"`
	ModerationRules        int                              `json:"moderationRules"`
	AverageModerationScore float64                          `json:"averageModerationScore"`
}

// Service 持有全部存储与流水线依赖，是审核子系统的公开入口。
// 存储的生命周期由宿主应用持有并显式注入，不使用包级单例。
type Service struct {
	contentRepo repository.ContentRepository
	versionRepo repository.ContentVersionRepository
	eventRepo   repository.ModerationEventRepository
	registry    *moderation.Registry
	scorer      *moderation.Scorer
	queue       *moderation.Queue
	bus         *event.EventBus
}

// NewService 创建内容服务并接管审核队列的处理函数。
func NewService(
	contentRepo repository.ContentRepository,
	versionRepo repository.ContentVersionRepository,
	eventRepo repository.ModerationEventRepository,
	registry *moderation.Registry,
	scorer *moderation.Scorer,
	bus *event.EventBus,
	drainDelay time.Duration,
) *Service {
	s := &Service{
		contentRepo: contentRepo,
		versionRepo: versionRepo,
		eventRepo:   eventRepo,
		registry:    registry,
		scorer:      scorer,
		bus:         bus,
	}
	s.queue = moderation.NewQueue(s.moderateByID, drainDelay)
	return s
}

// Queue 返回内部审核队列（任务监控与测试使用）。
func (s *Service) Queue() *moderation.Queue {
	return s.queue
}

// CreateContent 创建一条内容：计算元数据、写入初始版本、
// 加入审核队列后立即返回新内容的 ID。审核是异步的。
func (s *Service) CreateContent(ctx context.Context, authorID string, contentType model.ContentType, body string, opts CreateOptions) (string, error) {
	if !contentType.IsValid() {
		return "", fmt.Errorf("未知的内容类型: %s", contentType)
	}

	now := time.Now()
	item := &model.ContentItem{
		Type:      contentType,
		AuthorID:  authorID,
		Title:     opts.Title,
		Body:      body,
		MediaRefs: append([]string(nil), opts.MediaRefs...),
		Metadata:  analyzer.Analyze(body),
		Moderation: model.ModerationRecord{
			Status: model.ModStatusPending,
			Score:  0,
			Flags:  []string{},
		},
		Status:    model.PubStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if opts.PublishImmediately {
		item.Status = model.PubStatusPublished
		item.PublishedAt = &now
	}

	contentID, err := s.contentRepo.Create(ctx, item)
	if err != nil {
		return "", fmt.Errorf("创建内容失败: %w", err)
	}

	// 初始版本 v1
	if _, err := s.versionRepo.Append(ctx, contentID, &model.ContentVersion{
		Body:      body,
		MediaRefs: item.MediaRefs,
		CreatedBy: authorID,
		CreatedAt: now,
	}); err != nil {
		return "", fmt.Errorf("写入初始版本失败: %w", err)
	}

	s.queue.Enqueue(contentID)
	s.bus.Publish(event.ContentCreated, item)
	log.Printf("[Content] Created content %s (%s) by user %s", contentID, contentType, authorID)

	return contentID, nil
}

// UpdateContent 更新内容并追加一个新版本；正文变更会把审核状态
// 重置为 pending 并重新入队。内容不存在时返回 false。
func (s *Service) UpdateContent(ctx context.Context, contentID string, updates UpdateFields, editorID, reason string) (bool, error) {
	item, err := s.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}

	newBody := item.Body
	if updates.Body != nil {
		newBody = *updates.Body
	}
	newMediaRefs := item.MediaRefs
	if updates.MediaRefs != nil {
		newMediaRefs = updates.MediaRefs
	}

	version, err := s.versionRepo.Append(ctx, contentID, &model.ContentVersion{
		Body:         newBody,
		MediaRefs:    newMediaRefs,
		ChangeReason: reason,
		CreatedBy:    editorID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return false, fmt.Errorf("追加内容版本失败: %w", err)
	}

	bodyChanged := updates.Body != nil
	if bodyChanged {
		item.Body = *updates.Body
		item.Metadata = analyzer.Analyze(item.Body)
		// 任何编辑都会重新打开审核
		item.Moderation.Status = model.ModStatusPending
		item.Moderation.Score = 0
		item.Moderation.Flags = []string{}
	}
	if updates.Title != nil {
		item.Title = *updates.Title
	}
	if updates.MediaRefs != nil {
		item.MediaRefs = updates.MediaRefs
	}
	item.UpdatedAt = time.Now()

	if _, err := s.contentRepo.Update(ctx, item); err != nil {
		return false, fmt.Errorf("保存内容失败: %w", err)
	}

	if bodyChanged {
		s.queue.Enqueue(contentID)
	}

	s.bus.Publish(event.ContentUpdated, item)
	log.Printf("[Content] Updated content %s (v%d)", contentID, version.Version)

	return true, nil
}

// ReportContent 记录一次用户举报。已通过审核的内容会被翻转为
// flagged 并附加 User Report 标记；其余状态只追加举报事件。
func (s *Service) ReportContent(ctx context.Context, contentID, reporterID, reason string) (bool, error) {
	item, err := s.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}

	if err := s.eventRepo.Append(ctx, &model.ModerationEvent{
		ID:         uuid.New().String(),
		ContentID:  contentID,
		Kind:       model.EventUserReport,
		Details:    reason,
		ReporterID: reporterID,
		Timestamp:  time.Now(),
	}); err != nil {
		return false, fmt.Errorf("记录举报事件失败: %w", err)
	}

	if item.Moderation.Status == model.ModStatusApproved {
		item.Moderation.Status = model.ModStatusFlagged
		item.Moderation.Flags = append(item.Moderation.Flags, "User Report")
		if _, err := s.contentRepo.Update(ctx, item); err != nil {
			return false, fmt.Errorf("保存内容失败: %w", err)
		}
	}

	s.bus.Publish(event.ContentReported, item)
	log.Printf("[Content] Content %s reported by user %s: %s", contentID, reporterID, reason)

	return true, nil
}

// ReviewContent 落定一次人工审核结论并记录 manual_review 事件。
// 内容不存在时返回 false。
func (s *Service) ReviewContent(ctx context.Context, contentID, moderatorID string, decision ReviewDecision, notes string) (bool, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return false, fmt.Errorf("未知的审核结论: %s", decision)
	}

	item, err := s.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, nil
	}

	now := time.Now()
	item.Moderation.ReviewedBy = moderatorID
	item.Moderation.ReviewedAt = &now

	if decision == DecisionApprove {
		item.Moderation.Status = model.ModStatusApproved
		if item.Status == model.PubStatusDraft {
			item.Status = model.PubStatusPublished
			item.PublishedAt = &now
		}
	} else {
		item.Moderation.Status = model.ModStatusRejected
		item.Status = model.PubStatusArchived
	}

	if _, err := s.contentRepo.Update(ctx, item); err != nil {
		return false, fmt.Errorf("保存内容失败: %w", err)
	}

	details := notes
	if details == "" {
		details = "No notes"
	}
	if err := s.eventRepo.Append(ctx, &model.ModerationEvent{
		ID:          uuid.New().String(),
		ContentID:   contentID,
		Kind:        model.EventManualReview,
		Details:     fmt.Sprintf("%s: %s", strings.ToUpper(string(decision)), details),
		ModeratorID: moderatorID,
		Timestamp:   now,
	}); err != nil {
		return false, fmt.Errorf("记录审核事件失败: %w", err)
	}

	s.bus.Publish(event.ContentReviewed, item)
	log.Printf("[Content] Content %s reviewed by moderator %s: %s", contentID, moderatorID, decision)

	return true, nil
}

// GetContent 返回内容，不存在时返回 nil。
func (s *Service) GetContent(ctx context.Context, contentID string) (*model.ContentItem, error) {
	return s.contentRepo.FindByID(ctx, contentID)
}

// GetContentByAuthor 返回作者的内容列表，可按发布状态过滤。
func (s *Service) GetContentByAuthor(ctx context.Context, authorID string, status *model.PublicationStatus) ([]*model.ContentItem, error) {
	return s.contentRepo.FindByAuthor(ctx, authorID, status)
}

// GetContentForModeration 返回待人工处理的内容，limit 默认 50。
func (s *Service) GetContentForModeration(ctx context.Context, limit int) ([]*model.ContentItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.contentRepo.FindForModeration(ctx, limit)
}

// GetContentVersions 返回内容的全部历史版本。
func (s *Service) GetContentVersions(ctx context.Context, contentID string) ([]*model.ContentVersion, error) {
	return s.versionRepo.ListByContent(ctx, contentID)
}

// GetModerationEvents 返回内容的全部审核审计记录。
func (s *Service) GetModerationEvents(ctx context.Context, contentID string) ([]*model.ModerationEvent, error) {
	return s.eventRepo.ListByContent(ctx, contentID)
}

// GetSystemStats 汇总全量内容的运行统计。
func (s *Service) GetSystemStats(ctx context.Context) (*SystemStats, error) {
	all, err := s.contentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &SystemStats{
		TotalContent:       len(all),
		ByStatus:           make(map[model.PublicationStatus]int),
		ByModerationStatus: make(map[model.ModerationStatus]int),
		ProcessingQueue:    s.queue.Len(),
		ModerationRules:    s.registry.Len(),
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	scoreSum := 0.0
	for _, item := range all {
		stats.ByStatus[item.Status]++
		stats.ByModerationStatus[item.Moderation.Status]++
		if item.CreatedAt.After(cutoff) {
			stats.Last24Hours++
		}
		scoreSum += item.Moderation.Score
	}
	if len(all) > 0 {
		stats.AverageModerationScore = scoreSum / float64(len(all))
	}

	return stats, nil
}

// CleanupExpired 物理删除在 deleted 状态停留超过 retention 的内容，
// 并级联清理其版本与审计记录。返回清理的条数，由定时任务调用。
func (s *Service) CleanupExpired(ctx context.Context, retention time.Duration) (int, error) {
	deleted, err := s.contentRepo.DeleteExpired(ctx, time.Now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("清理过期内容失败: %w", err)
	}
	for _, id := range deleted {
		if err := s.versionRepo.DeleteByContent(ctx, id); err != nil {
			return len(deleted), fmt.Errorf("清理内容 %s 的版本失败: %w", id, err)
		}
		if err := s.eventRepo.DeleteByContent(ctx, id); err != nil {
			return len(deleted), fmt.Errorf("清理内容 %s 的审计记录失败: %w", id, err)
		}
	}
	return len(deleted), nil
}

// moderateByID 是审核队列的处理函数：加载、评分、落盘。
// 队列里可能存在已被物理清理的 ID，直接跳过。
func (s *Service) moderateByID(ctx context.Context, contentID string) {
	item, err := s.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		log.Printf("[Content] 加载待审核内容 %s 失败: %v", contentID, err)
		return
	}
	if item == nil {
		return
	}

	s.scorer.Moderate(ctx, item)

	if _, err := s.contentRepo.Update(ctx, item); err != nil {
		log.Printf("[Content] 保存审核结论失败 %s: %v", contentID, err)
	}
}
