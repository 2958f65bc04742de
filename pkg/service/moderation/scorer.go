/*
 * @Description: 审核评分器，本系统的核心算法
 * @Author: 安知鱼
 * @Date: 2026-08-13 10:21:49
 * @LastEditTime: 2026-08-30 14:55:31
 * @LastEditors: 安知鱼
 */
package moderation

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/mundo-tango/mundo-tango-app/internal/pkg/event"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/repository"
)

// 评分相关常量
const (
	// MaxScore 是初始的满分安全评分。
	MaxScore = 100.0
	// DefaultReviewScoreThreshold 低于该评分的内容进入人工审核。
	DefaultReviewScoreThreshold = 70.0
	// DefaultAIConfidenceThreshold 启发式置信度低于该值时追加 AI Detection 标记。
	DefaultAIConfidenceThreshold = 0.7
)

// 启发式检查用的风险信号模式
var (
	profanityPattern  = regexp.MustCompile(`(?i)\b(damn|hell|shit|fuck)\b`)
	aggressionPattern = regexp.MustCompile(`(?i)\b(hate|kill|die|murder)\b`)
)

// Scorer 根据规则注册表和启发式检查决定内容的审核状态。
// 评分本身是纯内存计算，不会失败；副作用（审计事件、总线通知）
// 通过注入的依赖显式完成。
type Scorer struct {
	registry  *Registry
	eventRepo repository.ModerationEventRepository
	bus       *event.EventBus

	reviewScoreThreshold  float64
	aiConfidenceThreshold float64
}

// NewScorer 创建评分器。
func NewScorer(
	registry *Registry,
	eventRepo repository.ModerationEventRepository,
	bus *event.EventBus,
	reviewScoreThreshold float64,
	aiConfidenceThreshold float64,
) *Scorer {
	if reviewScoreThreshold <= 0 {
		reviewScoreThreshold = DefaultReviewScoreThreshold
	}
	if aiConfidenceThreshold <= 0 {
		aiConfidenceThreshold = DefaultAIConfidenceThreshold
	}
	return &Scorer{
		registry:              registry,
		eventRepo:             eventRepo,
		bus:                   bus,
		reviewScoreThreshold:  reviewScoreThreshold,
		aiConfidenceThreshold: aiConfidenceThreshold,
	}
}

// Moderate 对内容执行完整的自动审核：按注册顺序评估规则、
// 运行启发式检查、落定审核状态并同步发布状态。
// 函数就地修改 item 的 Moderation 与发布状态字段，永远会得出一个结论。
func (s *Scorer) Moderate(ctx context.Context, item *model.ContentItem) {
	score := MaxScore
	flags := make([]string, 0)
	requiresReview := false
	shouldReject := false

	foldedText := strings.ToLower(strings.TrimSpace(item.Title + " " + item.Body))

	// 1. 按注册顺序评估规则，auto_reject 命中后短路
	for _, rule := range s.registry.Rules() {
		if !rule.Enabled {
			continue
		}
		if !rule.Matches(foldedText) {
			continue
		}

		flags = append(flags, rule.Name)
		score -= rule.Severity.Penalty()

		s.logAutoFlag(ctx, item.ID, rule.Name)

		if rule.Action == model.ActionRequireReview {
			requiresReview = true
		} else if rule.Action == model.ActionAutoReject {
			shouldReject = true
			break
		}
	}

	// 2. 启发式二次检查（历史上伪装成 AI 模型调用，实为确定性规则）
	if !shouldReject {
		confidence := s.heuristicConfidence(item)
		if confidence < s.aiConfidenceThreshold {
			flags = append(flags, "AI Detection")
			score -= (1 - confidence) * 20
			requiresReview = true
		}
	}

	// 3. 落定审核状态
	if score < 0 {
		score = 0
	}
	item.Moderation.Score = score
	item.Moderation.Flags = flags
	item.Moderation.AutoModerated = true

	switch {
	case shouldReject:
		item.Moderation.Status = model.ModStatusRejected
		item.Status = model.PubStatusArchived
	case requiresReview || score < s.reviewScoreThreshold:
		item.Moderation.Status = model.ModStatusFlagged
	default:
		item.Moderation.Status = model.ModStatusApproved
		if item.Status == model.PubStatusDraft {
			now := time.Now()
			item.Status = model.PubStatusPublished
			item.PublishedAt = &now
		}
	}

	if s.bus != nil {
		s.bus.Publish(event.ContentModerated, item)
	}

	log.Printf("[Moderation] Moderated content %s: %s (score: %.0f)", item.ID, item.Moderation.Status, score)
	if len(flags) > 0 {
		log.Printf("[Moderation] Flags: %s", strings.Join(flags, ", "))
	}
}

// heuristicConfidence 统计脏话、攻击性词汇、链接数和大写比例，
// 按固定线性权重合成 [0,1] 置信度。确定性计算，与外部模型无关。
func (s *Scorer) heuristicConfidence(item *model.ContentItem) float64 {
	profanity := len(profanityPattern.FindAllString(item.Body, -1))
	aggression := len(aggressionPattern.FindAllString(item.Body, -1))

	spam := 0.0
	if len(item.Metadata.Links) > 3 {
		spam = 1.0
	}

	upperCount := 0
	runeCount := 0
	for _, c := range item.Body {
		runeCount++
		if unicode.IsUpper(c) {
			upperCount++
		}
	}
	capsRatio := 0.0
	if runeCount > 0 {
		// 按字符数而非字节数计算，西语重音字符占多字节，
		// 用 len() 会把比例压低。
		capsRatio = float64(upperCount) / float64(runeCount)
	}

	confidence := 1.0
	confidence -= float64(profanity) * 0.1
	confidence -= float64(aggression) * 0.2
	confidence -= spam * 0.3
	if capsRatio > 0.5 {
		confidence -= 0.2
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

// logAutoFlag 为命中的规则追加一条 auto_flag 审计记录。
func (s *Scorer) logAutoFlag(ctx context.Context, contentID, ruleName string) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.Append(ctx, &model.ModerationEvent{
		ID:        uuid.New().String(),
		ContentID: contentID,
		Kind:      model.EventAutoFlag,
		Details:   fmt.Sprintf("Triggered rule: %s", ruleName),
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Printf("[Moderation] 记录 auto_flag 事件失败: %v", err)
	}
}
