/*
 * @Description: 审核规则注册表
 * @Author: 安知鱼
 * @Date: 2026-08-13 09:40:12
 * @LastEditTime: 2026-08-30 11:02:44
 * @LastEditors: 安知鱼
 */
package moderation

import (
	"log"
	"regexp"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
)

// Registry 持有按注册顺序排列的审核规则集合。
// 规则在启动时加载，之后不可变；评估顺序有意义：
// auto_reject 规则命中后会短路后续规则。
type Registry struct {
	rules []*model.ModerationRule
}

// NewRegistry 用给定的规则集创建注册表。
func NewRegistry(rules []*model.ModerationRule) *Registry {
	return &Registry{rules: rules}
}

// NewDefaultRegistry 加载内置的默认规则表。
func NewDefaultRegistry() *Registry {
	r := NewRegistry(defaultRules())
	log.Printf("[Moderation] Loaded %d moderation rules", len(r.rules))
	return r
}

// Rules 按注册顺序返回全部规则。返回的切片不应被修改。
func (r *Registry) Rules() []*model.ModerationRule {
	return r.rules
}

// Len 返回规则数量。
func (r *Registry) Len() int {
	return len(r.rules)
}

// defaultRules 返回内置的默认规则表。
func defaultRules() []*model.ModerationRule {
	return []*model.ModerationRule{
		{
			ID:          "profanity_filter",
			Name:        "Profanity Filter",
			Kind:        model.RuleKindKeyword,
			Keywords:    []string{"damn", "hell", "shit", "fuck", "asshole", "bitch"},
			Severity:    model.SeverityMedium,
			Action:      model.ActionFlag,
			Description: "Flags content with profanity for review",
			Enabled:     true,
		},
		{
			ID:          "spam_detection",
			Name:        "Spam Detection",
			Kind:        model.RuleKindPattern,
			Pattern:     regexp.MustCompile(`(?i)https?://\S+.*https?://\S+`),
			RepeatedRun: 11,
			Severity:    model.SeverityHigh,
			Action:      model.ActionRequireReview,
			Description: "Detects repetitive text and multiple links",
			Enabled:     true,
		},
		{
			ID:          "harassment_keywords",
			Name:        "Harassment Keywords",
			Kind:        model.RuleKindKeyword,
			Keywords:    []string{"hate", "kill", "die", "stupid", "idiot", "loser", "ugly"},
			Severity:    model.SeverityHigh,
			Action:      model.ActionRequireReview,
			Description: "Flags potential harassment content",
			Enabled:     true,
		},
		{
			ID:          "personal_info",
			Name:        "Personal Information",
			Kind:        model.RuleKindPattern,
			Pattern:     regexp.MustCompile(`\b\d{3}-?\d{2}-?\d{4}\b|\b\d{3}[\s.-]?\d{3}[\s.-]?\d{4}\b`),
			Severity:    model.SeverityCritical,
			Action:      model.ActionAutoReject,
			Description: "Detects SSN and phone numbers",
			Enabled:     true,
		},
		{
			ID:          "excessive_caps",
			Name:        "Excessive Caps",
			Kind:        model.RuleKindPattern,
			Pattern:     regexp.MustCompile(`[A-Z]{20,}`),
			Severity:    model.SeverityLow,
			Action:      model.ActionFlag,
			Description: "Flags content with excessive capitalization",
			Enabled:     true,
		},
	}
}
