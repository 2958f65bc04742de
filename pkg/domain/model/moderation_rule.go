/*
 * @Description: 审核规则领域模型
 * @Author: 安知鱼
 * @Date: 2026-08-12 10:31:05
 * @LastEditTime: 2026-08-20 14:02:33
 * @LastEditors: 安知鱼
 */
package model

import (
	"regexp"
	"strings"
)

// RuleKind 定义了审核规则的匹配方式。
type RuleKind string

const (
	RuleKindKeyword RuleKind = "keyword" // 关键词列表，任意一个命中即匹配
	RuleKindPattern RuleKind = "pattern" // 正则表达式匹配
)

// RuleSeverity 定义了规则的严重等级，对应固定的扣分值。
type RuleSeverity string

const (
	SeverityLow      RuleSeverity = "low"
	SeverityMedium   RuleSeverity = "medium"
	SeverityHigh     RuleSeverity = "high"
	SeverityCritical RuleSeverity = "critical"
)

// Penalty 返回该严重等级对应的扣分值。
func (s RuleSeverity) Penalty() float64 {
	switch s {
	case SeverityLow:
		return 5
	case SeverityMedium:
		return 15
	case SeverityHigh:
		return 30
	case SeverityCritical:
		return 50
	}
	return 0
}

// RuleAction 定义了规则命中后采取的动作。
type RuleAction string

const (
	ActionFlag          RuleAction = "flag"
	ActionRequireReview RuleAction = "require_review"
	ActionAutoReject    RuleAction = "auto_reject"
	ActionShadowBan     RuleAction = "shadow_ban"
)

// ModerationRule 是一条具名的审核策略。
// 规则在启动时加载后不可变，禁用的规则在评分时被整体跳过。
type ModerationRule struct {
	ID       string
	Name     string // 展示名，命中后作为 Flag 附加到内容上
	Kind     RuleKind
	Keywords []string       // Kind == keyword 时使用
	Pattern  *regexp.Regexp // Kind == pattern 时使用，加载时已编译

	// RepeatedRun 大于 0 时，pattern 规则在正文出现同一字符连续重复
	// 至少 RepeatedRun 次时同样视为命中。RE2 不支持反向引用，
	// 重复字符检测以显式字段表达。
	RepeatedRun int

	Severity    RuleSeverity
	Action      RuleAction
	Description string
	Enabled     bool
}

// Matches 判断规则是否命中给定的小写化文本。
func (r *ModerationRule) Matches(foldedText string) bool {
	switch r.Kind {
	case RuleKindKeyword:
		for _, kw := range r.Keywords {
			if kw != "" && strings.Contains(foldedText, strings.ToLower(kw)) {
				return true
			}
		}
		return false
	case RuleKindPattern:
		if r.Pattern != nil && r.Pattern.MatchString(foldedText) {
			return true
		}
		if r.RepeatedRun > 0 && hasRepeatedRun(foldedText, r.RepeatedRun) {
			return true
		}
		return false
	}
	return false
}

// hasRepeatedRun 检查文本中是否存在同一字符连续出现至少 n 次。
func hasRepeatedRun(text string, n int) bool {
	if n <= 1 {
		return len(text) > 0
	}
	var prev rune
	run := 0
	for _, c := range text {
		if c == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = c
			run = 1
		}
	}
	return false
}
