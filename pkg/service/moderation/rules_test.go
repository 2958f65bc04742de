package moderation

import (
	"context"
	"strings"
	"testing"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
)

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()
	if r.Len() != 5 {
		t.Fatalf("默认规则数量 = %d, want 5", r.Len())
	}

	// 规则顺序有意义：auto_reject 命中后会短路
	wantOrder := []string{"profanity_filter", "spam_detection", "harassment_keywords", "personal_info", "excessive_caps"}
	for i, rule := range r.Rules() {
		if rule.ID != wantOrder[i] {
			t.Errorf("规则[%d] = %s, want %s", i, rule.ID, wantOrder[i])
		}
		if !rule.Enabled {
			t.Errorf("默认规则 %s 应处于启用状态", rule.ID)
		}
	}
}

func TestDefaultRuleMatches(t *testing.T) {
	r := NewDefaultRegistry()
	byID := make(map[string]*model.ModerationRule)
	for _, rule := range r.Rules() {
		byID[rule.ID] = rule
	}

	tests := []struct {
		name   string
		ruleID string
		text   string
		want   bool
	}{
		{
			name:   "脏话关键词命中",
			ruleID: "profanity_filter",
			text:   "what the hell is this",
			want:   true,
		},
		{
			name:   "干净文本不命中脏话",
			ruleID: "profanity_filter",
			text:   "una noche de tango maravillosa",
			want:   false,
		},
		{
			name:   "多链接命中垃圾规则",
			ruleID: "spam_detection",
			text:   "visit http://a.com and also http://b.com",
			want:   true,
		},
		{
			name:   "单链接不命中垃圾规则",
			ruleID: "spam_detection",
			text:   "visit http://a.com today",
			want:   false,
		},
		{
			name:   "跨行的两个链接不命中垃圾规则",
			ruleID: "spam_detection",
			text:   "visit http://a.com\nand also http://b.com",
			want:   false,
		},
		{
			name:   "连续重复字符命中垃圾规则",
			ruleID: "spam_detection",
			text:   "holaaaaaaaaaaaaa",
			want:   true,
		},
		{
			name:   "十次重复不足以命中",
			ruleID: "spam_detection",
			text:   "hol" + strings.Repeat("a", 10),
			want:   false,
		},
		{
			name:   "骚扰关键词命中",
			ruleID: "harassment_keywords",
			text:   "you are a loser",
			want:   true,
		},
		{
			name:   "SSN命中个人信息规则",
			ruleID: "personal_info",
			text:   "my ssn is 123-45-6789",
			want:   true,
		},
		{
			name:   "电话号码命中个人信息规则",
			ruleID: "personal_info",
			text:   "call me at 555-123-4567",
			want:   true,
		},
		{
			name:   "普通数字不命中个人信息规则",
			ruleID: "personal_info",
			text:   "hay 42 personas en la clase",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := byID[tt.ruleID]
			if rule == nil {
				t.Fatalf("规则 %s 不存在", tt.ruleID)
			}
			if got := rule.Matches(tt.text); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDisabledRuleSkipped(t *testing.T) {
	rule := &model.ModerationRule{
		ID:       "test_rule",
		Name:     "Test Rule",
		Kind:     model.RuleKindKeyword,
		Keywords: []string{"spam"},
		Severity: model.SeverityHigh,
		Action:   model.ActionRequireReview,
		Enabled:  false,
	}
	scorer := NewScorer(NewRegistry([]*model.ModerationRule{rule}), nil, nil, 0, 0)

	item := &model.ContentItem{ID: "c1", Body: "spam spam spam", Status: model.PubStatusDraft}
	scorer.Moderate(context.Background(), item)

	if item.Moderation.Status != model.ModStatusApproved {
		t.Errorf("禁用规则不应参与评估, status = %s", item.Moderation.Status)
	}
	if len(item.Moderation.Flags) != 0 {
		t.Errorf("禁用规则不应附加标记, flags = %v", item.Moderation.Flags)
	}
}
