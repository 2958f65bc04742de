package moderation

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/mundo-tango/mundo-tango-app/internal/infra/persistence/memory"
	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
	"github.com/mundo-tango/mundo-tango-app/pkg/service/analyzer"
)

// newDraft 构造一条待审核的草稿，元数据按正文实际计算。
func newDraft(id, body string) *model.ContentItem {
	return &model.ContentItem{
		ID:       id,
		Type:     model.ContentTypePost,
		AuthorID: "user-1",
		Body:     body,
		Metadata: analyzer.Analyze(body),
		Moderation: model.ModerationRecord{
			Status: model.ModStatusPending,
			Flags:  []string{},
		},
		Status: model.PubStatusDraft,
	}
}

func TestModerate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantModStatus  model.ModerationStatus
		wantPubStatus  model.PublicationStatus
		wantScore      float64
		wantFlags      []string
		wantPublished  bool
		wantFlagEvents int
	}{
		{
			name:           "干净草稿获批并自动发布",
			body:           "Una hermosa noche de tango en la milonga del centro",
			wantModStatus:  model.ModStatusApproved,
			wantPubStatus:  model.PubStatusPublished,
			wantScore:      100,
			wantFlags:      []string{},
			wantPublished:  true,
			wantFlagEvents: 0,
		},
		{
			name:           "骚扰词与多链接进入人工审核",
			body:           "I HATE this, visit http://a.com and http://b.com now!!",
			wantModStatus:  model.ModStatusFlagged,
			wantPubStatus:  model.PubStatusDraft,
			wantScore:      40,
			wantFlags:      []string{"Spam Detection", "Harassment Keywords"},
			wantFlagEvents: 2,
		},
		{
			name:           "SSN短路为直接拒绝并归档",
			body:           "contact me, my ssn is 123-45-6789",
			wantModStatus:  model.ModStatusRejected,
			wantPubStatus:  model.PubStatusArchived,
			wantScore:      50,
			wantFlags:      []string{"Personal Information"},
			wantFlagEvents: 1,
		},
		{
			name:           "启发式置信度不足时追加AI标记",
			body:           "she wrote about a murder and then another murder",
			wantModStatus:  model.ModStatusFlagged,
			wantPubStatus:  model.PubStatusDraft,
			wantScore:      92,
			wantFlags:      []string{"AI Detection"},
			wantFlagEvents: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			eventRepo := memory.NewModerationEventRepo()
			scorer := NewScorer(NewDefaultRegistry(), eventRepo, nil, 0, 0)

			item := newDraft("c1", tt.body)
			scorer.Moderate(ctx, item)

			if item.Moderation.Status != tt.wantModStatus {
				t.Errorf("Moderation.Status = %s, want %s", item.Moderation.Status, tt.wantModStatus)
			}
			if item.Status != tt.wantPubStatus {
				t.Errorf("Status = %s, want %s", item.Status, tt.wantPubStatus)
			}
			if item.Moderation.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", item.Moderation.Score, tt.wantScore)
			}
			if !reflect.DeepEqual(item.Moderation.Flags, tt.wantFlags) {
				t.Errorf("Flags = %v, want %v", item.Moderation.Flags, tt.wantFlags)
			}
			if !item.Moderation.AutoModerated {
				t.Error("AutoModerated 应为 true")
			}
			if tt.wantPublished && item.PublishedAt == nil {
				t.Error("获批的草稿应带有发布时间")
			}

			events, err := eventRepo.ListByContent(ctx, "c1")
			if err != nil {
				t.Fatalf("读取审计记录失败: %v", err)
			}
			if len(events) != tt.wantFlagEvents {
				t.Errorf("auto_flag 事件数 = %d, want %d", len(events), tt.wantFlagEvents)
			}
			for _, ev := range events {
				if ev.Kind != model.EventAutoFlag {
					t.Errorf("事件类型 = %s, want %s", ev.Kind, model.EventAutoFlag)
				}
			}
		})
	}
}

func TestModerateTitleIncluded(t *testing.T) {
	scorer := NewScorer(NewDefaultRegistry(), nil, nil, 0, 0)

	item := newDraft("c2", "una publicación inocente")
	item.Title = "you are all idiots"
	scorer.Moderate(context.Background(), item)

	if item.Moderation.Status != model.ModStatusFlagged {
		t.Errorf("标题中的骚扰词应参与评估, status = %s", item.Moderation.Status)
	}
}

func TestHeuristicConfidenceCapsRatio(t *testing.T) {
	scorer := NewScorer(NewDefaultRegistry(), nil, nil, 0, 0)

	// 大写比例按字符数计算；西语重音字母占多字节，
	// 按字节算会把全大写正文的比例压到 0.5 以下
	item := newDraft("caps", strings.Repeat("Ñ", 12)+" hola")
	if got := scorer.heuristicConfidence(item); got != 0.8 {
		t.Errorf("全大写重音正文 confidence = %v, want 0.8", got)
	}

	item = newDraft("lower", "ñoño ñoño ñoño")
	if got := scorer.heuristicConfidence(item); got != 1.0 {
		t.Errorf("小写正文 confidence = %v, want 1", got)
	}
}

func TestModerateScoreMonotonicity(t *testing.T) {
	scorer := NewScorer(NewDefaultRegistry(), nil, nil, 0, 0)
	ctx := context.Background()

	// 命中的规则越多，评分只会下降或持平，不会上升
	bodies := []string{
		"una tarde tranquila en el parque",
		"what the hell happened here",
		"what the hell happened here, you idiot",
		"what the hell happened here, you idiot, see http://a.com http://b.com",
	}

	prev := MaxScore + 1
	for _, body := range bodies {
		item := newDraft("m", body)
		scorer.Moderate(ctx, item)
		if item.Moderation.Score > prev {
			t.Errorf("评分上升了: %q 得到 %v, 前一条为 %v", body, item.Moderation.Score, prev)
		}
		prev = item.Moderation.Score
	}
}

func TestModerateScoreFloor(t *testing.T) {
	rules := []*model.ModerationRule{
		{ID: "r1", Name: "R1", Kind: model.RuleKindKeyword, Keywords: []string{"uno"}, Severity: model.SeverityCritical, Action: model.ActionFlag, Enabled: true},
		{ID: "r2", Name: "R2", Kind: model.RuleKindKeyword, Keywords: []string{"dos"}, Severity: model.SeverityCritical, Action: model.ActionFlag, Enabled: true},
		{ID: "r3", Name: "R3", Kind: model.RuleKindKeyword, Keywords: []string{"tres"}, Severity: model.SeverityCritical, Action: model.ActionFlag, Enabled: true},
	}
	scorer := NewScorer(NewRegistry(rules), nil, nil, 0, 0)

	item := newDraft("c3", "uno dos tres")
	scorer.Moderate(context.Background(), item)

	if item.Moderation.Score != 0 {
		t.Errorf("评分应被钳制在 0, got %v", item.Moderation.Score)
	}
	if item.Moderation.Status != model.ModStatusFlagged {
		t.Errorf("低分内容应进入人工审核, status = %s", item.Moderation.Status)
	}
}
