package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/mundo-tango/mundo-tango-app/pkg/service/utility"
)

func TestRender(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "加粗",
			input:    "esta noche **gran milonga**",
			contains: []string{"<strong>gran milonga</strong>"},
		},
		{
			name:     "斜体",
			input:    "un *abrazo* para todos",
			contains: []string{"<em>abrazo</em>"},
		},
		{
			name:     "行内代码",
			input:    "usa `tango.start()` para empezar",
			contains: []string{"<code>tango.start()</code>"},
		},
		{
			name:     "提及转为链接",
			input:    "gracias @maria por la clase",
			contains: []string{`<a href="/users/maria" class="mention">@maria</a>`},
		},
		{
			name:     "话题标签转为链接",
			input:    "nos vemos en la #milonga",
			contains: []string{`<a href="/hashtags/milonga" class="hashtag">#milonga</a>`},
		},
		{
			name:     "脚本标签被剥离",
			input:    `hola <script>alert("xss")</script> mundo`,
			contains: []string{"hola"},
			excludes: []string{"<script>", "alert"},
		},
		{
			name:     "内联事件属性被剥离",
			input:    `<img src="x" onerror="alert(1)">`,
			excludes: []string{"onerror"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Render(ctx, tt.input)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) = %q, 应包含 %q", tt.input, got, want)
				}
			}
			for _, not := range tt.excludes {
				if strings.Contains(got, not) {
					t.Errorf("Render(%q) = %q, 不应包含 %q", tt.input, got, not)
				}
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	input := "**hola** @maria #tango"
	first, err := svc.Render(ctx, input)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := svc.Render(ctx, input)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got != first {
			t.Fatalf("第 %d 次渲染结果不一致: %q != %q", i, got, first)
		}
	}
}

func TestRenderUsesCache(t *testing.T) {
	cache := utility.NewMemoryCacheService()
	svc := NewService(cache)
	ctx := context.Background()

	input := "contenido **cacheado**"
	first, err := svc.Render(ctx, input)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	cacheKey := cacheKeyPrefix + computeCacheKey(input)
	cached, err := cache.Get(ctx, cacheKey)
	if err != nil {
		t.Fatalf("读取缓存失败: %v", err)
	}
	if cached != first {
		t.Errorf("缓存内容 = %q, want %q", cached, first)
	}
}
