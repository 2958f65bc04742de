/*
 * @Description: 富文本渲染服务，受限 Markdown 子集转安全 HTML
 * @Author: 安知鱼
 * @Date: 2026-08-14 11:30:15
 * @LastEditTime: 2026-08-30 20:11:43
 * @LastEditors: 安知鱼
 */
package parser

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/mundo-tango/mundo-tango-app/pkg/service/utility"
)

// 渲染结果缓存配置
const (
	cacheKeyPrefix = "richtext:render:"
	cacheTTL       = 30 * time.Minute
)

var (
	// 前一个字符不能是 & 或字母数字，避免误伤 HTML 实体（如 &#39;）
	mentionRegex = regexp.MustCompile(`(^|[^\w&])@(\w+)`)
	hashtagRegex = regexp.MustCompile(`(^|[^\w&])#(\w+)`)
)

// Service 把受限的 Markdown 子集（**加粗**、*斜体*、`代码`、换行、
// @提及、#话题标签）渲染为经过净化的 HTML。渲染结果按正文哈希缓存。
type Service struct {
	mdParser goldmark.Markdown
	policy   *bluemonday.Policy
	cacheSvc utility.CacheService
}

// NewService 创建富文本渲染服务。cacheSvc 可以为 nil（不做缓存）。
func NewService(cacheSvc utility.CacheService) *Service {
	mdParser := goldmark.New(
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // 正文中的换行渲染为 <br>
			html.WithXHTML(),
			html.WithUnsafe(), // 原始 HTML 交由 bluemonday 统一清理
		),
	)

	// UGCPolicy 适用于用户生成内容；提及与话题标签的锚点需要 class 属性
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a", "code", "span")

	return &Service{
		mdParser: mdParser,
		policy:   policy,
		cacheSvc: cacheSvc,
	}
}

// Render 渲染正文。纯字符串变换：相同输入永远得到相同输出。
func (s *Service) Render(ctx context.Context, content string) (string, error) {
	cacheKey := cacheKeyPrefix + computeCacheKey(content)
	if s.cacheSvc != nil {
		if cached, err := s.cacheSvc.Get(ctx, cacheKey); err == nil && cached != "" {
			return cached, nil
		}
	}

	var buf bytes.Buffer
	if err := s.mdParser.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("渲染 Markdown 失败: %w", err)
	}

	// 先净化，再注入我们自己构造的提及/话题标签锚点
	safeHTML := s.policy.Sanitize(buf.String())
	safeHTML = mentionRegex.ReplaceAllString(safeHTML, `$1<a href="/users/$2" class="mention">@$2</a>`)
	safeHTML = hashtagRegex.ReplaceAllString(safeHTML, `$1<a href="/hashtags/$2" class="hashtag">#$2</a>`)

	if s.cacheSvc != nil {
		if err := s.cacheSvc.Set(ctx, cacheKey, safeHTML, cacheTTL); err != nil {
			log.Printf("[Parser] 写入渲染缓存失败: %v", err)
		}
	}

	return safeHTML, nil
}

// computeCacheKey 使用 SHA256 计算缓存键
func computeCacheKey(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
