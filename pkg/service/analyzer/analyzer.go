/*
 * @Description: 内容元数据分析器
 * @Author: 安知鱼
 * @Date: 2026-08-12 16:05:33
 * @LastEditTime: 2026-08-30 10:14:27
 * @LastEditors: 安知鱼
 */
package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
)

// 阅读速度基准：每分钟 200 词
const wordsPerMinute = 200

var (
	mentionRegex = regexp.MustCompile(`@(\w+)`)
	hashtagRegex = regexp.MustCompile(`#(\w+)`)
	linkRegex    = regexp.MustCompile(`https?://[^\s]+`)
)

// 语言识别用的常见词表。社区以阿根廷探戈为主题，
// 两份词表都带上了领域词（tango/milonga/baile）。
var (
	spanishWords = []string{
		"el", "la", "de", "que", "y", "en", "un", "es", "se", "no",
		"te", "lo", "le", "da", "su", "por", "son", "con", "para",
		"tango", "milonga", "baile",
	}
	englishWords = []string{
		"the", "of", "and", "to", "a", "in", "is", "it", "you", "that",
		"he", "was", "for", "on", "are", "with", "as", "his", "they",
		"dance", "tango",
	}
)

// Analyze 对正文做纯函数式的元数据提取：词数、阅读时长、语言、
// 提及、话题标签和链接。没有 I/O，相同输入永远得到相同结果。
// 空正文也返回尽力而为的结果：词数为 0，阅读时长按下限取 1。
func Analyze(body string) model.ContentMetadata {
	words := strings.Fields(body)
	wordCount := len(words)

	readingTime := int(math.Ceil(float64(wordCount) / wordsPerMinute))
	if readingTime < 1 {
		readingTime = 1
	}

	return model.ContentMetadata{
		WordCount:   wordCount,
		ReadingTime: readingTime,
		Language:    DetectLanguage(body),
		Mentions:    ExtractMentions(body),
		Hashtags:    ExtractHashtags(body),
		Links:       ExtractLinks(body),
	}
}

// ExtractMentions 提取正文中的 @提及，去掉前缀并转为小写。
func ExtractMentions(body string) []string {
	matches := mentionRegex.FindAllStringSubmatch(body, -1)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, strings.ToLower(m[1]))
	}
	return result
}

// ExtractHashtags 提取正文中的 #话题标签，去掉前缀并转为小写。
func ExtractHashtags(body string) []string {
	matches := hashtagRegex.FindAllStringSubmatch(body, -1)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, strings.ToLower(m[1]))
	}
	return result
}

// ExtractLinks 提取正文中的 http(s) 链接。
func ExtractLinks(body string) []string {
	links := linkRegex.FindAllString(body, -1)
	if links == nil {
		return []string{}
	}
	return links
}

// DetectLanguage 基于常见词频做朴素的语言猜测，返回 "es"、"en" 或 "unknown"。
func DetectLanguage(body string) string {
	words := strings.Fields(strings.ToLower(body))

	spanishScore := 0
	englishScore := 0
	for _, w := range words {
		if contains(spanishWords, w) {
			spanishScore++
		}
		if contains(englishWords, w) {
			englishScore++
		}
	}

	switch {
	case spanishScore > englishScore:
		return "es"
	case englishScore > spanishScore:
		return "en"
	default:
		return "unknown"
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
