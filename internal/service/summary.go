package service

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const summaryMaxRunes = 200

var (
	summaryMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	summaryStripper = bluemonday.StrictPolicy()
)

// deriveSummary 将 Markdown 正文渲染后去掉所有标签，截取前 200 个字符作为摘要。
func deriveSummary(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	var buf bytes.Buffer
	text := content
	if err := summaryMarkdown.Convert([]byte(content), &buf); err == nil {
		text = html.UnescapeString(summaryStripper.Sanitize(buf.String()))
	}

	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= summaryMaxRunes {
		return text
	}
	return strings.TrimSpace(string(runes[:summaryMaxRunes])) + "…"
}
