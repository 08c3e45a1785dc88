package parser

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contains    string
		notContains string
	}{
		{
			name:     "基础段落",
			input:    "hello world",
			contains: "<p>hello world</p>",
		},
		{
			name:     "标题带锚点ID",
			input:    "# Hello",
			contains: `id="hello"`,
		},
		{
			name:     "链接保留",
			input:    "[博客](https://example.com)",
			contains: `href="https://example.com"`,
		},
		{
			name:        "脚本被净化",
			input:       `<script>alert("xss")</script>正文`,
			contains:    "正文",
			notContains: "<script>",
		},
		{
			name:        "内联事件被净化",
			input:       `<img src="a.png" onerror="alert(1)">`,
			notContains: "onerror",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToHTML(tt.input)
			if err != nil {
				t.Fatalf("MarkdownToHTML(%q) 返回错误: %v", tt.input, err)
			}
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("MarkdownToHTML(%q) = %q, 缺少 %q", tt.input, got, tt.contains)
			}
			if tt.notContains != "" && strings.Contains(got, tt.notContains) {
				t.Errorf("MarkdownToHTML(%q) = %q, 不应包含 %q", tt.input, got, tt.notContains)
			}
		})
	}
}
