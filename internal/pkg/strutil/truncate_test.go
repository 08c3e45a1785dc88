package strutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{
			name:      "短字符串原样返回",
			input:     "hello",
			maxLength: 10,
			expected:  "hello",
		},
		{
			name:      "等长字符串原样返回",
			input:     "hello",
			maxLength: 5,
			expected:  "hello",
		},
		{
			name:      "超长字符串截断并加省略号",
			input:     "hello world",
			maxLength: 5,
			expected:  "hello...",
		},
		{
			name:      "中文按字符数截断",
			input:     "你好世界你好世界",
			maxLength: 4,
			expected:  "你好世界...",
		},
		{
			name:      "空字符串",
			input:     "",
			maxLength: 5,
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLength); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLength, got, tt.expected)
			}
		})
	}
}
