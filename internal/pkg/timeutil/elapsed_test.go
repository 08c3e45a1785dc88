package timeutil

import (
	"testing"
	"time"
)

func TestElapsedSince(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		created  time.Time
		expected string
	}{
		{
			name:     "刚刚发布",
			created:  now.Add(-30 * time.Second),
			expected: "just now",
		},
		{
			name:     "两分钟前",
			created:  now.Add(-2 * time.Minute),
			expected: "2 minutes ago",
		},
		{
			name:     "一分钟整为单数",
			created:  now.Add(-1 * time.Minute),
			expected: "1 minute ago",
		},
		{
			name:     "三小时前",
			created:  now.Add(-3 * time.Hour),
			expected: "3 hours ago",
		},
		{
			name:     "一小时整为单数",
			created:  now.Add(-1 * time.Hour),
			expected: "1 hour ago",
		},
		{
			name:     "一天整为单数",
			created:  now.AddDate(0, 0, -1),
			expected: "1 day ago",
		},
		{
			name:     "六天前按天计",
			created:  now.AddDate(0, 0, -6),
			expected: "6 days ago",
		},
		{
			name:     "八天前按周计",
			created:  now.AddDate(0, 0, -8),
			expected: "1 week ago",
		},
		{
			name:     "二十一天前为三周",
			created:  now.AddDate(0, 0, -21),
			expected: "3 weeks ago",
		},
		{
			name:     "三十一天前按月计",
			created:  now.AddDate(0, 0, -31),
			expected: "1 month ago",
		},
		{
			name:     "九十天前为三个月",
			created:  now.AddDate(0, 0, -90),
			expected: "3 months ago",
		},
		{
			name:     "四百天前为一年",
			created:  now.AddDate(0, 0, -400),
			expected: "1 year ago",
		},
		{
			name:     "八百天前为两年",
			created:  now.AddDate(0, 0, -800),
			expected: "2 years ago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedSince(tt.created, now); got != tt.expected {
				t.Errorf("ElapsedSince(%v) = %q, want %q", tt.created, got, tt.expected)
			}
		})
	}
}
