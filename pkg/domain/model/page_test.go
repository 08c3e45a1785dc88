package model

import "testing"

func TestNewPaginatedResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		page           int
		pageSize       int
		wantTotalPages int
	}{
		{"整除", 20, 1, 10, 2},
		{"有余数向上取整", 21, 1, 10, 3},
		{"不足一页", 3, 1, 10, 1},
		{"空结果", 0, 1, 10, 0},
		{"每页一条", 5, 2, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPaginatedResult([]int{}, tt.total, tt.page, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, 期望 %d", result.TotalPages, tt.wantTotalPages)
			}
			if result.Total != tt.total || result.Page != tt.page || result.PageSize != tt.pageSize {
				t.Errorf("元信息透传错误: %+v", result)
			}
		})
	}
}

func TestNewPaginatedResult_Nil切片归一为空切片(t *testing.T) {
	var items []string
	result := NewPaginatedResult(items, 0, 1, 10)
	if result.Items == nil {
		t.Error("Items 应序列化为 [], 不能为 nil")
	}
}
