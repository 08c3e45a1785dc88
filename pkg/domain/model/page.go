/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:21:03
 * @LastEditTime: 2025-09-02 14:21:08
 * @LastEditors: 安知鱼
 */
package model

// PaginatedResult 把一页投影结果与总数元信息打包在一起。
// Total 与切片使用完全相同的过滤条件统计，只是不带 offset/limit。
type PaginatedResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginatedResult 构造分页结果，TotalPages = ceil(Total/PageSize)。
func NewPaginatedResult[T any](items []T, total, page, pageSize int) *PaginatedResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	if items == nil {
		items = []T{}
	}
	return &PaginatedResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
