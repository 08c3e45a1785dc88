/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:25:12
 * @LastEditTime: 2025-09-02 14:25:17
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Category 是文章分类的领域模型。
type Category struct {
	ID        uint
	CreatedAt time.Time
	Name      string
}

// CreateCategoryRequest 创建分类的请求体。
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
