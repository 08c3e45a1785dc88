/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:27:45
 * @LastEditTime: 2025-09-02 14:27:49
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Tag 是文章标签的领域模型。
type Tag struct {
	ID        uint
	CreatedAt time.Time
	Name      string
}

// CreateTagRequest 创建标签的请求体。
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}
