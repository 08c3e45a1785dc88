/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:06:19
 * @LastEditTime: 2025-10-21 16:55:40
 * @LastEditors: 安知鱼
 */
package model

import "time"

// 文章状态的线上表示。DELETED 即软删除：行保留，仅从活跃视图中过滤。
const (
	PostStatusDraft     = "DRAFT"
	PostStatusPublished = "PUBLISHED"
	PostStatusDeleted   = "DELETED"
)

// Post 是文章的领域模型。
type Post struct {
	ID            uint
	CreatedAt     time.Time
	Title         string
	Content       string
	Description   string
	Status        string
	CoverImageURL string
	CategoryID    *uint
	Category      *Category
	Tags          []*Tag
}

// CreatePostRequest 是创建/部分保存文章的请求体，字段名与前端编辑器保持一致。
type CreatePostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	CategoryID  uint   `json:"categoryId"`
	TagIDs      []uint `json:"tagIds"`
	IsDraft     bool   `json:"isDraft"`
}

// CreatePostParams 是仓库层创建文章的参数。
type CreatePostParams struct {
	Title       string
	Content     string
	Description string
	Status      string
	CategoryID  *uint
	TagIDs      []uint
	// CreatedAt 不为 nil 时覆盖默认创建时间（用于填充演示数据）
	CreatedAt *time.Time
}

// UpdatePostParams 是仓库层更新文章的参数，nil 字段表示保持原值。
// TagIDs 不为 nil 时整组替换标签关联（替换而非合并）。
type UpdatePostParams struct {
	Title         *string
	Content       *string
	Description   *string
	Status        *string
	CoverImageURL *string
	CategoryID    *uint
	TagIDs        []uint
}

// ListPostsOptions 是文章列表查询的选项。
type ListPostsOptions struct {
	Page     int
	PageSize int
	// OnlyPublished 为 true 时仅返回已发布文章，否则返回所有未删除文章
	OnlyPublished bool
	// WithContent 为 false 时不查询正文列，用于列表场景
	WithContent bool
	// Query 不为空时按关键字在标题/正文/分类名/标签名上做大小写不敏感的子串匹配
	Query string
}

// CategoryDTO 是分类的只读投影。
type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TagDTO 是标签的只读投影。
type TagDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PostTagDTO 是文章标签关联的只读投影，保持原有的嵌套线上格式。
type PostTagDTO struct {
	Tag TagDTO `json:"tag"`
}

// PostDTO 是文章的完整只读投影，仅在请求期间存在，从不落库。
type PostDTO struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	ContentHTML   string       `json:"contentHtml,omitempty"`
	Description   string       `json:"description"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	CoverImageURL string       `json:"coverImageUrl"`
	Elapsed       string       `json:"formattedElapsedTimeSinceCreation"`
	CategoryID    *uint        `json:"categoryId"`
	Category      *CategoryDTO `json:"category"`
	PostTags      []PostTagDTO `json:"postTags"`
}

// PostListItemDTO 是不含正文的文章投影，用于列表视图。
type PostListItemDTO struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	CoverImageURL string       `json:"coverImageUrl"`
	Elapsed       string       `json:"formattedElapsedTimeSinceCreation"`
	CategoryID    *uint        `json:"categoryId"`
	Category      *CategoryDTO `json:"category"`
	PostTags      []PostTagDTO `json:"postTags"`
}
