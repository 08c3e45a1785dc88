/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:40:08
 * @LastEditTime: 2025-10-21 17:10:33
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
)

// PostRepository 定义了文章的数据仓库接口。
// 未找到的实体统一以包装了 constant.ErrNotFound 的错误返回。
type PostRepository interface {
	Create(ctx context.Context, params *model.CreatePostParams) (*model.Post, error)
	Update(ctx context.Context, id uint, params *model.UpdatePostParams) (*model.Post, error)
	GetByID(ctx context.Context, id uint) (*model.Post, error)
	// List 返回一页文章与总数，总数与切片使用同一过滤条件
	List(ctx context.Context, options *model.ListPostsOptions) ([]*model.Post, int, error)
	// ListRecentPublished 返回最新发布的 limit 篇文章，不查询正文列
	ListRecentPublished(ctx context.Context, limit int) ([]*model.Post, error)
	// FindRelated 返回与给定标签集合至少共享一个标签的其他已发布文章
	FindRelated(ctx context.Context, excludeID uint, tagIDs []uint, limit int) ([]*model.Post, error)
	GetTags(ctx context.Context, postID uint) ([]*model.Tag, error)
}
