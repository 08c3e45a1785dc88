/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:46:22
 * @LastEditTime: 2025-09-02 14:46:27
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
)

// TagRepository 定义了文章标签的数据仓库接口。
type TagRepository interface {
	Create(ctx context.Context, name string) (*model.Tag, error)
	CreateBatch(ctx context.Context, names []string) ([]*model.Tag, error)
	Update(ctx context.Context, id uint, name string) (*model.Tag, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*model.Tag, error)
	// FindByIDs 返回存在的标签，忽略不存在的ID
	FindByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
