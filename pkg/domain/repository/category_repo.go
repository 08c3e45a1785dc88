/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:43:51
 * @LastEditTime: 2025-09-02 14:43:55
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
)

// CategoryRepository 定义了文章分类的数据仓库接口。
type CategoryRepository interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	CreateBatch(ctx context.Context, names []string) ([]*model.Category, error)
	Update(ctx context.Context, id uint, name string) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*model.Category, error)
	GetByID(ctx context.Context, id uint) (*model.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
