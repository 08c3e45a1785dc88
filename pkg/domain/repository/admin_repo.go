/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:49:30
 * @LastEditTime: 2025-09-02 14:49:34
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
)

// AdminRepository 定义了管理员的数据仓库接口。
type AdminRepository interface {
	Create(ctx context.Context, email, fullName, passwordHash string) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
