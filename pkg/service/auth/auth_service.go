/*
 * @Description: 管理员注册与登录
 * @Author: 安知鱼
 * @Date: 2025-09-04 11:15:02
 * @LastEditTime: 2025-10-22 15:09:31
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"fmt"

	"github.com/xyhcode/vue-blog-api/internal/pkg/security"
	"github.com/xyhcode/vue-blog-api/pkg/constant"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/domain/repository"
)

// Service 封装了管理员账户的业务逻辑。
type Service struct {
	adminRepo repository.AdminRepository
	tokenSvc  *TokenService
}

// NewService 是认证 Service 的构造函数。
func NewService(adminRepo repository.AdminRepository, tokenSvc *TokenService) *Service {
	return &Service{adminRepo: adminRepo, tokenSvc: tokenSvc}
}

// Register 注册一个新的管理员账户，邮箱已被占用时返回冲突错误。
func (s *Service) Register(ctx context.Context, req *model.RegisterAdminRequest) (*model.AdminDTO, error) {
	exists, err := s.adminRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("检查邮箱失败: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: 邮箱 '%s' 已被注册", constant.ErrConflict, req.Email)
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	admin, err := s.adminRepo.Create(ctx, req.Email, req.FullName, passwordHash)
	if err != nil {
		return nil, err
	}

	return &model.AdminDTO{
		ID:       admin.ID,
		Email:    admin.Email,
		FullName: admin.FullName,
	}, nil
}

// Login 校验邮箱与密码，成功后签发令牌。
// 邮箱未注册返回未找到，密码错误返回未授权。
func (s *Service) Login(ctx context.Context, req *model.LoginAdminRequest) (*model.TokenResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !security.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, fmt.Errorf("%w: 密码错误", constant.ErrUnauthorized)
	}

	token, err := s.tokenSvc.Generate(admin.Email)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{Value: token}, nil
}
