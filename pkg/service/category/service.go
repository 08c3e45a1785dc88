/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-04 10:05:18
 * @LastEditTime: 2025-09-04 10:05:23
 * @LastEditors: 安知鱼
 */
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/xyhcode/vue-blog-api/pkg/constant"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/domain/repository"
)

// Service 封装了文章分类的业务逻辑。
type Service struct {
	repo repository.CategoryRepository
}

// NewService 是分类 Service 的构造函数。
func NewService(repo repository.CategoryRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) toDTO(c *model.Category) *model.CategoryDTO {
	if c == nil {
		return nil
	}
	return &model.CategoryDTO{
		ID:   c.ID,
		Name: c.Name,
	}
}

// Create 创建一个新分类，名称重复时返回冲突错误。
func (s *Service) Create(ctx context.Context, name string) (*model.CategoryDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 分类名称不能为空", constant.ErrBadRequest)
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("检查分类名称失败: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: 分类 '%s' 已存在", constant.ErrConflict, name)
	}

	newCategory, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.toDTO(newCategory), nil
}

// CreateBatch 批量创建分类，名称去重且不能为空。
func (s *Service) CreateBatch(ctx context.Context, names []string) ([]*model.CategoryDTO, error) {
	seen := make(map[string]struct{}, len(names))
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: 分类名称不能为空", constant.ErrBadRequest)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: 分类列表不能为空", constant.ErrBadRequest)
	}

	categories, err := s.repo.CreateBatch(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	dtos := make([]*model.CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = s.toDTO(c)
	}
	return dtos, nil
}

// Update 重命名分类。
func (s *Service) Update(ctx context.Context, id uint, name string) (*model.CategoryDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 分类名称不能为空", constant.ErrBadRequest)
	}
	updated, err := s.repo.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	return s.toDTO(updated), nil
}

// Delete 删除分类，引用它的文章保留但不再归属任何分类。
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// List 返回所有分类。
func (s *Service) List(ctx context.Context) ([]*model.CategoryDTO, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*model.CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = s.toDTO(c)
	}
	return dtos, nil
}

// GetByID 返回单个分类。
func (s *Service) GetByID(ctx context.Context, id uint) (*model.CategoryDTO, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(c), nil
}
