/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-04 10:22:40
 * @LastEditTime: 2025-09-04 10:22:45
 * @LastEditors: 安知鱼
 */
package tag

import (
	"context"
	"fmt"
	"strings"

	"github.com/xyhcode/vue-blog-api/pkg/constant"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/domain/repository"
)

// Service 封装了文章标签的业务逻辑。
type Service struct {
	repo repository.TagRepository
}

// NewService 是标签 Service 的构造函数。
func NewService(repo repository.TagRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) toDTO(t *model.Tag) *model.TagDTO {
	if t == nil {
		return nil
	}
	return &model.TagDTO{
		ID:   t.ID,
		Name: t.Name,
	}
}

// Create 创建一个新标签，名称重复时返回冲突错误。
func (s *Service) Create(ctx context.Context, name string) (*model.TagDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 标签名称不能为空", constant.ErrBadRequest)
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("检查标签名称失败: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: 标签 '%s' 已存在", constant.ErrConflict, name)
	}

	newTag, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.toDTO(newTag), nil
}

// CreateBatch 批量创建标签，名称去重且不能为空。
func (s *Service) CreateBatch(ctx context.Context, names []string) ([]*model.TagDTO, error) {
	seen := make(map[string]struct{}, len(names))
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: 标签名称不能为空", constant.ErrBadRequest)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: 标签列表不能为空", constant.ErrBadRequest)
	}

	tags, err := s.repo.CreateBatch(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	dtos := make([]*model.TagDTO, len(tags))
	for i, t := range tags {
		dtos[i] = s.toDTO(t)
	}
	return dtos, nil
}

// Update 重命名标签。
func (s *Service) Update(ctx context.Context, id uint, name string) (*model.TagDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: 标签名称不能为空", constant.ErrBadRequest)
	}
	updated, err := s.repo.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	return s.toDTO(updated), nil
}

// Delete 删除标签，文章与该标签的关联一并解除。
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// List 返回所有标签。
func (s *Service) List(ctx context.Context) ([]*model.TagDTO, error) {
	tags, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*model.TagDTO, len(tags))
	for i, t := range tags {
		dtos[i] = s.toDTO(t)
	}
	return dtos, nil
}
