/*
 * @Description: 文章业务逻辑：查询管线与生命周期
 * @Author: 安知鱼
 * @Date: 2025-09-03 14:30:25
 * @LastEditTime: 2025-10-22 11:18:46
 * @LastEditors: 安知鱼
 */
package post

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xyhcode/vue-blog-api/pkg/constant"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/domain/repository"
)

// 推荐文章的最大条数与首页最新文章条数
const (
	suggestedPostsLimit = 3
	recentPostsLimit    = 10
)

// Service 封装了文章的业务逻辑。
type Service struct {
	repo         repository.PostRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

// NewService 是文章 Service 的构造函数。
func NewService(repo repository.PostRepository, categoryRepo repository.CategoryRepository, tagRepo repository.TagRepository) *Service {
	return &Service{repo: repo, categoryRepo: categoryRepo, tagRepo: tagRepo}
}

// validatePaging 校验分页参数，page 和 pageSize 都必须为正数。
func validatePaging(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("%w: page 必须大于 0", constant.ErrBadRequest)
	}
	if pageSize < 1 {
		return fmt.Errorf("%w: pageSize 必须大于 0", constant.ErrBadRequest)
	}
	return nil
}

// ListPublished 分页返回已发布的文章（含正文）。
// 超出范围的页码返回空页而不是错误，分页元信息仍然有效。
func (s *Service) ListPublished(ctx context.Context, page, pageSize int) (*model.PaginatedResult[*model.PostDTO], error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	posts, total, err := s.repo.List(ctx, &model.ListPostsOptions{
		Page:          page,
		PageSize:      pageSize,
		OnlyPublished: true,
		WithContent:   true,
	})
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResult(s.toDTOSlice(posts), total, page, pageSize), nil
}

// ListAll 分页返回所有未删除的文章（草稿 + 已发布，含正文），供后台管理使用。
func (s *Service) ListAll(ctx context.Context, page, pageSize int) (*model.PaginatedResult[*model.PostDTO], error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	posts, total, err := s.repo.List(ctx, &model.ListPostsOptions{
		Page:        page,
		PageSize:    pageSize,
		WithContent: true,
	})
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResult(s.toDTOSlice(posts), total, page, pageSize), nil
}

// ListNoContent 分页返回所有未删除文章的轻量投影，列表视图不需要正文。
func (s *Service) ListNoContent(ctx context.Context, page, pageSize int) (*model.PaginatedResult[*model.PostListItemDTO], error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	posts, total, err := s.repo.List(ctx, &model.ListPostsOptions{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResult(s.toListItemDTOSlice(posts), total, page, pageSize), nil
}

// ListRecentNoContent 返回最新发布的十篇文章，用于首页侧栏。
// 结果套用固定的分页外壳，保持与其他列表接口一致的线上格式。
func (s *Service) ListRecentNoContent(ctx context.Context) (*model.PaginatedResult[*model.PostListItemDTO], error) {
	posts, err := s.repo.ListRecentPublished(ctx, recentPostsLimit)
	if err != nil {
		return nil, err
	}
	items := s.toListItemDTOSlice(posts)
	return model.NewPaginatedResult(items, len(items), 1, recentPostsLimit), nil
}

// Search 按关键字在标题、正文、分类名、标签名上做大小写不敏感的子串匹配。
// 空白关键字是错误；没有命中则返回空页，不是错误。
func (s *Service) Search(ctx context.Context, query string, page, pageSize int) (*model.PaginatedResult[*model.PostDTO], error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: 搜索关键字不能为空", constant.ErrBadRequest)
	}
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	posts, total, err := s.repo.List(ctx, &model.ListPostsOptions{
		Page:          page,
		PageSize:      pageSize,
		OnlyPublished: true,
		WithContent:   true,
		Query:         query,
	})
	if err != nil {
		return nil, err
	}
	return model.NewPaginatedResult(s.toDTOSlice(posts), total, page, pageSize), nil
}

// SuggestRelated 返回与指定文章共享至少一个标签的其他已发布文章，最多三篇，按最新优先。
// 目标文章不存在时返回 (nil, nil)；没有标签或没有相关文章时返回空列表。
func (s *Service) SuggestRelated(ctx context.Context, postID uint) ([]*model.PostListItemDTO, error) {
	tags, err := s.repo.GetTags(ctx, postID)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(tags) == 0 {
		return []*model.PostListItemDTO{}, nil
	}
	tagIDs := make([]uint, len(tags))
	for i, t := range tags {
		tagIDs[i] = t.ID
	}
	related, err := s.repo.FindRelated(ctx, postID, tagIDs, suggestedPostsLimit)
	if err != nil {
		return nil, err
	}
	return s.toListItemDTOSlice(related), nil
}

// ListTagNames 返回指定文章的标签投影。
func (s *Service) ListTagNames(ctx context.Context, postID uint) ([]model.TagDTO, error) {
	tags, err := s.repo.GetTags(ctx, postID)
	if err != nil {
		return nil, err
	}
	dtos := make([]model.TagDTO, len(tags))
	for i, t := range tags {
		dtos[i] = model.TagDTO{ID: t.ID, Name: t.Name}
	}
	return dtos, nil
}

// GetByID 返回单篇文章的完整投影，文章不存在时返回 (nil, nil)。
func (s *Service) GetByID(ctx context.Context, id uint) (*model.PostDTO, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.toDTO(p), nil
}

// Initialize 创建一篇空白草稿并返回，编辑器以它为起点增量保存。
func (s *Service) Initialize(ctx context.Context) (*model.PostDTO, error) {
	p, err := s.repo.Create(ctx, &model.CreatePostParams{
		Status: model.PostStatusDraft,
	})
	if err != nil {
		return nil, err
	}
	return s.toDTO(p), nil
}

// resolveTagIDs 过滤掉标签列表中的占位值 0 与不存在的标签。
func (s *Service) resolveTagIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if ids == nil {
		return nil, nil
	}
	candidates := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return []uint{}, nil
	}
	tags, err := s.tagRepo.FindByIDs(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("校验标签失败: %w", err)
	}
	resolved := make([]uint, len(tags))
	for i, t := range tags {
		resolved[i] = t.ID
	}
	return resolved, nil
}

// resolveCategoryID 尽力而为地解析分类：0 或不存在的分类都返回 nil，不报错。
func (s *Service) resolveCategoryID(ctx context.Context, id uint) (*uint, error) {
	if id == 0 {
		return nil, nil
	}
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("校验分类失败: %w", err)
	}
	categoryID := id
	return &categoryID, nil
}

// Create 创建一篇完整的文章，IsDraft 决定初始状态。
func (s *Service) Create(ctx context.Context, req *model.CreatePostRequest) (*model.PostDTO, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: 标题不能为空", constant.ErrBadRequest)
	}

	status := model.PostStatusPublished
	if req.IsDraft {
		status = model.PostStatusDraft
	}

	tagIDs, err := s.resolveTagIDs(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}
	// 分类不存在时不挂分类，也不报错
	categoryID, err := s.resolveCategoryID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	params := &model.CreatePostParams{
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
		Status:      status,
		CategoryID:  categoryID,
		TagIDs:      tagIDs,
	}

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	return s.toDTO(p), nil
}

// PartiallySave 增量保存编辑器内容：标题、正文、摘要整体覆盖；
// 状态按 isDraft 重新计算；categoryId 为 0 或指向不存在的分类时保留原有分类；
// 标签整组替换（替换而非合并），0 被丢弃。
func (s *Service) PartiallySave(ctx context.Context, id uint, req *model.CreatePostRequest) (*model.PostDTO, error) {
	tagIDs, err := s.resolveTagIDs(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	status := model.PostStatusPublished
	if req.IsDraft {
		status = model.PostStatusDraft
	}

	params := &model.UpdatePostParams{
		Title:       &req.Title,
		Content:     &req.Content,
		Description: &req.Description,
		Status:      &status,
		TagIDs:      tagIDs,
	}
	if params.TagIDs == nil {
		// 请求未携带标签字段时也整组替换为空，与编辑器的全量提交语义一致
		params.TagIDs = []uint{}
	}
	categoryID, err := s.resolveCategoryID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	params.CategoryID = categoryID

	p, err := s.repo.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	return s.toDTO(p), nil
}

// AssignCoverImage 给文章设置封面图地址。
func (s *Service) AssignCoverImage(ctx context.Context, id uint, coverImageURL string) (*model.PostDTO, error) {
	if strings.TrimSpace(coverImageURL) == "" {
		return nil, fmt.Errorf("%w: 封面图地址不能为空", constant.ErrBadRequest)
	}
	p, err := s.repo.Update(ctx, id, &model.UpdatePostParams{
		CoverImageURL: &coverImageURL,
	})
	if err != nil {
		return nil, err
	}
	return s.toDTO(p), nil
}

// Publish 把草稿转为已发布状态。
// 文章不存在时返回 (nil, nil)，保持线上 null 语义，而不是错误。
func (s *Service) Publish(ctx context.Context, id uint) (*model.PostDTO, error) {
	status := model.PostStatusPublished
	p, err := s.repo.Update(ctx, id, &model.UpdatePostParams{
		Status: &status,
	})
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.toDTO(p), nil
}

// Delete 软删除文章：状态置为 DELETED，行保留。
func (s *Service) Delete(ctx context.Context, id uint) error {
	status := model.PostStatusDeleted
	_, err := s.repo.Update(ctx, id, &model.UpdatePostParams{
		Status: &status,
	})
	return err
}
