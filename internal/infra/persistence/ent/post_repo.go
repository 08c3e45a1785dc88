package ent

import (
	"context"
	"fmt"

	"github.com/xyhcode/vue-blog-api/ent"
	"github.com/xyhcode/vue-blog-api/ent/category"
	"github.com/xyhcode/vue-blog-api/ent/post"
	"github.com/xyhcode/vue-blog-api/ent/predicate"
	"github.com/xyhcode/vue-blog-api/ent/tag"
	"github.com/xyhcode/vue-blog-api/pkg/constant"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/domain/repository"
)

type postRepo struct {
	db *ent.Client
}

func NewPostRepo(db *ent.Client) repository.PostRepository {
	return &postRepo{db: db}
}

// toModel 是一个私有辅助函数，将 ent 实体转换为领域模型。
func (r *postRepo) toModel(p *ent.Post) *model.Post {
	if p == nil {
		return nil
	}
	m := &model.Post{
		ID:            p.ID,
		CreatedAt:     p.CreatedAt,
		Title:         p.Title,
		Content:       p.Content,
		Description:   p.Description,
		Status:        string(p.Status),
		CoverImageURL: p.CoverImageURL,
		CategoryID:    p.CategoryID,
	}
	if p.Edges.Category != nil {
		m.Category = &model.Category{
			ID:        p.Edges.Category.ID,
			CreatedAt: p.Edges.Category.CreatedAt,
			Name:      p.Edges.Category.Name,
		}
	}
	if p.Edges.Tags != nil {
		m.Tags = make([]*model.Tag, len(p.Edges.Tags))
		for i, t := range p.Edges.Tags {
			m.Tags[i] = &model.Tag{
				ID:        t.ID,
				CreatedAt: t.CreatedAt,
				Name:      t.Name,
			}
		}
	}
	return m
}

func (r *postRepo) toModelSlice(entities []*ent.Post) []*model.Post {
	models := make([]*model.Post, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models
}

// buildPredicates 把列表选项翻译成查询条件，总数与分页共用同一组条件。
func (r *postRepo) buildPredicates(options *model.ListPostsOptions) []predicate.Post {
	var preds []predicate.Post

	if options.OnlyPublished {
		preds = append(preds, post.StatusEQ(post.StatusPUBLISHED))
	} else {
		// 软删除的文章从所有活跃视图中过滤
		preds = append(preds, post.StatusNEQ(post.StatusDELETED))
	}

	if q := options.Query; q != "" {
		preds = append(preds, post.Or(
			post.TitleContainsFold(q),
			post.ContentContainsFold(q),
			post.HasCategoryWith(category.NameContainsFold(q)),
			post.HasTagsWith(tag.NameContainsFold(q)),
		))
	}

	return preds
}

func (r *postRepo) List(ctx context.Context, options *model.ListPostsOptions) ([]*model.Post, int, error) {
	preds := r.buildPredicates(options)

	// 总数与分页切片使用完全相同的条件，保证分页元数据一致
	total, err := r.db.Post.Query().Where(preds...).Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("统计文章总数失败: %w", err)
	}

	query := r.db.Post.Query().
		Where(preds...).
		WithCategory().
		WithTags().
		Order(ent.Desc(post.FieldCreatedAt), ent.Desc(post.FieldID)).
		Offset((options.Page - 1) * options.PageSize).
		Limit(options.PageSize)

	var entities []*ent.Post
	if options.WithContent {
		entities, err = query.All(ctx)
	} else {
		// 列表场景不取正文列，正文可能很大
		entities, err = query.Select(
			post.FieldID,
			post.FieldCreatedAt,
			post.FieldTitle,
			post.FieldDescription,
			post.FieldStatus,
			post.FieldCoverImageURL,
			post.FieldCategoryID,
		).All(ctx)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("查询文章列表失败: %w", err)
	}

	return r.toModelSlice(entities), total, nil
}

func (r *postRepo) ListRecentPublished(ctx context.Context, limit int) ([]*model.Post, error) {
	query := r.db.Post.Query().
		Where(post.StatusEQ(post.StatusPUBLISHED)).
		WithCategory().
		WithTags().
		Order(ent.Desc(post.FieldCreatedAt), ent.Desc(post.FieldID)).
		Limit(limit)

	entities, err := query.Select(
		post.FieldID,
		post.FieldCreatedAt,
		post.FieldTitle,
		post.FieldDescription,
		post.FieldStatus,
		post.FieldCoverImageURL,
		post.FieldCategoryID,
	).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询最新文章失败: %w", err)
	}
	return r.toModelSlice(entities), nil
}

func (r *postRepo) FindRelated(ctx context.Context, excludeID uint, tagIDs []uint, limit int) ([]*model.Post, error) {
	if len(tagIDs) == 0 {
		return []*model.Post{}, nil
	}
	entities, err := r.db.Post.Query().
		Where(
			post.IDNEQ(excludeID),
			post.StatusEQ(post.StatusPUBLISHED),
			post.HasTagsWith(tag.IDIn(tagIDs...)),
		).
		WithCategory().
		WithTags().
		Order(ent.Desc(post.FieldCreatedAt), ent.Desc(post.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询相关文章失败: %w", err)
	}
	return r.toModelSlice(entities), nil
}

func (r *postRepo) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	entity, err := r.db.Post.Query().
		Where(post.ID(id)).
		WithCategory().
		WithTags().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 文章 %d 不存在", constant.ErrNotFound, id)
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *postRepo) GetTags(ctx context.Context, postID uint) ([]*model.Tag, error) {
	entity, err := r.db.Post.Query().
		Where(post.ID(postID)).
		WithTags().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 文章 %d 不存在", constant.ErrNotFound, postID)
		}
		return nil, err
	}
	tags := make([]*model.Tag, len(entity.Edges.Tags))
	for i, t := range entity.Edges.Tags {
		tags[i] = &model.Tag{
			ID:        t.ID,
			CreatedAt: t.CreatedAt,
			Name:      t.Name,
		}
	}
	return tags, nil
}

func (r *postRepo) Create(ctx context.Context, params *model.CreatePostParams) (*model.Post, error) {
	creator := r.db.Post.Create().
		SetTitle(params.Title).
		SetContent(params.Content).
		SetDescription(params.Description).
		SetStatus(post.Status(params.Status)).
		SetNillableCategoryID(params.CategoryID)

	if len(params.TagIDs) > 0 {
		creator.AddTagIDs(params.TagIDs...)
	}
	if params.CreatedAt != nil {
		creator.SetCreatedAt(*params.CreatedAt)
	}

	newPost, err := creator.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建文章失败: %w", err)
	}
	// 重新加载以携带分类与标签关联
	return r.GetByID(ctx, newPost.ID)
}

func (r *postRepo) Update(ctx context.Context, id uint, params *model.UpdatePostParams) (*model.Post, error) {
	updater := r.db.Post.UpdateOneID(id)

	if params.Title != nil {
		updater.SetTitle(*params.Title)
	}
	if params.Content != nil {
		updater.SetContent(*params.Content)
	}
	if params.Description != nil {
		updater.SetDescription(*params.Description)
	}
	if params.Status != nil {
		updater.SetStatus(post.Status(*params.Status))
	}
	if params.CoverImageURL != nil {
		updater.SetCoverImageURL(*params.CoverImageURL)
	}
	if params.CategoryID != nil {
		updater.SetCategoryID(*params.CategoryID)
	}
	if params.TagIDs != nil {
		// 整组替换标签关联
		updater.ClearTags().AddTagIDs(params.TagIDs...)
	}

	if _, err := updater.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 文章 %d 不存在", constant.ErrNotFound, id)
		}
		return nil, fmt.Errorf("更新文章失败: %w", err)
	}
	return r.GetByID(ctx, id)
}
