package ent

import (
	"context"
	"fmt"

	"github.com/xyhcode/vue-blog-api/ent"
	"github.com/xyhcode/vue-blog-api/ent/tag"
	"github.com/xyhcode/vue-blog-api/pkg/constant"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/domain/repository"
)

type tagRepo struct {
	db *ent.Client
}

func NewTagRepo(db *ent.Client) repository.TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) toModel(t *ent.Tag) *model.Tag {
	if t == nil {
		return nil
	}
	return &model.Tag{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Name:      t.Name,
	}
}

func (r *tagRepo) toModelSlice(entities []*ent.Tag) []*model.Tag {
	models := make([]*model.Tag, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models
}

func (r *tagRepo) Create(ctx context.Context, name string) (*model.Tag, error) {
	newTag, err := r.db.Tag.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 标签 '%s' 已存在", constant.ErrConflict, name)
		}
		return nil, err
	}
	return r.toModel(newTag), nil
}

// CreateBatch 在一个事务中批量创建标签，任何一条失败则全部回滚。
func (r *tagRepo) CreateBatch(ctx context.Context, names []string) ([]*model.Tag, error) {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("开启事务失败: %w", err)
	}

	builders := make([]*ent.TagCreate, len(names))
	for i, name := range names {
		builders[i] = tx.Tag.Create().SetName(name)
	}
	entities, err := tx.Tag.CreateBulk(builders...).Save(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 存在重复的标签名称", constant.ErrConflict)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("提交事务失败: %w", err)
	}
	return r.toModelSlice(entities), nil
}

func (r *tagRepo) Update(ctx context.Context, id uint, name string) (*model.Tag, error) {
	updatedTag, err := r.db.Tag.UpdateOneID(id).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 标签 %d 不存在", constant.ErrNotFound, id)
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 标签 '%s' 已存在", constant.ErrConflict, name)
		}
		return nil, err
	}
	return r.toModel(updatedTag), nil
}

func (r *tagRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.Tag.DeleteOneID(id).Exec(ctx)
	if err != nil && ent.IsNotFound(err) {
		return fmt.Errorf("%w: 标签 %d 不存在", constant.ErrNotFound, id)
	}
	return err
}

func (r *tagRepo) List(ctx context.Context) ([]*model.Tag, error) {
	entities, err := r.db.Tag.Query().
		Order(ent.Asc(tag.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModelSlice(entities), nil
}

// FindByIDs 返回存在的标签，不存在的ID被静默忽略
func (r *tagRepo) FindByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error) {
	if len(ids) == 0 {
		return []*model.Tag{}, nil
	}
	entities, err := r.db.Tag.Query().
		Where(tag.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModelSlice(entities), nil
}

// ExistsByName 检查指定名称的标签是否已存在
func (r *tagRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	count, err := r.db.Tag.Query().
		Where(tag.Name(name)).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
