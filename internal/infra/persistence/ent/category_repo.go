package ent

import (
	"context"
	"fmt"

	"github.com/xyhcode/vue-blog-api/ent"
	"github.com/xyhcode/vue-blog-api/ent/category"
	"github.com/xyhcode/vue-blog-api/pkg/constant"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/domain/repository"
)

type categoryRepo struct {
	db *ent.Client
}

func NewCategoryRepo(db *ent.Client) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) toModel(c *ent.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Name:      c.Name,
	}
}

func (r *categoryRepo) Create(ctx context.Context, name string) (*model.Category, error) {
	newCategory, err := r.db.Category.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 分类 '%s' 已存在", constant.ErrConflict, name)
		}
		return nil, err
	}
	return r.toModel(newCategory), nil
}

// CreateBatch 在一个事务中批量创建分类，任何一条失败则全部回滚。
func (r *categoryRepo) CreateBatch(ctx context.Context, names []string) ([]*model.Category, error) {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("开启事务失败: %w", err)
	}

	builders := make([]*ent.CategoryCreate, len(names))
	for i, name := range names {
		builders[i] = tx.Category.Create().SetName(name)
	}
	entities, err := tx.Category.CreateBulk(builders...).Save(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 存在重复的分类名称", constant.ErrConflict)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("提交事务失败: %w", err)
	}

	models := make([]*model.Category, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}

func (r *categoryRepo) Update(ctx context.Context, id uint, name string) (*model.Category, error) {
	updatedCategory, err := r.db.Category.UpdateOneID(id).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 分类 %d 不存在", constant.ErrNotFound, id)
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 分类 '%s' 已存在", constant.ErrConflict, name)
		}
		return nil, err
	}
	return r.toModel(updatedCategory), nil
}

func (r *categoryRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.Category.DeleteOneID(id).Exec(ctx)
	if err != nil && ent.IsNotFound(err) {
		return fmt.Errorf("%w: 分类 %d 不存在", constant.ErrNotFound, id)
	}
	return err
}

func (r *categoryRepo) List(ctx context.Context) ([]*model.Category, error) {
	entities, err := r.db.Category.Query().
		Order(ent.Asc(category.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	models := make([]*model.Category, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	entity, err := r.db.Category.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 分类 %d 不存在", constant.ErrNotFound, id)
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// ExistsByName 检查指定名称的分类是否已存在
func (r *categoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	count, err := r.db.Category.Query().
		Where(category.Name(name)).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
