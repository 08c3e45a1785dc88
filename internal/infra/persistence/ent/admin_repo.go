package ent

import (
	"context"
	"fmt"

	"github.com/xyhcode/vue-blog-api/ent"
	"github.com/xyhcode/vue-blog-api/ent/admin"
	"github.com/xyhcode/vue-blog-api/pkg/constant"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/domain/repository"
)

type adminRepo struct {
	db *ent.Client
}

func NewAdminRepo(db *ent.Client) repository.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) toModel(a *ent.Admin) *model.Admin {
	if a == nil {
		return nil
	}
	return &model.Admin{
		ID:           a.ID,
		CreatedAt:    a.CreatedAt,
		Email:        a.Email,
		FullName:     a.FullName,
		PasswordHash: a.PasswordHash,
	}
}

func (r *adminRepo) Create(ctx context.Context, email, fullName, passwordHash string) (*model.Admin, error) {
	newAdmin, err := r.db.Admin.Create().
		SetEmail(email).
		SetFullName(fullName).
		SetPasswordHash(passwordHash).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 邮箱 '%s' 已被注册", constant.ErrConflict, email)
		}
		return nil, err
	}
	return r.toModel(newAdmin), nil
}

func (r *adminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	entity, err := r.db.Admin.Query().
		Where(admin.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 邮箱 '%s' 未注册", constant.ErrNotFound, email)
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

func (r *adminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.db.Admin.Query().
		Where(admin.Email(email)).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
