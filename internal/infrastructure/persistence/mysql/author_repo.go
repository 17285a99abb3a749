package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// authorOrderFields 作者列表允许的排序字段
var authorOrderFields = map[string]bool{
	"last_name":  true,
	"first_name": true,
	"created_at": true,
}

// authorRepository 作者仓储实现(MySQL)
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(&model), nil
}

// Exists 判断作者是否存在
// 只COUNT主键,避免整行查询(图书创建/更新时的外键校验会频繁调用)
func (r *authorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&AuthorModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询作者失败")
	}
	return count > 0, nil
}

// Update 更新作者信息
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return author.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "更新作者失败")
	}

	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除作者(软删除)
// 注意:RESTRICT检查(名下是否有图书)在领域服务层完成
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&AuthorModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}

	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

// List 分页查询作者列表
func (r *authorRepository) List(ctx context.Context, params author.ListParams) ([]*author.Author, int64, error) {
	var models []AuthorModel
	var total int64

	query := r.db.WithContext(ctx).Model(&AuthorModel{})

	// 关键词搜索(搜索姓、名、邮箱)
	if params.Search != "" {
		keyword := "%" + params.Search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", keyword, keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者总数失败")
	}

	// 默认按姓、名排序
	query = query.Order(orderClause(params.Ordering, authorOrderFields, "last_name ASC, first_name ASC"))

	offset := (params.Page - 1) * params.PageSize
	query = query.Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}

	return authors, total, nil
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		BirthDate: model.BirthDate,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// toAuthorModel 领域实体 → GORM模型
// ID与CreatedAt必须一并携带,Save更新整行,丢掉会写成零值
func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		BirthDate: a.BirthDate,
		CreatedAt: a.CreatedAt,
	}
}
