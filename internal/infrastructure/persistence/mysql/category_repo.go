package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/category"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// categoryOrderFields 分类列表允许的排序字段
var categoryOrderFields = map[string]bool{
	"name":       true,
	"created_at": true,
}

// categoryRepository 分类仓储实现(MySQL)
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

// Create 创建分类
func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := &CategoryModel{
		Name:        c.Name,
		Description: c.Description,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建分类失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt

	return nil
}

// FindByID 根据ID查找分类
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return toCategoryEntity(&model), nil
}

// Exists 判断分类是否存在
func (r *categoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CategoryModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询分类失败")
	}
	return count > 0, nil
}

// Update 更新分类信息
func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	model := &CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "更新分类失败")
	}

	return nil
}

// Delete 删除分类(软删除)
// RESTRICT检查在领域服务层完成
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&CategoryModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}

	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

// List 分页查询分类列表
func (r *categoryRepository) List(ctx context.Context, params category.ListParams) ([]*category.Category, int64, error) {
	var models []CategoryModel
	var total int64

	query := r.db.WithContext(ctx).Model(&CategoryModel{})

	// 关键词搜索(搜索名称、描述)
	if params.Search != "" {
		keyword := "%" + params.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类总数失败")
	}

	// 默认按名称升序
	query = query.Order(orderClause(params.Ordering, categoryOrderFields, "name ASC"))

	offset := (params.Page - 1) * params.PageSize
	query = query.Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}

	return categories, total, nil
}

// toCategoryEntity GORM模型 → 领域实体
func toCategoryEntity(model *CategoryModel) *category.Category {
	return &category.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
	}
}
