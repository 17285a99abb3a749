package category

import (
	"context"
	"strings"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// BookCounter 图书计数接口(RESTRICT删除检查用,见author包的同名接口)
type BookCounter interface {
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// Service 分类领域服务接口
type Service interface {
	// CreateCategory 创建分类(名称必填且不能重复)
	CreateCategory(ctx context.Context, name, description string) (*Category, error)

	// GetCategory 根据ID获取分类
	GetCategory(ctx context.Context, id uint) (*Category, error)

	// UpdateCategory 更新分类信息(nil字段保持不变)
	UpdateCategory(ctx context.Context, id uint, name, description *string) (*Category, error)

	// DeleteCategory 删除分类(分类下仍有图书时返回409冲突)
	DeleteCategory(ctx context.Context, id uint) error

	// ListCategories 分页查询分类列表
	ListCategories(ctx context.Context, params ListParams) ([]*Category, int64, error)

	// CountBooks 统计分类下的图书数(详情响应中的books_count)
	CountBooks(ctx context.Context, id uint) (int64, error)
}

type service struct {
	repo  Repository
	books BookCounter
}

// NewService 创建分类领域服务
func NewService(repo Repository, books BookCounter) Service {
	return &service{repo: repo, books: books}
}

// CreateCategory 创建分类
func (s *service) CreateCategory(ctx context.Context, name, description string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidation(map[string]string{"name": "分类名称不能为空"})
	}

	category := NewCategory(strings.TrimSpace(name), description)
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory 根据ID获取分类
func (s *service) GetCategory(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateCategory 更新分类信息
func (s *service) UpdateCategory(ctx context.Context, id uint, name, description *string) (*Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil && strings.TrimSpace(*name) == "" {
		return nil, apperrors.NewValidation(map[string]string{"name": "分类名称不能为空"})
	}

	category.UpdateInfo(name, description)
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory 删除分类
// RESTRICT删除策略:分类下仍有图书时拒绝删除(与作者删除保持一致)
func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.books.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasBooks
	}

	return s.repo.Delete(ctx, id)
}

// ListCategories 分页查询分类列表
func (s *service) ListCategories(ctx context.Context, params ListParams) ([]*Category, int64, error) {
	return s.repo.List(ctx, params)
}

// CountBooks 统计分类下的图书数
func (s *service) CountBooks(ctx context.Context, id uint) (int64, error) {
	return s.books.CountByCategory(ctx, id)
}
