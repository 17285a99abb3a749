package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 创建分类
	Create(ctx context.Context, category *Category) error

	// FindByID 根据ID查找分类
	FindByID(ctx context.Context, id uint) (*Category, error)

	// Exists 判断分类是否存在(用于图书外键校验)
	Exists(ctx context.Context, id uint) (bool, error)

	// Update 更新分类信息
	Update(ctx context.Context, category *Category) error

	// Delete 删除分类
	Delete(ctx context.Context, id uint) error

	// List 分页查询分类列表
	List(ctx context.Context, params ListParams) ([]*Category, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Search   string // 搜索关键词(搜索名称、描述)
	Ordering string // 排序字段(name, created_at,前缀"-"表示降序)
}
