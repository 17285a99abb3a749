package author

import (
	"context"
)

// Repository 作者仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure层实现,便于Mock测试
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者
	FindByID(ctx context.Context, id uint) (*Author, error)

	// Exists 判断作者是否存在(用于图书外键校验,避免整行查询)
	Exists(ctx context.Context, id uint) (bool, error)

	// Update 更新作者信息
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者
	Delete(ctx context.Context, id uint) error

	// List 分页查询作者列表
	List(ctx context.Context, params ListParams) ([]*Author, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Search   string // 搜索关键词(搜索姓、名、邮箱)
	Ordering string // 排序字段(last_name, first_name, created_at,前缀"-"表示降序)
}
