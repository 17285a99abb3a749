package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. UpdateStatus是状态机的并发安全保障:条件更新,失败即冲突
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表(过滤+搜索+排序)
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListAvailable 查询所有可借图书
	ListAvailable(ctx context.Context) ([]*Book, error)

	// ListByAuthor 查询某作者的所有图书
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// UpdateStatus 条件更新图书状态(原子操作)
	// 执行 UPDATE books SET status = to WHERE id = ? AND status = from,
	// 只有当前状态等于from时才会更新。两个并发的借出请求中,
	// 只有一个能命中条件,另一个返回状态转换错误
	// 返回值:
	// - 图书不存在 → ErrBookNotFound
	// - 当前状态不是from → ErrNotAvailable / ErrNotBorrowed
	UpdateStatus(ctx context.Context, id uint, from, to Status) error

	// CountByAuthor 统计某作者名下的图书数(RESTRICT删除检查)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)

	// CountByCategory 统计某分类下的图书数(RESTRICT删除检查)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// ListParams 列表查询参数
// 过滤条件为精确匹配(零值表示不过滤),Search为模糊匹配
type ListParams struct {
	Page       int    // 页码(从1开始)
	PageSize   int    // 每页数量
	Search     string // 搜索关键词(搜索书名、描述、作者姓名)
	Status     Status // 按状态过滤(空表示全部)
	AuthorID   uint   // 按作者过滤(0表示全部)
	CategoryID uint   // 按分类过滤(0表示全部)
	Ordering   string // 排序字段(title, publication_date, price, created_at,前缀"-"表示降序)
}
