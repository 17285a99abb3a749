package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
)

// GetBookUseCase 图书详情查询用例
// 教学要点:
// 1. Cache-Aside模式:先查缓存,未命中再查数据库并回填
// 2. 缓存只存领域实体,作者/分类名称每次现查(名称变更无需清理图书缓存)
// 3. 缓存失败不影响查询结果,只是退化为直接查库
type GetBookUseCase struct {
	bookService     book.Service
	authorService   author.Service
	categoryService category.Service
	cache           *redis.BookCache
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(
	bookService book.Service,
	authorService author.Service,
	categoryService category.Service,
	cache *redis.BookCache,
) *GetBookUseCase {
	return &GetBookUseCase{
		bookService:     bookService,
		authorService:   authorService,
		categoryService: categoryService,
		cache:           cache,
	}
}

// Execute 执行详情查询
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDetail, error) {
	// 1. 先查缓存
	b, err := uc.cache.Get(ctx, id)
	if err != nil || b == nil {
		// 2. 缓存未命中(或缓存故障),查数据库
		b, err = uc.bookService.GetBook(ctx, id)
		if err != nil {
			return nil, err
		}

		// 3. 回填缓存,失败不影响本次查询
		_ = uc.cache.Set(ctx, b)
	}

	// 4. 组装作者/分类名称
	authorName, categoryName := uc.resolveNames(ctx, b)

	return toBookDetail(b, authorName, categoryName), nil
}

// resolveNames 查询作者与分类名称,查不到时留空而不报错
func (uc *GetBookUseCase) resolveNames(ctx context.Context, b *book.Book) (string, string) {
	var authorName, categoryName string

	if a, err := uc.authorService.GetAuthor(ctx, b.AuthorID); err == nil {
		authorName = a.FullName()
	}
	if cat, err := uc.categoryService.GetCategory(ctx, b.CategoryID); err == nil {
		categoryName = cat.Name
	}

	return authorName, categoryName
}
