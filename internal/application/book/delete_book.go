package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
)

// DeleteBookUseCase 图书删除用例
// 业务规则:借出中的图书禁止删除(领域服务校验)
type DeleteBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, cache *redis.BookCache) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// Execute 执行删除用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, id)

	return nil
}
