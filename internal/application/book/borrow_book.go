package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// BorrowBookUseCase 图书借出用例
// 教学要点:
// 1. 状态转换的原子性由持久层的条件更新保证,
//    两个并发借出请求只有一个能成功,另一个收到冲突错误
// 2. 借出冲突通过Prometheus计数器统计,便于观察热点图书
type BorrowBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewBorrowBookUseCase 创建借出用例
func NewBorrowBookUseCase(bookService book.Service, cache *redis.BookCache) *BorrowBookUseCase {
	return &BorrowBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// Execute 执行借出用例
func (uc *BorrowBookUseCase) Execute(ctx context.Context, id uint) (*BookDetail, error) {
	b, err := uc.bookService.MarkBorrowed(ctx, id)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil && appErr.Code == apperrors.ErrCodeInvalidTransition {
			metrics.BorrowConflictsTotal.Inc()
		}
		return nil, err
	}

	metrics.BooksBorrowedTotal.Inc()
	_ = uc.cache.Delete(ctx, id)

	return toBookDetail(b, "", ""), nil
}

// ReturnBookUseCase 图书归还用例
type ReturnBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewReturnBookUseCase 创建归还用例
func NewReturnBookUseCase(bookService book.Service, cache *redis.BookCache) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// Execute 执行归还用例
func (uc *ReturnBookUseCase) Execute(ctx context.Context, id uint) (*BookDetail, error) {
	b, err := uc.bookService.MarkReturned(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.BooksReturnedTotal.Inc()
	_ = uc.cache.Delete(ctx, id)

	return toBookDetail(b, "", ""), nil
}
