package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// ListAvailableUseCase 可借图书查询用例
// 这类定制查询不分页,直接返回全量结果
type ListAvailableUseCase struct {
	bookService book.Service
}

// NewListAvailableUseCase 创建可借图书查询用例
func NewListAvailableUseCase(bookService book.Service) *ListAvailableUseCase {
	return &ListAvailableUseCase{bookService: bookService}
}

// Execute 执行可借图书查询
func (uc *ListAvailableUseCase) Execute(ctx context.Context) ([]BookListItem, error) {
	books, err := uc.bookService.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toBookListItems(books), nil
}

// ListByAuthorUseCase 按作者查询图书用例
type ListByAuthorUseCase struct {
	bookService book.Service
}

// NewListByAuthorUseCase 创建按作者查询用例
func NewListByAuthorUseCase(bookService book.Service) *ListByAuthorUseCase {
	return &ListByAuthorUseCase{bookService: bookService}
}

// Execute 执行按作者查询,作者不存在时返回作者不存在错误
func (uc *ListByAuthorUseCase) Execute(ctx context.Context, authorID uint) ([]BookListItem, error) {
	books, err := uc.bookService.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return toBookListItems(books), nil
}
