package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
)

// UpdateBookUseCase 图书更新用例
// 教学要点:
// 1. PUT全量更新与PATCH部分更新共用一个用例,区别只在请求字段是否全填
// 2. 更新成功后删除缓存(而不是更新缓存),下次读取时自动回填
type UpdateBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, cache *redis.BookCache) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// UpdateBookRequest 更新请求DTO
// 指针字段:nil表示不修改该字段
type UpdateBookRequest struct {
	Title           *string
	ISBN            *string
	Description     *string
	PublicationDate *string // YYYY-MM-DD
	Pages           *int
	Price           *int64
	AuthorID        *uint
	CategoryID      *uint
}

// Execute 执行更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookDetail, error) {
	params := book.UpdateParams{
		Title:       req.Title,
		ISBN:        req.ISBN,
		Description: req.Description,
		Pages:       req.Pages,
		Price:       req.Price,
		AuthorID:    req.AuthorID,
		CategoryID:  req.CategoryID,
	}

	if req.PublicationDate != nil {
		pubDate, err := parseDate(*req.PublicationDate)
		if err != nil {
			return nil, err
		}
		params.PublicationDate = &pubDate
	}

	b, err := uc.bookService.UpdateBook(ctx, id, params)
	if err != nil {
		return nil, err
	}

	// 缓存失效,失败不影响更新结果
	_ = uc.cache.Delete(ctx, id)

	return toBookDetail(b, "", ""), nil
}
