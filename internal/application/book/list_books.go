package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持分页、搜索、过滤(状态/作者/分类)、排序
// 2. 排序字段白名单在持久层校验,非法字段回退默认排序
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page       int    // 页码(从1开始)
	PageSize   int    // 每页数量
	Search     string // 搜索关键词(书名、简介、作者姓名)
	Status     string // 状态过滤(available/borrowed)
	AuthorID   uint   // 作者过滤
	CategoryID uint   // 分类过滤
	Ordering   string // 排序字段,前缀"-"表示降序(如 -created_at)
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	Items    []BookListItem
	Total    int64
	Page     int
	PageSize int
}

// Execute 执行列表查询
// 学习要点:
// 1. 参数默认值处理(page默认1, pageSize默认20)
// 2. 参数范围限制(pageSize最大100)
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:       page,
		PageSize:   pageSize,
		Search:     req.Search,
		Status:     book.Status(req.Status),
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
		Ordering:   req.Ordering,
	})
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		Items:    toBookListItems(books),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// normalizePage 分页参数默认值与范围限制
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20 // 默认每页20条
	}
	if pageSize > 100 {
		pageSize = 100 // 最大每页100条
	}
	return page, pageSize
}
