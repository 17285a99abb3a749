package book

import (
	"context"
	"time"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// CreateBookUseCase 图书录入用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO(Data Transfer Object),与HTTP层解耦
// 3. 业务规则校验(ISBN格式、作者/分类是否存在)由领域服务负责
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建录入用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// CreateBookRequest 录入请求DTO
type CreateBookRequest struct {
	Title           string // 书名
	ISBN            string // ISBN号
	Description     string // 图书简介
	PublicationDate string // 出版日期(YYYY-MM-DD)
	Pages           int    // 页数
	Price           int64  // 价格(分)
	AuthorID        uint   // 作者ID
	CategoryID      uint   // 分类ID
}

// Execute 执行录入用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDetail, error) {
	pubDate, err := parseDate(req.PublicationDate)
	if err != nil {
		return nil, err
	}

	b, err := uc.bookService.CreateBook(ctx, book.CreateParams{
		Title:           req.Title,
		ISBN:            req.ISBN,
		Description:     req.Description,
		PublicationDate: pubDate,
		Pages:           req.Pages,
		Price:           req.Price,
		AuthorID:        req.AuthorID,
		CategoryID:      req.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	return toBookDetail(b, "", ""), nil
}

// parseDate 解析日期字符串(YYYY-MM-DD)
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, book.ErrInvalidDate
	}
	return t, nil
}
