package book

import (
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// BookDetail 图书详情DTO
// 设计说明:
// 1. author_name/category_name是冗余展示字段,由用例层组装
// 2. age_in_years/is_available是派生字段,由领域实体计算
type BookDetail struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	Description     string `json:"description"`
	PublicationDate string `json:"publication_date"`
	Pages           int    `json:"pages"`
	Price           int64  `json:"price"` // 价格(分)
	Status          string `json:"status"`
	AuthorID        uint   `json:"author_id"`
	AuthorName      string `json:"author_name,omitempty"`
	CategoryID      uint   `json:"category_id"`
	CategoryName    string `json:"category_name,omitempty"`
	AgeInYears      int    `json:"age_in_years"`
	IsAvailable     bool   `json:"is_available"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// BookListItem 列表项DTO(不含description,减少数据传输量)
type BookListItem struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	PublicationDate string `json:"publication_date"`
	Price           int64  `json:"price"` // 价格(分)
	Status          string `json:"status"`
	AuthorID        uint   `json:"author_id"`
	CategoryID      uint   `json:"category_id"`
	IsAvailable     bool   `json:"is_available"`
	CreatedAt       string `json:"created_at"`
}

// toBookDetail 领域实体转详情DTO
func toBookDetail(b *book.Book, authorName, categoryName string) *BookDetail {
	return &BookDetail{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		Description:     b.Description,
		PublicationDate: b.PublicationDate.Format("2006-01-02"),
		Pages:           b.Pages,
		Price:           b.Price,
		Status:          string(b.Status),
		AuthorID:        b.AuthorID,
		AuthorName:      authorName,
		CategoryID:      b.CategoryID,
		CategoryName:    categoryName,
		AgeInYears:      b.AgeInYears(),
		IsAvailable:     b.IsAvailable(),
		CreatedAt:       b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// toBookListItems 领域实体批量转列表项DTO
func toBookListItems(books []*book.Book) []BookListItem {
	items := make([]BookListItem, len(books))
	for i, b := range books {
		items[i] = BookListItem{
			ID:              b.ID,
			Title:           b.Title,
			ISBN:            b.ISBN,
			PublicationDate: b.PublicationDate.Format("2006-01-02"),
			Price:           b.Price,
			Status:          string(b.Status),
			AuthorID:        b.AuthorID,
			CategoryID:      b.CategoryID,
			IsAvailable:     b.IsAvailable(),
			CreatedAt:       b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return items
}
