package book

import (
	"time"
)

// Status 图书可借状态
// 状态机说明:
//
//	available ──MarkBorrowed──→ borrowed
//	borrowed  ──MarkReturned──→ available
//
// 只有这两个状态,新建图书默认available
type Status string

const (
	// StatusAvailable 可借
	StatusAvailable Status = "available"

	// StatusBorrowed 已借出
	StatusBorrowed Status = "borrowed"
)

// Valid 判断状态值是否合法
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusBorrowed
}

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,通过AuthorID/CategoryID引用作者和分类(外键,不内嵌)
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. ISBN作为业务唯一标识(数据库层保证唯一性)
// 4. Status的并发修改不走实体方法,而是仓储层的条件更新(见Repository.UpdateStatus)
type Book struct {
	ID              uint
	Title           string    // 书名
	ISBN            string    // ISBN号(国际标准书号)
	Description     string    // 图书描述
	PublicationDate time.Time // 出版日期
	Pages           int       // 页数
	Price           int64     // 价格(单位:分,1元=100分)
	Status          Status    // 可借状态
	AuthorID        uint      // 作者ID(必填外键)
	CategoryID      uint      // 分类ID(必填外键)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书(工厂方法)
// 新建图书的状态固定为available
func NewBook(title, isbn, description string, publicationDate time.Time, pages int, price int64, authorID, categoryID uint) *Book {
	now := time.Now()
	return &Book{
		Title:           title,
		ISBN:            isbn,
		Description:     description,
		PublicationDate: publicationDate,
		Pages:           pages,
		Price:           price,
		Status:          StatusAvailable,
		AuthorID:        authorID,
		CategoryID:      categoryID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsAvailable 图书当前是否可借
func (b *Book) IsAvailable() bool {
	return b.Status == StatusAvailable
}

// MarkBorrowed 借出图书(领域行为)
// 业务规则:只有available状态可以借出
// 注意:并发场景下以仓储层的条件更新结果为准,此方法用于单机校验与测试
func (b *Book) MarkBorrowed() error {
	if b.Status != StatusAvailable {
		return ErrNotAvailable
	}
	b.Status = StatusBorrowed
	b.UpdatedAt = time.Now()
	return nil
}

// MarkReturned 归还图书(领域行为)
// 业务规则:只有borrowed状态可以归还
func (b *Book) MarkReturned() error {
	if b.Status != StatusBorrowed {
		return ErrNotBorrowed
	}
	b.Status = StatusAvailable
	b.UpdatedAt = time.Now()
	return nil
}

// AgeInYears 距出版日期的年数
func (b *Book) AgeInYears() int {
	days := int(time.Since(b.PublicationDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 365
}
