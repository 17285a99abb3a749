package mysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// 模型转换测试
// Update走Save更新整行,转换时丢掉ID或CreatedAt会把对应列写成零值
// (created_at归零还会打乱默认的created_at排序),这里锁定转换的完整性

func TestToBookModelKeepsIdentityAndTimestamps(t *testing.T) {
	created := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	b := &book.Book{
		ID:              7,
		Title:           "Go语言实战",
		ISBN:            "9787115428028",
		Description:     "实战书籍",
		PublicationDate: time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC),
		Pages:           312,
		Price:           5900,
		Status:          book.StatusBorrowed,
		AuthorID:        1,
		CategoryID:      2,
		CreatedAt:       created,
	}

	model := toBookModel(b)

	assert.Equal(t, uint(7), model.ID, "更新时Save按ID定位行")
	assert.Equal(t, created, model.CreatedAt, "创建时间必须原样携带,不能被更新归零")
	assert.Equal(t, "borrowed", model.Status)

	// 往返转换不丢字段
	back := toBookEntity(model)
	assert.Equal(t, b.ID, back.ID)
	assert.Equal(t, b.CreatedAt, back.CreatedAt)
	assert.Equal(t, b.Title, back.Title)
	assert.Equal(t, b.Status, back.Status)
}

func TestToAuthorModelKeepsIdentityAndTimestamps(t *testing.T) {
	created := time.Date(2023, 6, 1, 8, 30, 0, 0, time.UTC)
	birth := time.Date(1960, 1, 16, 0, 0, 0, 0, time.UTC)
	a := &author.Author{
		ID:        3,
		FirstName: "威廉",
		LastName:  "肯尼迪",
		Email:     "a@example.com",
		BirthDate: &birth,
		CreatedAt: created,
	}

	model := toAuthorModel(a)

	assert.Equal(t, uint(3), model.ID)
	assert.Equal(t, created, model.CreatedAt, "创建时间必须原样携带,不能被更新归零")

	back := toAuthorEntity(model)
	assert.Equal(t, a.ID, back.ID)
	assert.Equal(t, a.CreatedAt, back.CreatedAt)
	assert.Equal(t, a.Email, back.Email)
}
