package dto

// CreateBookRequest HTTP图书创建请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
// - datetime: 日期格式校验
type CreateBookRequest struct {
	Title           string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	ISBN            string `json:"isbn" binding:"required" example:"9787115428028"`
	Description     string `json:"description" binding:"max=5000" example:"一本关于Go语言的实战书籍"`
	PublicationDate string `json:"publication_date" binding:"required,datetime=2006-01-02" example:"2017-03-01"`
	Pages           int    `json:"pages" binding:"required,min=1,max=10000" example:"312"`
	Price           int64  `json:"price" binding:"min=0,max=9999999" example:"5900"` // 价格(分)
	AuthorID        uint   `json:"author_id" binding:"required,min=1" example:"1"`
	CategoryID      uint   `json:"category_id" binding:"required,min=1" example:"1"`
}

// UpdateBookRequest HTTP图书部分更新请求(PATCH)
// 指针字段:缺省表示不修改
type UpdateBookRequest struct {
	Title           *string `json:"title" binding:"omitempty,max=200"`
	ISBN            *string `json:"isbn" binding:"omitempty"`
	Description     *string `json:"description" binding:"omitempty,max=5000"`
	PublicationDate *string `json:"publication_date" binding:"omitempty,datetime=2006-01-02"`
	Pages           *int    `json:"pages" binding:"omitempty,min=1,max=10000"`
	Price           *int64  `json:"price" binding:"omitempty,min=0,max=9999999"`
	AuthorID        *uint   `json:"author_id" binding:"omitempty,min=1"`
	CategoryID      *uint   `json:"category_id" binding:"omitempty,min=1"`
}

// ListBooksRequest HTTP图书列表请求
// Django风格的ordering参数:字段名前缀"-"表示降序,如 -created_at
type ListBooksRequest struct {
	Page       int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Search     string `form:"search" binding:"omitempty,max=100" example:"Go"`
	Status     string `form:"status" binding:"omitempty,oneof=available borrowed" example:"available"`
	AuthorID   uint   `form:"author_id" binding:"omitempty,min=1"`
	CategoryID uint   `form:"category_id" binding:"omitempty,min=1"`
	Ordering   string `form:"ordering" binding:"omitempty,max=30" example:"-created_at"`
}

// ListByAuthorRequest 按作者查询请求
type ListByAuthorRequest struct {
	AuthorID uint `form:"author_id" binding:"required,min=1" example:"1"`
}
