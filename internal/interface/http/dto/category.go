package dto

// CreateCategoryRequest HTTP分类创建请求(也用于PUT全量更新)
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"计算机"`
	Description string `json:"description" binding:"max=1000" example:"计算机与编程类图书"`
}

// UpdateCategoryRequest HTTP分类部分更新请求(PATCH)
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// ListCategoriesRequest HTTP分类列表请求
type ListCategoriesRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Search   string `form:"search" binding:"omitempty,max=100" example:"计算机"`
	Ordering string `form:"ordering" binding:"omitempty,max=30" example:"name"`
}
