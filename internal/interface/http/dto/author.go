package dto

// CreateAuthorRequest HTTP作者创建请求(也用于PUT全量更新)
type CreateAuthorRequest struct {
	FirstName string `json:"first_name" binding:"required,max=50" example:"威廉"`
	LastName  string `json:"last_name" binding:"required,max=50" example:"肯尼迪"`
	Email     string `json:"email" binding:"required,email,max=100" example:"author@example.com"`
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02" example:"1970-05-20"`
}

// UpdateAuthorRequest HTTP作者部分更新请求(PATCH)
type UpdateAuthorRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=50"`
	LastName  *string `json:"last_name" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

// ListAuthorsRequest HTTP作者列表请求
type ListAuthorsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Search   string `form:"search" binding:"omitempty,max=100" example:"肯尼迪"`
	Ordering string `form:"ordering" binding:"omitempty,max=30" example:"last_name"`
}
