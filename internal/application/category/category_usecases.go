package category

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/category"
)

// CategoryUseCases 分类用例集合
// 与作者用例同构:纯CRUD编排,合并到一个结构体
type CategoryUseCases struct {
	categoryService category.Service
}

// NewCategoryUseCases 创建分类用例集合
func NewCategoryUseCases(categoryService category.Service) *CategoryUseCases {
	return &CategoryUseCases{categoryService: categoryService}
}

// CategoryRequest 创建/全量更新请求DTO
type CategoryRequest struct {
	Name        string
	Description string
}

// CategoryPatchRequest 部分更新请求DTO,nil字段不修改
type CategoryPatchRequest struct {
	Name        *string
	Description *string
}

// CategoryResponse 分类响应DTO
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BooksCount  int64  `json:"books_count"`
	CreatedAt   string `json:"created_at"`
}

// ListCategoriesRequest 列表查询请求DTO
type ListCategoriesRequest struct {
	Page     int
	PageSize int
	Search   string
	Ordering string
}

// ListCategoriesResponse 列表查询响应DTO
type ListCategoriesResponse struct {
	Items    []CategoryResponse
	Total    int64
	Page     int
	PageSize int
}

// Create 创建分类
func (uc *CategoryUseCases) Create(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	c, err := uc.categoryService.CreateCategory(ctx, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Get 查询分类详情(含分类下图书数)
func (uc *CategoryUseCases) Get(ctx context.Context, id uint) (*CategoryResponse, error) {
	c, err := uc.categoryService.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := uc.categoryService.CountBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toCategoryResponse(c)
	resp.BooksCount = count
	return resp, nil
}

// Update 部分更新分类
func (uc *CategoryUseCases) Update(ctx context.Context, id uint, req CategoryPatchRequest) (*CategoryResponse, error) {
	c, err := uc.categoryService.UpdateCategory(ctx, id, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Delete 删除分类(分类下仍有图书时拒绝)
func (uc *CategoryUseCases) Delete(ctx context.Context, id uint) error {
	return uc.categoryService.DeleteCategory(ctx, id)
}

// List 分页查询分类列表
func (uc *CategoryUseCases) List(ctx context.Context, req ListCategoriesRequest) (*ListCategoriesResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	categories, total, err := uc.categoryService.ListCategories(ctx, category.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		Ordering: req.Ordering,
	})
	if err != nil {
		return nil, err
	}

	// 与作者列表一样逐个计数,见author包的N+1说明
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = *toCategoryResponse(c)
		count, err := uc.categoryService.CountBooks(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		items[i].BooksCount = count
	}

	return &ListCategoriesResponse{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// toCategoryResponse 领域实体转响应DTO
func toCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
