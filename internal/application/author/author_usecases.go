package author

import (
	"context"
	"time"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// AuthorUseCases 作者用例集合
// 设计说明:
// 作者聚合的用例都是简单的CRUD编排,没有跨服务协调,
// 合并到一个结构体中,避免为每个用例建一个只有三行的文件
type AuthorUseCases struct {
	authorService author.Service
}

// NewAuthorUseCases 创建作者用例集合
func NewAuthorUseCases(authorService author.Service) *AuthorUseCases {
	return &AuthorUseCases{authorService: authorService}
}

// AuthorRequest 创建/全量更新请求DTO
type AuthorRequest struct {
	FirstName string
	LastName  string
	Email     string
	BirthDate string // YYYY-MM-DD,空串表示未填写
}

// AuthorPatchRequest 部分更新请求DTO,nil字段不修改
type AuthorPatchRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	BirthDate *string
}

// AuthorResponse 作者响应DTO
type AuthorResponse struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	BirthDate  string `json:"birth_date,omitempty"`
	BooksCount int64  `json:"books_count"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ListAuthorsRequest 列表查询请求DTO
type ListAuthorsRequest struct {
	Page     int
	PageSize int
	Search   string // 搜索姓名、邮箱
	Ordering string // 如 last_name、-created_at
}

// ListAuthorsResponse 列表查询响应DTO
type ListAuthorsResponse struct {
	Items    []AuthorResponse
	Total    int64
	Page     int
	PageSize int
}

// Create 创建作者
func (uc *AuthorUseCases) Create(ctx context.Context, req AuthorRequest) (*AuthorResponse, error) {
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	a, err := uc.authorService.CreateAuthor(ctx, req.FirstName, req.LastName, req.Email, birthDate)
	if err != nil {
		return nil, err
	}

	return toAuthorResponse(a), nil
}

// Get 查询作者详情(含名下图书数)
func (uc *AuthorUseCases) Get(ctx context.Context, id uint) (*AuthorResponse, error) {
	a, err := uc.authorService.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := uc.authorService.CountBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toAuthorResponse(a)
	resp.BooksCount = count
	return resp, nil
}

// Update 部分更新作者(PUT全量更新时由Handler填充所有字段)
func (uc *AuthorUseCases) Update(ctx context.Context, id uint, req AuthorPatchRequest) (*AuthorResponse, error) {
	var birthDate *time.Time
	if req.BirthDate != nil {
		bd, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		birthDate = bd
	}

	a, err := uc.authorService.UpdateAuthor(ctx, id, req.FirstName, req.LastName, req.Email, birthDate)
	if err != nil {
		return nil, err
	}

	return toAuthorResponse(a), nil
}

// Delete 删除作者(名下有图书时拒绝)
func (uc *AuthorUseCases) Delete(ctx context.Context, id uint) error {
	return uc.authorService.DeleteAuthor(ctx, id)
}

// List 分页查询作者列表
func (uc *AuthorUseCases) List(ctx context.Context, req ListAuthorsRequest) (*ListAuthorsResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	authors, total, err := uc.authorService.ListAuthors(ctx, author.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		Ordering: req.Ordering,
	})
	if err != nil {
		return nil, err
	}

	// 列表逐个统计图书数(N+1查询,目录数据量下可接受;
	// 数据量大时应改为JOIN聚合一次查出)
	items := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		items[i] = *toAuthorResponse(a)
		count, err := uc.authorService.CountBooks(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		items[i].BooksCount = count
	}

	return &ListAuthorsResponse{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// toAuthorResponse 领域实体转响应DTO
func toAuthorResponse(a *author.Author) *AuthorResponse {
	resp := &AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName(),
		Email:     a.Email,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if a.BirthDate != nil {
		resp.BirthDate = a.BirthDate.Format("2006-01-02")
	}
	return resp
}

// parseBirthDate 解析出生日期,空串返回nil(未填写)
func parseBirthDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apperrors.NewValidation(map[string]string{
			"birth_date": "日期格式不正确,应为YYYY-MM-DD",
		})
	}
	return &t, nil
}
