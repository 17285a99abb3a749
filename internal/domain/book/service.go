package book

import (
	"context"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// AuthorChecker 作者存在性检查接口
// 图书聚合不直接依赖author聚合,只声明自己需要的最小能力,
// 由infrastructure层的作者仓储实现
type AuthorChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CategoryChecker 分类存在性检查接口
type CategoryChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CreateParams 创建图书参数
type CreateParams struct {
	Title           string    // 书名
	ISBN            string    // ISBN号
	Description     string    // 图书描述
	PublicationDate time.Time // 出版日期
	Pages           int       // 页数
	Price           int64     // 价格(分)
	AuthorID        uint      // 作者ID
	CategoryID      uint      // 分类ID
}

// UpdateParams 更新图书参数
// 全部使用指针:nil表示该字段不修改(PATCH部分更新),
// PUT全量更新时由Handler层保证所有字段都已填充
type UpdateParams struct {
	Title           *string
	ISBN            *string
	Description     *string
	PublicationDate *time.Time
	Pages           *int
	Price           *int64
	AuthorID        *uint
	CategoryID      *uint
}

// Service 图书领域服务接口
// 职责:
// 1. 目录CRUD的业务规则校验(字段约束+外键引用存在性)
// 2. 可借状态机的转换控制(借出/归还)
// 3. 可借状态相关查询(可借列表、按作者查询)
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - 书名必填(<=200字符)
	// - ISBN格式必须合法(10位或13位数字),且不能重复
	// - 页数必须>0,价格必须>=0
	// - 作者和分类必须存在(悬空外键按校验错误处理)
	CreateBook(ctx context.Context, params CreateParams) (*Book, error)

	// GetBook 根据ID获取图书详情
	GetBook(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书信息(nil字段不变,外键变更时重新校验)
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error)

	// DeleteBook 删除图书
	// 业务规则:已借出的图书禁止删除
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表(过滤+搜索+排序)
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListAvailable 查询所有可借图书
	ListAvailable(ctx context.Context) ([]*Book, error)

	// ListByAuthor 查询某作者的所有图书(作者不存在时返回404)
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// MarkBorrowed 借出图书
	// 并发保证:底层是条件更新,两个并发借出请求只有一个成功,
	// 另一个返回ErrNotAvailable(409)
	MarkBorrowed(ctx context.Context, id uint) (*Book, error)

	// MarkReturned 归还图书(未借出时返回ErrNotBorrowed)
	MarkReturned(ctx context.Context, id uint) (*Book, error)
}

// service 领域服务实现
type service struct {
	repo       Repository
	authors    AuthorChecker
	categories CategoryChecker
}

// NewService 创建图书领域服务
func NewService(repo Repository, authors AuthorChecker, categories CategoryChecker) Service {
	return &service{
		repo:       repo,
		authors:    authors,
		categories: categories,
	}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, params CreateParams) (*Book, error) {
	// 1. 字段与外键校验(逐字段收集错误,一次性返回)
	fields, err := s.validateCreate(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields)
	}

	// 2. ISBN重复检查(数据库唯一索引兜底,这里提前给出友好错误)
	existing, err := s.repo.FindByISBN(ctx, normalizeISBN(params.ISBN))
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && err != ErrBookNotFound {
		return nil, err
	}

	// 3. 创建实体(状态固定为available)并持久化
	b := NewBook(
		strings.TrimSpace(params.Title),
		normalizeISBN(params.ISBN),
		params.Description,
		params.PublicationDate,
		params.Pages,
		params.Price,
		params.AuthorID,
		params.CategoryID,
	)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书信息
func (s *service) UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	// 1. 查询图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 校验提供的字段
	fields := map[string]string{}
	if params.Title != nil {
		if t := strings.TrimSpace(*params.Title); t == "" || len(t) > 200 {
			fields["title"] = "书名不能为空且不超过200字符"
		}
	}
	if params.ISBN != nil && !isValidISBN(*params.ISBN) {
		fields["isbn"] = "ISBN必须是10位或13位数字"
	}
	if params.Pages != nil && *params.Pages <= 0 {
		fields["pages"] = "页数必须大于0"
	}
	if params.Price != nil && *params.Price < 0 {
		fields["price"] = "价格不能为负数"
	}

	// 3. 外键变更时重新校验引用存在性
	if params.AuthorID != nil {
		ok, err := s.authors.Exists(ctx, *params.AuthorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fields["author_id"] = "作者不存在"
		}
	}
	if params.CategoryID != nil {
		ok, err := s.categories.Exists(ctx, *params.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fields["category_id"] = "分类不存在"
		}
	}

	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields)
	}

	// 4. 应用变更
	if params.Title != nil {
		b.Title = strings.TrimSpace(*params.Title)
	}
	if params.ISBN != nil {
		b.ISBN = normalizeISBN(*params.ISBN)
	}
	if params.Description != nil {
		b.Description = *params.Description
	}
	if params.PublicationDate != nil {
		b.PublicationDate = *params.PublicationDate
	}
	if params.Pages != nil {
		b.Pages = *params.Pages
	}
	if params.Price != nil {
		b.Price = *params.Price
	}
	if params.AuthorID != nil {
		b.AuthorID = *params.AuthorID
	}
	if params.CategoryID != nil {
		b.CategoryID = *params.CategoryID
	}
	b.UpdatedAt = time.Now()

	// 5. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	// 1. 查询图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// 2. 已借出的图书禁止删除(借阅者还书后才能下架)
	if b.Status == StatusBorrowed {
		return ErrBookBorrowed
	}

	// 3. 执行删除(软删除)
	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// ListAvailable 查询所有可借图书
func (s *service) ListAvailable(ctx context.Context) ([]*Book, error) {
	return s.repo.ListAvailable(ctx)
}

// ListByAuthor 查询某作者的所有图书
func (s *service) ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error) {
	// 作者不存在时返回404(区别于"作者存在但没有图书"的空列表)
	ok, err := s.authors.Exists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")
	}

	return s.repo.ListByAuthor(ctx, authorID)
}

// MarkBorrowed 借出图书
// 并发要点:
// 读-判-写不能分三步做,否则两个并发请求都会读到available。
// 必须依赖仓储层的条件更新(UPDATE ... WHERE status='available'),
// 数据库保证只有一条语句能命中
func (s *service) MarkBorrowed(ctx context.Context, id uint) (*Book, error) {
	if err := s.repo.UpdateStatus(ctx, id, StatusAvailable, StatusBorrowed); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// MarkReturned 归还图书
func (s *service) MarkReturned(ctx context.Context, id uint) (*Book, error) {
	if err := s.repo.UpdateStatus(ctx, id, StatusBorrowed, StatusAvailable); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

// validateCreate 创建图书的字段与外键校验
func (s *service) validateCreate(ctx context.Context, params CreateParams) (map[string]string, error) {
	fields := map[string]string{}

	if t := strings.TrimSpace(params.Title); t == "" || len(t) > 200 {
		fields["title"] = "书名不能为空且不超过200字符"
	}
	if !isValidISBN(params.ISBN) {
		fields["isbn"] = "ISBN必须是10位或13位数字"
	}
	if params.Pages <= 0 {
		fields["pages"] = "页数必须大于0"
	}
	if params.Price < 0 {
		fields["price"] = "价格不能为负数"
	}
	if params.PublicationDate.IsZero() {
		fields["publication_date"] = "出版日期不能为空"
	}

	// 外键引用校验:悬空的author_id/category_id是校验错误(400),不是404
	if params.AuthorID == 0 {
		fields["author_id"] = "作者ID不能为空"
	} else {
		ok, err := s.authors.Exists(ctx, params.AuthorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fields["author_id"] = "作者不存在"
		}
	}

	if params.CategoryID == 0 {
		fields["category_id"] = "分类ID不能为空"
	} else {
		ok, err := s.categories.Exists(ctx, params.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fields["category_id"] = "分类不存在"
		}
	}

	return fields, nil
}

var (
	nonDigitRe = regexp.MustCompile(`[^0-9Xx]`)
	isbn10Re   = regexp.MustCompile(`^[0-9]{9}[0-9Xx]$`)
	isbn13Re   = regexp.MustCompile(`^[0-9]{13}$`)
)

// normalizeISBN 去除ISBN中的分隔符(978-7-115-42802-8 → 9787115428028)
func normalizeISBN(isbn string) string {
	return nonDigitRe.ReplaceAllString(isbn, "")
}

// isValidISBN 校验ISBN格式
// ISBN-10是9位数字加1位校验位(数字或X),ISBN-13是13位纯数字,
// X只允许出现在ISBN-10的末位
// 简化实现:只检查格式(生产环境应校验校验位的值)
func isValidISBN(isbn string) bool {
	clean := normalizeISBN(isbn)
	return isbn10Re.MatchString(clean) || isbn13Re.MatchString(clean)
}
