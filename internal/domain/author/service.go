package author

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// BookCounter 图书计数接口
// 设计说明:
// 删除作者前需要检查名下是否还有图书(RESTRICT删除策略),
// 但author聚合不应该依赖book聚合,所以在本包声明最小接口,
// 由infrastructure层的图书仓储实现
type BookCounter interface {
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
}

// Service 作者领域服务接口
type Service interface {
	// CreateAuthor 创建作者
	// 业务规则:姓名必填,邮箱必填且不能重复
	CreateAuthor(ctx context.Context, firstName, lastName, email string, birthDate *time.Time) (*Author, error)

	// GetAuthor 根据ID获取作者
	GetAuthor(ctx context.Context, id uint) (*Author, error)

	// UpdateAuthor 更新作者信息(nil字段保持不变)
	UpdateAuthor(ctx context.Context, id uint, firstName, lastName, email *string, birthDate *time.Time) (*Author, error)

	// DeleteAuthor 删除作者
	// 业务规则:名下仍有图书时禁止删除(返回409冲突)
	DeleteAuthor(ctx context.Context, id uint) error

	// ListAuthors 分页查询作者列表
	ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error)

	// CountBooks 统计作者名下的图书数(详情响应中的books_count)
	CountBooks(ctx context.Context, id uint) (int64, error)
}

// service 领域服务实现
type service struct {
	repo  Repository
	books BookCounter
}

// NewService 创建作者领域服务
func NewService(repo Repository, books BookCounter) Service {
	return &service{repo: repo, books: books}
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, firstName, lastName, email string, birthDate *time.Time) (*Author, error) {
	// 1. 字段校验(binding tag已做格式校验,这里兜底业务规则)
	if fields := validateFields(firstName, lastName, email); len(fields) > 0 {
		return nil, apperrors.NewValidation(fields)
	}

	// 2. 创建实体并持久化(邮箱唯一性由Repository处理重复错误)
	author := NewAuthor(strings.TrimSpace(firstName), strings.TrimSpace(lastName), email, birthDate)
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, err
	}

	return author, nil
}

// GetAuthor 根据ID获取作者
func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAuthor 更新作者信息
func (s *service) UpdateAuthor(ctx context.Context, id uint, firstName, lastName, email *string, birthDate *time.Time) (*Author, error) {
	// 1. 查询作者
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 校验提供的字段(部分更新时nil字段跳过)
	fields := map[string]string{}
	if firstName != nil && strings.TrimSpace(*firstName) == "" {
		fields["first_name"] = "名不能为空"
	}
	if lastName != nil && strings.TrimSpace(*lastName) == "" {
		fields["last_name"] = "姓不能为空"
	}
	if email != nil && strings.TrimSpace(*email) == "" {
		fields["email"] = "邮箱不能为空"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields)
	}

	// 3. 更新并持久化
	author.UpdateInfo(firstName, lastName, email, birthDate)
	if err := s.repo.Update(ctx, author); err != nil {
		return nil, err
	}

	return author, nil
}

// DeleteAuthor 删除作者
// 删除策略说明:
// 选择RESTRICT而非CASCADE——图书必须引用一个存在的作者,
// 级联删除会连带删掉图书记录,对目录服务来说破坏性太大
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	// 1. 确认作者存在
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	// 2. RESTRICT检查:名下有图书时拒绝删除
	count, err := s.books.CountByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAuthorHasBooks
	}

	// 3. 执行删除
	return s.repo.Delete(ctx, id)
}

// ListAuthors 分页查询作者列表
func (s *service) ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error) {
	return s.repo.List(ctx, params)
}

// CountBooks 统计作者名下的图书数
func (s *service) CountBooks(ctx context.Context, id uint) (int64, error) {
	return s.books.CountByAuthor(ctx, id)
}

// validateFields 创建时的必填字段校验
func validateFields(firstName, lastName, email string) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(firstName) == "" {
		fields["first_name"] = "名不能为空"
	}
	if strings.TrimSpace(lastName) == "" {
		fields["last_name"] = "姓不能为空"
	}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "邮箱不能为空"
	}
	return fields
}
