package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// bookOrderFields 图书列表允许的排序字段(白名单,防止SQL注入)
var bookOrderFields = map[string]bool{
	"title":            true,
	"publication_date": true,
	"price":            true,
	"created_at":       true,
}

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID与时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
// 状态字段不在此更新:借还转换必须走UpdateStatus的条件更新,
// 否则PATCH与并发的借出请求竞争时会把状态改回旧值
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := r.db.WithContext(ctx).Omit("status").Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书(软删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 分页查询图书列表
// 查询能力:
// - 精确过滤: status、author_id、category_id
// - 模糊搜索: 书名、描述、作者姓名(JOIN authors表)
// - 排序: 白名单字段,"-"前缀表示降序
// - 分页: LIMIT/OFFSET + 总数COUNT
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.db.WithContext(ctx).Model(&BookModel{})

	// 精确过滤(零值表示不过滤)
	if params.Status != "" {
		query = query.Where("books.status = ?", string(params.Status))
	}
	if params.AuthorID != 0 {
		query = query.Where("books.author_id = ?", params.AuthorID)
	}
	if params.CategoryID != 0 {
		query = query.Where("books.category_id = ?", params.CategoryID)
	}

	// 关键词搜索(搜索书名、描述、作者姓名)
	if params.Search != "" {
		keyword := "%" + params.Search + "%"
		query = query.
			Joins("JOIN authors ON authors.id = books.author_id").
			Where("books.title LIKE ? OR books.description LIKE ? OR authors.first_name LIKE ? OR authors.last_name LIKE ?",
				keyword, keyword, keyword, keyword)
	}

	// 查询总数(在分页之前)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 排序(默认按创建时间降序)
	query = query.Order(orderClause(params.Ordering, bookOrderFields, "created_at DESC"))

	// 分页
	offset := (params.Page - 1) * params.PageSize
	query = query.Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// ListAvailable 查询所有可借图书
func (r *bookRepository) ListAvailable(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(book.StatusAvailable)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询可借图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, nil
}

// ListByAuthor 查询某作者的所有图书
func (r *bookRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, nil
}

// UpdateStatus 条件更新图书状态(原子操作)
// 核心SQL: UPDATE books SET status = ? WHERE id = ? AND status = ?
// 并发要点:
// 两个并发的借出请求,数据库只会让一条UPDATE命中条件(status='available'),
// 另一条RowsAffected=0。不需要SELECT FOR UPDATE,单条语句天然原子
func (r *bookRepository) UpdateStatus(ctx context.Context, id uint, from, to book.Status) error {
	result := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("id = ?", id).
		Where("status = ?", string(from)).
		Update("status", string(to))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书状态失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者状态不满足条件,再查一次确定原因
		var model BookModel
		if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		// 图书存在,说明是状态冲突
		if to == book.StatusBorrowed {
			return book.ErrNotAvailable
		}
		return book.ErrNotBorrowed
	}

	return nil
}

// CountByAuthor 统计某作者名下的图书数
func (r *bookRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计作者图书数失败")
	}
	return count, nil
}

// CountByCategory 统计某分类下的图书数
func (r *bookRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计分类图书数失败")
	}
	return count, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		ISBN:            model.ISBN,
		Description:     model.Description,
		PublicationDate: model.PublicationDate,
		Pages:           model.Pages,
		Price:           model.Price,
		Status:          book.Status(model.Status),
		AuthorID:        model.AuthorID,
		CategoryID:      model.CategoryID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// toBookModel 领域实体 → GORM模型
// ID与CreatedAt必须一并携带:Save会更新整行,
// 丢掉CreatedAt会把创建时间写成零值,连带破坏created_at排序
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		Description:     b.Description,
		PublicationDate: b.PublicationDate,
		Pages:           b.Pages,
		Price:           b.Price,
		Status:          string(b.Status),
		AuthorID:        b.AuthorID,
		CategoryID:      b.CategoryID,
		CreatedAt:       b.CreatedAt,
	}
}
