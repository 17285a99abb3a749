package book

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// =========================================
// 内存仓储(Mock)
// =========================================
// UpdateStatus用互斥锁模拟数据库条件更新的原子性,
// 并发测试依赖这一点

type fakeBookRepo struct {
	mu     sync.Mutex
	books  map[uint]*Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[uint]*Book{}, nextID: 1}
}

func (r *fakeBookRepo) Create(_ context.Context, b *Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) FindByISBN(_ context.Context, isbn string) (*Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ISBN == isbn {
			cp := *b
			return &cp, nil
		}
	}
	return nil, ErrBookNotFound
}

func (r *fakeBookRepo) Update(_ context.Context, b *Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[b.ID]; !ok {
		return ErrBookNotFound
	}
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) List(_ context.Context, params ListParams) ([]*Book, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Book
	for _, b := range r.books {
		if params.Status != "" && b.Status != params.Status {
			continue
		}
		if params.AuthorID != 0 && b.AuthorID != params.AuthorID {
			continue
		}
		if params.CategoryID != 0 && b.CategoryID != params.CategoryID {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}

	// 与真实仓储一致地处理排序,排序相关的属性测试依赖这一点
	field := strings.TrimPrefix(params.Ordering, "-")
	desc := strings.HasPrefix(params.Ordering, "-")
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if desc {
			a, b = b, a
		}
		switch field {
		case "title":
			return a.Title < b.Title
		case "price":
			return a.Price < b.Price
		default:
			return a.ID < b.ID
		}
	})
	return out, int64(len(out)), nil
}

func (r *fakeBookRepo) ListAvailable(ctx context.Context) ([]*Book, error) {
	books, _, err := r.List(ctx, ListParams{Status: StatusAvailable})
	return books, err
}

func (r *fakeBookRepo) ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error) {
	books, _, err := r.List(ctx, ListParams{AuthorID: authorID})
	return books, err
}

func (r *fakeBookRepo) UpdateStatus(_ context.Context, id uint, from, to Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return ErrBookNotFound
	}
	if b.Status != from {
		if to == StatusBorrowed {
			return ErrNotAvailable
		}
		return ErrNotBorrowed
	}
	b.Status = to
	return nil
}

func (r *fakeBookRepo) CountByAuthor(_ context.Context, authorID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.books {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookRepo) CountByCategory(_ context.Context, categoryID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.books {
		if b.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// fakeChecker 存在性检查Mock,ids里的ID视为存在
type fakeChecker struct {
	ids map[uint]bool
}

func (c *fakeChecker) Exists(_ context.Context, id uint) (bool, error) {
	return c.ids[id], nil
}

// =========================================
// 测试辅助
// =========================================

func newTestService() (Service, *fakeBookRepo) {
	repo := newFakeBookRepo()
	authors := &fakeChecker{ids: map[uint]bool{1: true, 2: true}}
	categories := &fakeChecker{ids: map[uint]bool{1: true}}
	return NewService(repo, authors, categories), repo
}

func validCreateParams() CreateParams {
	return CreateParams{
		Title:           "Go语言实战",
		ISBN:            "978-7-115-42802-8",
		Description:     "实战书籍",
		PublicationDate: time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC),
		Pages:           312,
		Price:           5900,
		AuthorID:        1,
		CategoryID:      1,
	}
}

// =========================================
// 创建图书
// =========================================

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建,ISBN归一化且状态为available", func(t *testing.T) {
		svc, _ := newTestService()

		b, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		assert.NotZero(t, b.ID)
		assert.Equal(t, "9787115428028", b.ISBN, "ISBN应去掉分隔符存储")
		assert.Equal(t, StatusAvailable, b.Status)
	})

	t.Run("ISBN格式错误", func(t *testing.T) {
		svc, _ := newTestService()

		params := validCreateParams()
		params.ISBN = "12345"
		_, err := svc.CreateBook(ctx, params)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.HTTPStatus())
		assert.Contains(t, appErr.Fields, "isbn")
	})

	t.Run("悬空作者ID是校验错误且不落库", func(t *testing.T) {
		svc, repo := newTestService()

		params := validCreateParams()
		params.AuthorID = 99
		_, err := svc.CreateBook(ctx, params)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.HTTPStatus(), "引用不存在的作者应返回400而不是404")
		assert.Contains(t, appErr.Fields, "author_id")
		assert.Empty(t, repo.books, "校验失败时不应写入任何数据")
	})

	t.Run("多个字段错误一次性返回", func(t *testing.T) {
		svc, _ := newTestService()

		params := validCreateParams()
		params.Title = ""
		params.Pages = 0
		params.CategoryID = 99
		_, err := svc.CreateBook(ctx, params)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Contains(t, appErr.Fields, "title")
		assert.Contains(t, appErr.Fields, "pages")
		assert.Contains(t, appErr.Fields, "category_id")
	})

	t.Run("ISBN重复", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		_, err = svc.CreateBook(ctx, validCreateParams())
		assert.Equal(t, ErrISBNDuplicate, err)
	})
}

// TestIsValidISBN ISBN格式校验
// X只在ISBN-10末位合法,ISBN-13必须是纯数字
func TestIsValidISBN(t *testing.T) {
	cases := []struct {
		name string
		isbn string
		want bool
	}{
		{"13位纯数字", "9787115428028", true},
		{"带分隔符的13位", "978-7-115-42802-8", true},
		{"10位纯数字", "7115428026", true},
		{"10位末位X", "043942089X", true},
		{"10位末位小写x", "043942089x", true},
		{"X出现在中间", "04394208X9", false},
		{"13位含X", "12X4567890123", false},
		{"位数不足", "12345", false},
		{"位数过多", "97871154280281", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isValidISBN(tc.isbn))
		})
	}
}

// =========================================
// 更新图书
// =========================================

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("只改价格,其余字段与创建时间不变", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		price := int64(6900)
		updated, err := svc.UpdateBook(ctx, b.ID, UpdateParams{Price: &price})
		require.NoError(t, err)

		assert.Equal(t, int64(6900), updated.Price)
		assert.Equal(t, b.Title, updated.Title, "未提供的字段应保持不变")
		assert.Equal(t, b.ISBN, updated.ISBN)
		assert.Equal(t, b.CreatedAt, updated.CreatedAt, "更新不能改写创建时间")

		// 再查一遍,落库的数据也要保持创建时间
		after, err := svc.GetBook(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.CreatedAt, after.CreatedAt)
		assert.False(t, after.CreatedAt.IsZero())
	})

	t.Run("悬空外键变更是校验错误", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		badAuthor := uint(99)
		_, err = svc.UpdateBook(ctx, b.ID, UpdateParams{AuthorID: &badAuthor})

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.HTTPStatus())
		assert.Contains(t, appErr.Fields, "author_id")
	})

	t.Run("图书不存在", func(t *testing.T) {
		svc, _ := newTestService()
		price := int64(100)
		_, err := svc.UpdateBook(ctx, 999, UpdateParams{Price: &price})
		assert.Equal(t, ErrBookNotFound, err)
	})
}

// =========================================
// 借出/归还
// =========================================

func TestMarkBorrowed(t *testing.T) {
	ctx := context.Background()

	t.Run("正常借出", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		borrowed, err := svc.MarkBorrowed(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusBorrowed, borrowed.Status)
	})

	t.Run("重复借出返回冲突", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		_, err = svc.MarkBorrowed(ctx, b.ID)
		require.NoError(t, err)

		_, err = svc.MarkBorrowed(ctx, b.ID)
		assert.Equal(t, ErrNotAvailable, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 409, appErr.HTTPStatus(), "状态冲突应映射到409")
	})

	t.Run("图书不存在", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.MarkBorrowed(ctx, 999)
		assert.Equal(t, ErrBookNotFound, err)
	})
}

func TestMarkReturned(t *testing.T) {
	ctx := context.Background()

	t.Run("借出后归还", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		_, err = svc.MarkBorrowed(ctx, b.ID)
		require.NoError(t, err)

		returned, err := svc.MarkReturned(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, returned.Status)
	})

	t.Run("未借出归还返回冲突", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		_, err = svc.MarkReturned(ctx, b.ID)
		assert.Equal(t, ErrNotBorrowed, err)
	})
}

// TestMarkBorrowed_Concurrent 并发借出只有一个请求成功
func TestMarkBorrowed_Concurrent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	b, err := svc.CreateBook(ctx, validCreateParams())
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.MarkBorrowed(ctx, b.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var success, conflict int
	for err := range results {
		if err == nil {
			success++
		} else if err == ErrNotAvailable {
			conflict++
		} else {
			t.Errorf("预期之外的错误: %v", err)
		}
	}

	assert.Equal(t, 1, success, "并发借出应恰好一个成功")
	assert.Equal(t, workers-1, conflict, "其余请求应收到状态冲突")
}

// =========================================
// 删除
// =========================================

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("可借状态可以删除", func(t *testing.T) {
		svc, repo := newTestService()
		b, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		require.NoError(t, svc.DeleteBook(ctx, b.ID))
		assert.Empty(t, repo.books)
	})

	t.Run("借出中禁止删除", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.CreateBook(ctx, validCreateParams())
		require.NoError(t, err)

		_, err = svc.MarkBorrowed(ctx, b.ID)
		require.NoError(t, err)

		err = svc.DeleteBook(ctx, b.ID)
		assert.Equal(t, ErrBookBorrowed, err)

		// 归还后可以删除
		_, err = svc.MarkReturned(ctx, b.ID)
		require.NoError(t, err)
		assert.NoError(t, svc.DeleteBook(ctx, b.ID))
	})
}

// =========================================
// 定制查询
// =========================================

func TestListAvailable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	// 两本书,借出一本
	b1, err := svc.CreateBook(ctx, validCreateParams())
	require.NoError(t, err)

	params2 := validCreateParams()
	params2.ISBN = "9787111558422"
	params2.Title = "Go程序设计语言"
	b2, err := svc.CreateBook(ctx, params2)
	require.NoError(t, err)

	_, err = svc.MarkBorrowed(ctx, b1.ID)
	require.NoError(t, err)

	available, err := svc.ListAvailable(ctx)
	require.NoError(t, err)

	require.Len(t, available, 1, "只应返回可借图书")
	assert.Equal(t, b2.ID, available[0].ID)
}

// TestListBooks_OrderingByTitle ordering=title返回书名非降序的结果
func TestListBooks_OrderingByTitle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	titles := []string{"深入理解计算机系统", "Go语言实战", "算法导论"}
	isbns := []string{"9787115428028", "9787111558422", "9787111407010"}
	for i := range titles {
		params := validCreateParams()
		params.Title = titles[i]
		params.ISBN = isbns[i]
		_, err := svc.CreateBook(ctx, params)
		require.NoError(t, err)
	}

	books, total, err := svc.ListBooks(ctx, ListParams{Page: 1, PageSize: 10, Ordering: "title"})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)

	for i := 1; i < len(books); i++ {
		assert.LessOrEqual(t, books[i-1].Title, books[i].Title, "书名应非降序排列")
	}
}

func TestListByAuthor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CreateBook(ctx, validCreateParams())
	require.NoError(t, err)

	t.Run("作者存在返回其图书", func(t *testing.T) {
		books, err := svc.ListByAuthor(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("作者存在但无图书返回空列表", func(t *testing.T) {
		books, err := svc.ListByAuthor(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("作者不存在返回404", func(t *testing.T) {
		_, err := svc.ListByAuthor(ctx, 99)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 404, appErr.HTTPStatus(), "不存在的作者应返回404,区别于空列表")
	})
}
