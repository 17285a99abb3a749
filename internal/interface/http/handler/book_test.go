package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// 教学说明：图书HTTP接口测试
//
// 测试策略:
// 1. 仓储用内存Mock,领域服务/用例/Handler用真实实现,测完整调用链
// 2. Redis缓存指向不可达地址:缓存读写会失败,但用例按降级逻辑直查数据库,
//    这同时验证了"缓存故障不影响功能"
// 3. 不挂认证中间件,只测业务行为(认证在middleware包单独测)

// fakeBookRepo 内存图书仓储
type fakeBookRepo struct {
	mu     sync.Mutex
	books  map[uint]*book.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[uint]*book.Book{}, nextID: 1}
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) FindByISBN(_ context.Context, isbn string) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ISBN == isbn {
			cp := *b
			return &cp, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Update(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) List(_ context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*book.Book
	for _, b := range r.books {
		if params.Status != "" && b.Status != params.Status {
			continue
		}
		if params.AuthorID != 0 && b.AuthorID != params.AuthorID {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookRepo) ListAvailable(ctx context.Context) ([]*book.Book, error) {
	books, _, err := r.List(ctx, book.ListParams{Status: book.StatusAvailable})
	return books, err
}

func (r *fakeBookRepo) ListByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	books, _, err := r.List(ctx, book.ListParams{AuthorID: authorID})
	return books, err
}

func (r *fakeBookRepo) UpdateStatus(_ context.Context, id uint, from, to book.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Status != from {
		if to == book.StatusBorrowed {
			return book.ErrNotAvailable
		}
		return book.ErrNotBorrowed
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

// fakeAuthorRepo 最小作者仓储,只支撑Exists/FindByID
type fakeAuthorRepo struct {
	authors map[uint]*author.Author
}

func (r *fakeAuthorRepo) Create(_ context.Context, a *author.Author) error { return nil }
func (r *fakeAuthorRepo) FindByID(_ context.Context, id uint) (*author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}
func (r *fakeAuthorRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}
func (r *fakeAuthorRepo) Update(_ context.Context, _ *author.Author) error { return nil }
func (r *fakeAuthorRepo) Delete(_ context.Context, _ uint) error           { return nil }
func (r *fakeAuthorRepo) List(_ context.Context, _ author.ListParams) ([]*author.Author, int64, error) {
	return nil, 0, nil
}

// fakeCategoryRepo 最小分类仓储
type fakeCategoryRepo struct {
	categories map[uint]*category.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, _ *category.Category) error { return nil }
func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*category.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return c, nil
}
func (r *fakeCategoryRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}
func (r *fakeCategoryRepo) Update(_ context.Context, _ *category.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(_ context.Context, _ uint) error               { return nil }
func (r *fakeCategoryRepo) List(_ context.Context, _ category.ListParams) ([]*category.Category, int64, error) {
	return nil, 0, nil
}

// apiResponse 响应信封
type apiResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
	Data    json.RawMessage   `json:"data"`
}

// newTestRouter 组装完整调用链的测试路由
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// 借还用例会累加Prometheus计数器,必须先初始化
	metrics.InitMetrics()

	bookRepo := newFakeBookRepo()
	authorRepo := &fakeAuthorRepo{authors: map[uint]*author.Author{
		1: {ID: 1, FirstName: "威廉", LastName: "肯尼迪", Email: "a@example.com"},
	}}
	categoryRepo := &fakeCategoryRepo{categories: map[uint]*category.Category{
		1: {ID: 1, Name: "计算机"},
	}}

	// 不可达的Redis:缓存读写必然失败,用例应降级直查仓储
	deadRedis := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	cache := redis.NewBookCache(deadRedis, time.Minute)

	authorService := author.NewService(authorRepo, bookRepo)
	categoryService := category.NewService(categoryRepo, bookRepo)
	bookService := book.NewService(bookRepo, authorRepo, categoryRepo)

	h := NewBookHandler(
		appbook.NewCreateBookUseCase(bookService),
		appbook.NewGetBookUseCase(bookService, authorService, categoryService, cache),
		appbook.NewListBooksUseCase(bookService),
		appbook.NewListAvailableUseCase(bookService),
		appbook.NewListByAuthorUseCase(bookService),
		appbook.NewUpdateBookUseCase(bookService, cache),
		appbook.NewDeleteBookUseCase(bookService, cache),
		appbook.NewBorrowBookUseCase(bookService, cache),
		appbook.NewReturnBookUseCase(bookService, cache),
	)

	r := gin.New()
	books := r.Group("/api/v1/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/available", h.ListAvailable)
		books.GET("/by_author", h.ListByAuthor)
		books.GET("/:id", h.GetBook)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
		books.PATCH("/:id", h.PatchBook)
		books.DELETE("/:id", h.DeleteBook)
		books.PATCH("/:id/mark_as_borrowed", h.MarkAsBorrowed)
		books.PATCH("/:id/mark_as_returned", h.MarkAsReturned)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Host = "localhost:8080"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func validBookBody() map[string]interface{} {
	return map[string]interface{}{
		"title":            "Go语言实战",
		"isbn":             "9787115428028",
		"description":      "实战书籍",
		"publication_date": "2017-03-01",
		"pages":            312,
		"price":            5900,
		"author_id":        1,
		"category_id":      1,
	}
}

func createBook(t *testing.T, r *gin.Engine) uint {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", validBookBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var detail struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	require.NotZero(t, detail.ID)
	return detail.ID
}

func TestCreateBookHandler(t *testing.T) {
	t.Run("正常创建返回201", func(t *testing.T) {
		r := newTestRouter(t)

		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", validBookBody())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 0, resp.Code)

		var detail struct {
			Status      string `json:"status"`
			IsAvailable bool   `json:"is_available"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &detail))
		assert.Equal(t, "available", detail.Status, "新建图书状态应为available")
		assert.True(t, detail.IsAvailable)
	})

	t.Run("缺少必填字段返回400与字段明细", func(t *testing.T) {
		r := newTestRouter(t)

		body := validBookBody()
		delete(body, "title")
		delete(body, "author_id")
		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Fields, "title")
		assert.Contains(t, resp.Fields, "author_id")
	})

	t.Run("悬空外键返回400", func(t *testing.T) {
		r := newTestRouter(t)

		body := validBookBody()
		body["author_id"] = 99
		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/books", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, "引用不存在的作者是校验错误,不是404")
		assert.Contains(t, resp.Fields, "author_id")
	})
}

func TestGetBookHandler(t *testing.T) {
	r := newTestRouter(t)
	id := createBook(t, r)

	t.Run("查询详情带冗余名称", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/books/%d", id), nil)

		require.Equal(t, http.StatusOK, w.Code)

		var detail struct {
			Title        string `json:"title"`
			AuthorName   string `json:"author_name"`
			CategoryName string `json:"category_name"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &detail))
		assert.Equal(t, "Go语言实战", detail.Title)
		assert.Equal(t, "威廉 肯尼迪", detail.AuthorName)
		assert.Equal(t, "计算机", detail.CategoryName)
	})

	t.Run("不存在返回404", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/v1/books/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListBooksHandler(t *testing.T) {
	r := newTestRouter(t)
	createBook(t, r)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/books?page=1&page_size=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 分页信封: {count, next, previous, results}
	var page struct {
		Count    int64           `json:"count"`
		Next     *string         `json:"next"`
		Previous *string         `json:"previous"`
		Results  json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &page))

	assert.Equal(t, int64(1), page.Count)
	assert.Nil(t, page.Next, "单页结果next应为null")
	assert.Nil(t, page.Previous)
	assert.NotNil(t, page.Results)
}

func TestBorrowReturnHandler(t *testing.T) {
	r := newTestRouter(t)
	id := createBook(t, r)
	borrowPath := fmt.Sprintf("/api/v1/books/%d/mark_as_borrowed", id)
	returnPath := fmt.Sprintf("/api/v1/books/%d/mark_as_returned", id)

	t.Run("借出成功", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPatch, borrowPath, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var detail struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &detail))
		assert.Equal(t, "borrowed", detail.Status)
	})

	t.Run("重复借出返回409", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPatch, borrowPath, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("借出中删除返回409", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/books/%d", id), nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("归还后可删除,返回204", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPatch, returnPath, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/books/%d", id), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestListByAuthorHandler(t *testing.T) {
	r := newTestRouter(t)
	createBook(t, r)

	t.Run("作者存在返回图书", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/v1/books/by_author?author_id=1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var items []json.RawMessage
		require.NoError(t, json.Unmarshal(resp.Data, &items))
		assert.Len(t, items, 1)
	})

	t.Run("作者不存在返回404", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/v1/books/by_author?author_id=99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPatchBookHandler(t *testing.T) {
	r := newTestRouter(t)
	id := createBook(t, r)

	w, resp := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/books/%d", id), map[string]interface{}{
		"price": 6900,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Title string `json:"title"`
		Price int64  `json:"price"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	assert.Equal(t, int64(6900), detail.Price)
	assert.Equal(t, "Go语言实战", detail.Title, "未提供的字段应保持不变")
}
