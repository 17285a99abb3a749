package author

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// fakeAuthorRepo 内存仓储Mock
type fakeAuthorRepo struct {
	authors map[uint]*Author
	nextID  uint
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: map[uint]*Author{}, nextID: 1}
}

func (r *fakeAuthorRepo) Create(_ context.Context, a *Author) error {
	for _, existing := range r.authors {
		if existing.Email == a.Email {
			return ErrEmailDuplicate
		}
	}
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *fakeAuthorRepo) FindByID(_ context.Context, id uint) (*Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAuthorRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}

func (r *fakeAuthorRepo) Update(_ context.Context, a *Author) error {
	if _, ok := r.authors[a.ID]; !ok {
		return ErrAuthorNotFound
	}
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *fakeAuthorRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.authors[id]; !ok {
		return ErrAuthorNotFound
	}
	delete(r.authors, id)
	return nil
}

func (r *fakeAuthorRepo) List(_ context.Context, _ ListParams) ([]*Author, int64, error) {
	var out []*Author
	for _, a := range r.authors {
		cp := *a
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

// fakeBookCounter 图书计数Mock
type fakeBookCounter struct {
	counts map[uint]int64
}

func (c *fakeBookCounter) CountByAuthor(_ context.Context, authorID uint) (int64, error) {
	return c.counts[authorID], nil
}

func newTestService(counts map[uint]int64) (Service, *fakeAuthorRepo) {
	repo := newFakeAuthorRepo()
	if counts == nil {
		counts = map[uint]int64{}
	}
	return NewService(repo, &fakeBookCounter{counts: counts}), repo
}

func TestCreateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		svc, _ := newTestService(nil)

		birthDate := time.Date(1970, 5, 20, 0, 0, 0, 0, time.UTC)
		a, err := svc.CreateAuthor(ctx, "威廉", "肯尼迪", "author@example.com", &birthDate)
		require.NoError(t, err)

		assert.NotZero(t, a.ID)
		assert.Equal(t, "威廉 肯尼迪", a.FullName())
	})

	t.Run("必填字段缺失", func(t *testing.T) {
		svc, _ := newTestService(nil)

		_, err := svc.CreateAuthor(ctx, "", "肯尼迪", "", nil)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.HTTPStatus())
		assert.Contains(t, appErr.Fields, "first_name")
		assert.Contains(t, appErr.Fields, "email")
	})

	t.Run("邮箱重复", func(t *testing.T) {
		svc, _ := newTestService(nil)

		_, err := svc.CreateAuthor(ctx, "威廉", "肯尼迪", "dup@example.com", nil)
		require.NoError(t, err)

		_, err = svc.CreateAuthor(ctx, "另一个", "作者", "dup@example.com", nil)
		assert.Equal(t, ErrEmailDuplicate, err)
	})
}

func TestUpdateAuthor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	a, err := svc.CreateAuthor(ctx, "威廉", "肯尼迪", "author@example.com", nil)
	require.NoError(t, err)

	t.Run("部分更新只修改提供的字段", func(t *testing.T) {
		newFirst := "比尔"
		updated, err := svc.UpdateAuthor(ctx, a.ID, &newFirst, nil, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "比尔", updated.FirstName)
		assert.Equal(t, "肯尼迪", updated.LastName, "未提供的字段应保持不变")
		assert.Equal(t, "author@example.com", updated.Email)
	})

	t.Run("提供空值报校验错误", func(t *testing.T) {
		empty := "  "
		_, err := svc.UpdateAuthor(ctx, a.ID, &empty, nil, nil, nil)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Contains(t, appErr.Fields, "first_name")
	})

	t.Run("作者不存在", func(t *testing.T) {
		_, err := svc.UpdateAuthor(ctx, 999, nil, nil, nil, nil)
		assert.Equal(t, ErrAuthorNotFound, err)
	})
}

func TestDeleteAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("名下无图书可以删除", func(t *testing.T) {
		svc, repo := newTestService(nil)
		a, err := svc.CreateAuthor(ctx, "威廉", "肯尼迪", "author@example.com", nil)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteAuthor(ctx, a.ID))
		assert.Empty(t, repo.authors)
	})

	t.Run("名下有图书禁止删除", func(t *testing.T) {
		svc, repo := newTestService(map[uint]int64{1: 3})
		a, err := svc.CreateAuthor(ctx, "威廉", "肯尼迪", "author@example.com", nil)
		require.NoError(t, err)

		err = svc.DeleteAuthor(ctx, a.ID)
		assert.Equal(t, ErrAuthorHasBooks, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 409, appErr.HTTPStatus(), "RESTRICT删除冲突应映射到409")
		assert.Len(t, repo.authors, 1, "作者不应被删除")
	})

	t.Run("作者不存在", func(t *testing.T) {
		svc, _ := newTestService(nil)
		assert.Equal(t, ErrAuthorNotFound, svc.DeleteAuthor(ctx, 999))
	})
}
