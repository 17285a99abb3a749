package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// BookCache 图书详情缓存
// 教学要点：
// 1. Cache-Aside模式：读时先查缓存,未命中再查数据库并回填
// 2. 缓存未命中返回(nil, nil)而不是error,调用方据此回源
// 3. 写操作（更新、借阅、删除）直接删除缓存,而不是更新缓存,
//    避免并发写导致的脏数据
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache 创建图书缓存
func NewBookCache(client *redis.Client, ttl time.Duration) *BookCache {
	return &BookCache{client: client, ttl: ttl}
}

func bookKey(id uint) string {
	return fmt.Sprintf("book:detail:%d", id)
}

// Get 获取缓存的图书详情,未命中返回(nil, nil)
func (c *BookCache) Get(ctx context.Context, id uint) (*book.Book, error) {
	data, err := c.client.Get(ctx, bookKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "读取图书缓存失败")
	}

	var b book.Book
	if err := json.Unmarshal(data, &b); err != nil {
		// 缓存数据损坏,当作未命中处理并删除脏数据
		c.client.Del(ctx, bookKey(id))
		return nil, nil
	}

	return &b, nil
}

// Set 写入图书详情缓存
func (c *BookCache) Set(ctx context.Context, b *book.Book) error {
	data, err := json.Marshal(b)
	if err != nil {
		return apperrors.Wrap(err, "序列化图书失败")
	}

	if err := c.client.Set(ctx, bookKey(b.ID), data, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入图书缓存失败")
	}

	return nil
}

// Delete 删除图书详情缓存（写操作后调用）
func (c *BookCache) Delete(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, bookKey(id)).Err(); err != nil {
		return apperrors.Wrap(err, "删除图书缓存失败")
	}

	return nil
}
