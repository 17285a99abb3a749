package category

import (
	"time"
)

// Category 分类实体(聚合根)
// 图书通过CategoryID引用分类,Name是业务唯一标识
type Category struct {
	ID          uint
	Name        string // 分类名称(唯一)
	Description string // 分类描述
	CreatedAt   time.Time
}

// NewCategory 创建新分类(工厂方法)
func NewCategory(name, description string) *Category {
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// UpdateInfo 更新分类信息(nil字段保持不变)
func (c *Category) UpdateInfo(name, description *string) {
	if name != nil {
		c.Name = *name
	}
	if description != nil {
		c.Description = *description
	}
}
