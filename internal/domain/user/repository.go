package user

import (
	"context"
)

// Repository 用户仓储接口
// 接口定义在domain层,具体实现在infrastructure/persistence/mysql层,
// 这样domain层不依赖任何外部框架,也便于Mock测试
type Repository interface {
	// Create 创建用户
	// 注意:如果邮箱已存在,应返回ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户
	FindByEmail(ctx context.Context, email string) (*User, error)
}
