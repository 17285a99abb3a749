package user

import (
	"time"
)

// User 用户实体(聚合根)
// 说明:
// 1. 目录的读接口公开,写接口需要登录,User只服务于这一认证需求
// 2. 密码已加密存储(bcrypt),不提供任何暴露明文的方法
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Nickname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, nickname string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
