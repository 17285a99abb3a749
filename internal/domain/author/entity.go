package author

import (
	"time"
)

// Author 作者实体(聚合根)
// DDD设计说明:
// 1. Author是作者聚合的根实体,图书通过AuthorID引用作者(外键关联,不内嵌)
// 2. Email作为业务唯一标识(数据库层保证唯一性)
// 3. BirthDate可选,使用指针表达"未填写"
// 4. 领域实体不依赖GORM tag(infrastructure层的Repository实现时会处理映射)
type Author struct {
	ID        uint
	FirstName string     // 名
	LastName  string     // 姓
	Email     string     // 邮箱(唯一)
	BirthDate *time.Time // 出生日期(可选)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建新作者(工厂方法)
func NewAuthor(firstName, lastName, email string, birthDate *time.Time) *Author {
	now := time.Now()
	return &Author{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		BirthDate: birthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FullName 作者全名
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// UpdateInfo 更新作者基本信息(领域行为)
// 传入nil的字段保持不变(用于PATCH部分更新)
func (a *Author) UpdateInfo(firstName, lastName, email *string, birthDate *time.Time) {
	if firstName != nil {
		a.FirstName = *firstName
	}
	if lastName != nil {
		a.LastName = *lastName
	}
	if email != nil {
		a.Email = *email
	}
	if birthDate != nil {
		a.BirthDate = birthDate
	}
	a.UpdatedAt = time.Now()
}
