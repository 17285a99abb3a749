package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 最大打开连接数（建议：CPU核数 * 2 + 磁盘数量）
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	// 最大空闲连接数（建议：MaxOpenConns的1/4到1/2）
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	// 连接最大存活时间（防止数据库主动断开连接）
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&CategoryModel{},
		&BookModel{},
		&UserModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/author/entity.go是领域实体,不依赖GORM
// 3. Repository负责两者之间的转换
type AuthorModel struct {
	ID        uint           `gorm:"primaryKey"`
	FirstName string         `gorm:"index:idx_author_name,priority:2;size:100;not null;comment:名"`
	LastName  string         `gorm:"index:idx_author_name,priority:1;size:100;not null;comment:姓"` // 默认排序字段
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	BirthDate *time.Time     `gorm:"comment:出生日期"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"uniqueIndex;size:100;not null;comment:分类名称"`
	Description string         `gorm:"type:text;comment:分类描述"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. ISBN有唯一索引,防止重复
// 3. Status有索引,可借列表查询(status='available')走索引
// 4. AuthorID/CategoryID有索引,按作者/分类过滤走索引
type BookModel struct {
	ID              uint           `gorm:"primaryKey"`
	Title           string         `gorm:"index;size:200;not null;comment:书名"`
	ISBN            string         `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Description     string         `gorm:"type:text;comment:图书描述"`
	PublicationDate time.Time      `gorm:"comment:出版日期"`
	Pages           int            `gorm:"not null;comment:页数"`
	Price           int64          `gorm:"not null;comment:价格(分)"`
	Status          string         `gorm:"index;size:20;not null;default:available;comment:可借状态(available/borrowed)"`
	AuthorID        uint           `gorm:"index;not null;comment:作者ID"`
	CategoryID      uint           `gorm:"index;not null;comment:分类ID"`
	CreatedAt       time.Time      `gorm:"index;comment:创建时间"` // 默认排序字段
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// UserModel GORM用户模型
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}
