package user

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// Service 用户领域服务
// 包含不属于单个实体的业务逻辑(密码加密、验证)
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, email, password, nickname string) (*User, error)

	// Login 用户登录
	Login(ctx context.Context, email, password string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则:
// 1. 邮箱格式校验
// 2. 密码强度校验(8-20位,包含字母和数字)
// 3. 密码bcrypt加密(cost=12,自动加盐)
// 4. 邮箱唯一性由数据库UNIQUE索引保证(应用层SELECT再INSERT有并发窗口)
func (s *service) Register(ctx context.Context, email, password, nickname string) (*User, error) {
	if !isValidEmail(email) {
		return nil, apperrors.NewValidation(map[string]string{"email": "邮箱格式不正确"})
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	if len(nickname) < 2 || len(nickname) > 50 {
		return nil, apperrors.NewValidation(map[string]string{"nickname": "昵称长度应为2-50个字符"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	user := NewUser(email, string(hashedPassword), nickname)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return user, nil
}

// Login 用户登录
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidPassword
	}

	return user, nil
}

// isValidEmail 邮箱格式校验(简化正则,生产环境可用RFC 5322标准)
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// validatePasswordStrength 密码强度校验:8-20位,必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasDigit {
		return apperrors.ErrWeakPassword
	}

	return nil
}
