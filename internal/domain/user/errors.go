package user

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "邮箱已被注册")
)
