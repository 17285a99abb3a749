package author

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrEmailDuplicate 邮箱已存在
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "该邮箱的作者已存在")

	// ErrAuthorHasBooks 作者名下仍有图书,禁止删除(RESTRICT删除策略)
	ErrAuthorHasBooks = apperrors.New(apperrors.ErrCodeHasDependents, "作者名下仍有图书,无法删除")
)
