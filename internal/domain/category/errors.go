package category

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrNameDuplicate 分类名称已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeNameDuplicate, "分类名称已存在")

	// ErrCategoryHasBooks 分类下仍有图书,禁止删除(RESTRICT删除策略)
	ErrCategoryHasBooks = apperrors.New(apperrors.ErrCodeHasDependents, "分类下仍有图书,无法删除")
)
