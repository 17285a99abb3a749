package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN格式不正确")

	// ErrNotAvailable 图书当前不可借出(已被借出)
	ErrNotAvailable = apperrors.New(apperrors.ErrCodeInvalidTransition, "图书当前不可借出")

	// ErrNotBorrowed 图书未被借出,无法归还
	ErrNotBorrowed = apperrors.New(apperrors.ErrCodeInvalidTransition, "图书未被借出,无法归还")

	// ErrBookBorrowed 图书已借出,禁止删除
	ErrBookBorrowed = apperrors.New(apperrors.ErrCodeConflict, "图书已借出,无法删除")

	// ErrInvalidDate 日期格式不正确
	ErrInvalidDate = apperrors.NewValidation(map[string]string{
		"publication_date": "日期格式不正确,应为YYYY-MM-DD",
	})
)
