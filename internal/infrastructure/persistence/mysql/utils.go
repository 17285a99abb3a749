package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
// MySQL错误码:
// - 1062: Duplicate entry 'xxx' for key 'yyy'
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查:错误信息包含"Duplicate entry"
	return strings.Contains(err.Error(), "Duplicate entry")
}

// orderClause 将Django风格的排序参数转换为SQL ORDER BY子句
// 规则:
// - 前缀"-"表示降序: "-created_at" → "created_at DESC"
// - 字段名必须在allowed白名单中(防止SQL注入),否则返回fallback
func orderClause(ordering string, allowed map[string]bool, fallback string) string {
	if ordering == "" {
		return fallback
	}

	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}

	if !allowed[field] {
		return fallback
	}

	return field + " " + direction
}
