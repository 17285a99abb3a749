package mysql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestOrderClause(t *testing.T) {
	allowed := map[string]bool{"title": true, "created_at": true, "price": true}

	cases := []struct {
		name     string
		ordering string
		want     string
	}{
		{"升序", "title", "title ASC"},
		{"前缀减号降序", "-created_at", "created_at DESC"},
		{"空参数回退默认", "", "created_at DESC"},
		{"白名单外的字段回退默认", "password", "created_at DESC"},
		{"白名单外的降序字段回退默认", "-password; DROP TABLE books", "created_at DESC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderClause(tc.ordering, allowed, "created_at DESC"))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, isDuplicateError(nil))
	assert.True(t, isDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateError(errors.New("Error 1062: Duplicate entry 'x' for key 'isbn'")))
	assert.False(t, isDuplicateError(errors.New("connection refused")))
}
