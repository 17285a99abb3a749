package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 绑定与参数解析辅助函数,各Handler共用

// bindJSON 绑定JSON请求体,校验失败时返回字段级错误明细
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return toValidationError(err)
	}
	return nil
}

// bindQuery 绑定查询参数
func bindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return toValidationError(err)
	}
	return nil
}

// toValidationError 将gin/validator的绑定错误转为字段级校验错误
// 学习要点:
// validator.ValidationErrors里有每个失败字段的tag信息,
// 转成 {field: reason} 的map返回给客户端,比裸错误串友好
func toValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.New(apperrors.ErrCodeBindError, "请求参数格式错误: "+err.Error())
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[toSnakeCase(fe.Field())] = validationMessage(fe)
	}
	return apperrors.NewValidation(fields)
}

// validationMessage 根据校验tag生成可读的错误消息
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段必填"
	case "email":
		return "邮箱格式不正确"
	case "min":
		return "不能小于" + fe.Param()
	case "max":
		return "不能大于" + fe.Param()
	case "datetime":
		return "日期格式不正确,应为YYYY-MM-DD"
	case "oneof":
		return "取值必须是: " + fe.Param()
	default:
		return "格式不正确"
	}
}

// toSnakeCase Go字段名转JSON风格的snake_case
// 连续大写按缩写词处理:ISBN→isbn, AuthorID→author_id
func toSnakeCase(s string) string {
	var out []byte
	prevUpper := false
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !prevUpper {
				out = append(out, '_')
			}
			out = append(out, byte(r-'A'+'a'))
			prevUpper = true
		} else {
			out = append(out, byte(r))
			prevUpper = false
		}
	}
	return string(out)
}

// parseIDParam 解析路径参数中的资源ID
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "无效的资源ID")
	}
	return uint(id), nil
}
