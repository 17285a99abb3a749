package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Fields是字段级校验错误明细（字段名→错误描述），仅校验错误时填充
// 4. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int               `json:"code"`             // 业务错误码
	Message string            `json:"message"`          // 用户友好的错误提示
	Fields  map[string]string `json:"fields,omitempty"` // 字段级校验错误明细
	Err     error             `json:"-"`                // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidation 创建带字段明细的校验错误
// 用途：参数绑定失败或外键引用不存在时，逐字段返回错误原因
// 例如：{"author_id": "作者不存在", "pages": "页数必须大于0"}
func NewValidation(fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidParams,
		Message: "参数校验失败",
		Fields:  fields,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）
// 错误码前三位与HTTP状态码对应（response包据此映射HTTP状态）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized    = 40100 // 未登录
	ErrCodeInvalidToken    = 40101 // Token无效
	ErrCodeTokenExpired    = 40102 // Token过期
	ErrCodeInvalidPassword = 40103 // 密码错误

	// 禁止访问（40300-40399）
	ErrCodeForbidden = 40300 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound         = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound     = 40401 // 图书不存在
	ErrCodeAuthorNotFound   = 40402 // 作者不存在
	ErrCodeCategoryNotFound = 40403 // 分类不存在
	ErrCodeUserNotFound     = 40404 // 用户不存在

	// 冲突错误（40900-40999）
	// 包括：唯一约束冲突、状态机转换非法、删除被引用的资源
	ErrCodeConflict          = 40900 // 资源冲突(通用)
	ErrCodeInvalidTransition = 40901 // 图书状态转换非法
	ErrCodeDuplicateEntry    = 40902 // 重复记录(通用)
	ErrCodeISBNDuplicate     = 40903 // ISBN已存在
	ErrCodeEmailDuplicate    = 40904 // 邮箱已存在
	ErrCodeNameDuplicate     = 40905 // 名称已存在
	ErrCodeHasDependents     = 40906 // 存在关联数据，禁止删除

	// 参数错误（40000-40099）
	ErrCodeInvalidParams = 40000 // 参数错误
	ErrCodeBindError     = 40001 // 参数绑定失败
	ErrCodeBusinessError = 40002 // 业务错误(通用)
	ErrCodeWeakPassword  = 40003 // 密码强度不足
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(ErrCodeRedisError, "缓存服务错误")

	// 认证授权
	ErrUnauthorized    = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "Token已过期")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "密码错误")
	ErrForbidden       = New(ErrCodeForbidden, "无权限访问")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
	ErrWeakPassword  = New(ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// HTTPStatus 根据业务错误码推导HTTP状态码
// 设计说明：错误码前三位即HTTP状态码（40401 → 404），
// 这样Handler层不需要维护一张错误码→状态码的映射表
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 {
		return 500
	}
	return status
}
