package user

import (
	"context"
	"time"

	"github.com/xiebiao/bookcatalog/internal/domain/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/pkg/jwt"
)

// LoginUseCase 用户登录用例
// 设计说明:
// 1. 验证邮箱密码
// 2. 生成JWT Token对
// 3. 保存会话到Redis(会话有效期与Refresh Token一致)
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
	sessionTTL   time.Duration
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
	sessionTTL time.Duration,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse 登录响应DTO
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"` // Access Token有效期(秒)
}

// UserInfo 用户信息
type UserInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 验证邮箱密码(调用领域服务)
	u, err := uc.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 生成JWT Token对
	tokenPair, err := uc.jwtManager.GenerateToken(u.ID, u.Email, u.Nickname)
	if err != nil {
		return nil, err
	}

	// 3. 保存会话,失败不影响登录结果
	sessionData := map[string]interface{}{
		"user_id":  u.ID,
		"email":    u.Email,
		"nickname": u.Nickname,
		"login_at": time.Now().Unix(),
	}
	_ = uc.sessionStore.SaveSession(ctx, u.ID, sessionData, uc.sessionTTL)

	return &LoginResponse{
		User: UserInfo{
			ID:       u.ID,
			Email:    u.Email,
			Nickname: u.Nickname,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 用户登出用例
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
	blacklistTTL time.Duration
}

// NewLogoutUseCase 创建登出用例
// blacklistTTL取Access Token有效期,过期的Token本身就无效
func NewLogoutUseCase(sessionStore *redis.SessionStore, blacklistTTL time.Duration) *LogoutUseCase {
	return &LogoutUseCase{
		sessionStore: sessionStore,
		blacklistTTL: blacklistTTL,
	}
}

// Execute 执行登出
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string) error {
	// 1. 删除会话
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}

	// 2. Access Token加入黑名单,防止过期前继续使用
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, uc.blacklistTTL)
}
