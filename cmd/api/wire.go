//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同,Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// 工作流程：
// Step 1: 编写wire.go(本文件),定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	appcategory "github.com/xiebiao/bookcatalog/internal/application/category"
	appuser "github.com/xiebiao/bookcatalog/internal/application/user"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/domain/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/jwt"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository,
	mysql.NewCategoryRepository,
	mysql.NewBookRepository,
	mysql.NewUserRepository,
)

// domainSet 领域层依赖
// 教学要点:
// book.NewService需要AuthorChecker/CategoryChecker,
// author/category的Service需要BookCounter,
// 这些小接口由仓储隐式实现,但Wire不做隐式接口匹配,
// 需要下面的provide*函数显式转换
var domainSet = wire.NewSet(
	author.NewService,
	category.NewService,
	book.NewService,
	user.NewService,
	provideAuthorChecker,
	provideCategoryChecker,
	provideBookCounterForAuthor,
	provideBookCounterForCategory,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appauthor.NewAuthorUseCases,
	appcategory.NewCategoryUseCases,
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewListAvailableUseCase,
	appbook.NewListByAuthorUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewBorrowBookUseCase,
	appbook.NewReturnBookUseCase,
	appuser.NewRegisterUseCase,
	provideLoginUseCase,
	provideLogoutUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	provideBookCache,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewCategoryHandler,
	handler.NewBookHandler,
	handler.NewUserHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建会话存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideBookCache 从Redis客户端创建图书缓存
func provideBookCache(client *goredis.Client, cfg *config.Config) *redis.BookCache {
	return redis.NewBookCache(client, cfg.Redis.CacheTTL)
}

// provideAuthorChecker 作者仓储实现图书服务需要的存在性检查接口
func provideAuthorChecker(repo author.Repository) book.AuthorChecker {
	return repo
}

// provideCategoryChecker 分类仓储实现图书服务需要的存在性检查接口
func provideCategoryChecker(repo category.Repository) book.CategoryChecker {
	return repo
}

// provideBookCounterForAuthor 图书仓储实现作者服务需要的计数接口
func provideBookCounterForAuthor(repo book.Repository) author.BookCounter {
	return repo
}

// provideBookCounterForCategory 图书仓储实现分类服务需要的计数接口
func provideBookCounterForCategory(repo book.Repository) category.BookCounter {
	return repo
}

// provideLoginUseCase 登录用例:会话有效期取Refresh Token有效期
func provideLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
	cfg *config.Config,
) *appuser.LoginUseCase {
	return appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
}

// provideLogoutUseCase 登出用例:黑名单TTL取Access Token有效期
func provideLogoutUseCase(sessionStore *redis.SessionStore, cfg *config.Config) *appuser.LogoutUseCase {
	return appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	registerRoutes(r, authorHandler, categoryHandler, bookHandler, userHandler, authMiddleware)

	return r
}

// InitializeApp 初始化整个应用
// Wire会分析依赖链并在wire_gen.go中生成初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)

	return nil, nil
}
