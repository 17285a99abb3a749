package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookcatalog/docs"
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
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// cacheMaxAgeSeconds GET响应的HTTP缓存时长
const cacheMaxAgeSeconds = 300

// @title           图书目录服务 API
// @version         1.0
// @description     图书目录的REST API:作者/分类/图书管理与借还状态机
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

// main 图书目录服务入口
// 说明：手动依赖注入(wire.go提供Wire自动生成的等价方案)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 初始化Prometheus指标
	metrics.InitMetrics()

	// 5. 依赖注入(手动组装)
	// 依赖链: Repository ← Service ← UseCase ← Handler

	// 基础设施层
	authorRepo := mysql.NewAuthorRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	userRepo := mysql.NewUserRepository(db)
	sessionStore := redis.NewSessionStore(redisClient)
	bookCache := redis.NewBookCache(redisClient, cfg.Redis.CacheTTL)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	// 聚合间通过最小接口协作:
	// 图书服务校验作者/分类存在性,作者/分类服务删除前统计名下图书
	authorService := author.NewService(authorRepo, bookRepo)
	categoryService := category.NewService(categoryRepo, bookRepo)
	bookService := book.NewService(bookRepo, authorRepo, categoryRepo)
	userService := user.NewService(userRepo)

	// 应用层
	authorUseCases := appauthor.NewAuthorUseCases(authorService)
	categoryUseCases := appcategory.NewCategoryUseCases(categoryService)
	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, authorService, categoryService, bookCache)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	listAvailableUseCase := appbook.NewListAvailableUseCase(bookService)
	listByAuthorUseCase := appbook.NewListByAuthorUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, bookCache)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService, bookCache)
	borrowBookUseCase := appbook.NewBorrowBookUseCase(bookService, bookCache)
	returnBookUseCase := appbook.NewReturnBookUseCase(bookService, bookCache)
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)

	// 接口层
	authorHandler := handler.NewAuthorHandler(authorUseCases)
	categoryHandler := handler.NewCategoryHandler(categoryUseCases)
	bookHandler := handler.NewBookHandler(
		createBookUseCase,
		getBookUseCase,
		listBooksUseCase,
		listAvailableUseCase,
		listByAuthorUseCase,
		updateBookUseCase,
		deleteBookUseCase,
		borrowBookUseCase,
		returnBookUseCase,
	)
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())
	r.Use(metrics.Middleware())

	// 7. 注册路由
	registerRoutes(r, authorHandler, categoryHandler, bookHandler, userHandler, authMiddleware)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 权限约定:目录读接口公开,写接口要求登录
func registerRoutes(
	r *gin.Engine,
	authorHandler *handler.AuthorHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档,访问 /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组,GET响应允许HTTP缓存
	v1 := r.Group("/api/v1")
	v1.Use(middleware.CacheControl(cacheMaxAgeSeconds))
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 作者模块
		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)

			authors.POST("", authMiddleware.RequireAuth(), authorHandler.CreateAuthor)
			authors.PUT("/:id", authMiddleware.RequireAuth(), authorHandler.UpdateAuthor)
			authors.PATCH("/:id", authMiddleware.RequireAuth(), authorHandler.PatchAuthor)
			authors.DELETE("/:id", authMiddleware.RequireAuth(), authorHandler.DeleteAuthor)
		}

		// 分类模块
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id", categoryHandler.GetCategory)

			categories.POST("", authMiddleware.RequireAuth(), categoryHandler.CreateCategory)
			categories.PUT("/:id", authMiddleware.RequireAuth(), categoryHandler.UpdateCategory)
			categories.PATCH("/:id", authMiddleware.RequireAuth(), categoryHandler.PatchCategory)
			categories.DELETE("/:id", authMiddleware.RequireAuth(), categoryHandler.DeleteCategory)
		}

		// 图书模块
		// 注意:gin路由中/books/available必须在/books/:id之前不冲突,
		// 静态路径与参数路径gin可以共存,但available/by_author用独立路径更清晰
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/available", bookHandler.ListAvailable)
			books.GET("/by_author", bookHandler.ListByAuthor)
			books.GET("/:id", bookHandler.GetBook)

			books.POST("", authMiddleware.RequireAuth(), bookHandler.CreateBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), bookHandler.UpdateBook)
			books.PATCH("/:id", authMiddleware.RequireAuth(), bookHandler.PatchBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), bookHandler.DeleteBook)

			// 借还状态转换
			books.PATCH("/:id/mark_as_borrowed", authMiddleware.RequireAuth(), bookHandler.MarkAsBorrowed)
			books.PATCH("/:id/mark_as_returned", authMiddleware.RequireAuth(), bookHandler.MarkAsReturned)
		}
	}
}
