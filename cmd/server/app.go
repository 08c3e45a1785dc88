/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-05 10:35:28
 * @LastEditTime: 2025-10-23 16:15:28
 * @LastEditors: 安知鱼
 */
// vue-blog-api/cmd/server/app.go
package server

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/xyhcode/vue-blog-api/internal/app/bootstrap"
	"github.com/xyhcode/vue-blog-api/internal/app/middleware"
	"github.com/xyhcode/vue-blog-api/internal/infra/persistence/database"
	ent_impl "github.com/xyhcode/vue-blog-api/internal/infra/persistence/ent"
	"github.com/xyhcode/vue-blog-api/internal/infra/router"
	"github.com/xyhcode/vue-blog-api/pkg/config"
	auth_handler "github.com/xyhcode/vue-blog-api/pkg/handler/auth"
	category_handler "github.com/xyhcode/vue-blog-api/pkg/handler/category"
	image_handler "github.com/xyhcode/vue-blog-api/pkg/handler/image"
	post_handler "github.com/xyhcode/vue-blog-api/pkg/handler/post"
	tag_handler "github.com/xyhcode/vue-blog-api/pkg/handler/tag"
	auth_service "github.com/xyhcode/vue-blog-api/pkg/service/auth"
	category_service "github.com/xyhcode/vue-blog-api/pkg/service/category"
	image_service "github.com/xyhcode/vue-blog-api/pkg/service/image"
	post_service "github.com/xyhcode/vue-blog-api/pkg/service/post"
	tag_service "github.com/xyhcode/vue-blog-api/pkg/service/tag"
)

// App 结构体，封装应用的所有核心组件
type App struct {
	cfg    *config.Config
	engine *gin.Engine
	sqlDB  *sql.DB
}

// NewApp 按依赖顺序手动装配整个应用：
// 配置 -> 数据库 -> 仓库 -> 服务 -> 处理器 -> 路由。
func NewApp() (*App, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}
	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("警告: 关闭数据库连接失败: %v", err)
		}
	}

	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("初始化 Ent 客户端失败: %w", err)
	}

	bootstrapper := bootstrap.NewBootstrapper(entClient, cfg)
	if err := bootstrapper.InitializeDatabase(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库初始化失败: %w", err)
	}
	jwtSecret, err := bootstrapper.ResolveJWTSecret()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	// 仓库层
	postRepo := ent_impl.NewPostRepo(entClient)
	categoryRepo := ent_impl.NewCategoryRepo(entClient)
	tagRepo := ent_impl.NewTagRepo(entClient)
	adminRepo := ent_impl.NewAdminRepo(entClient)

	// 服务层
	uploadDir := cfg.GetString(config.KeyUploadDir)
	if uploadDir == "" {
		uploadDir = "data/uploads"
	}
	tokenSvc := auth_service.NewTokenService(jwtSecret)
	authSvc := auth_service.NewService(adminRepo, tokenSvc)
	postSvc := post_service.NewService(postRepo, categoryRepo, tagRepo)
	seeder := post_service.NewSeeder(postRepo, categoryRepo, tagRepo)
	categorySvc := category_service.NewService(categoryRepo)
	tagSvc := tag_service.NewService(tagRepo)
	imageSvc := image_service.NewService(uploadDir)

	// 处理器层
	postHandler := post_handler.NewHandler(postSvc, seeder)
	categoryHandler := category_handler.NewHandler(categorySvc)
	tagHandler := tag_handler.NewHandler(tagSvc)
	authHandler := auth_handler.NewHandler(authSvc, tokenSvc)
	imageHandler := image_handler.NewHandler(imageSvc)

	// HTTP 引擎与路由
	debugMode := cfg.GetBool(config.KeyServerDebug)
	if !debugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(middleware.Recovery(debugMode))
	engine.Use(middleware.Cors())

	mw := middleware.NewMiddleware(tokenSvc)
	r := router.NewRouter(mw, postHandler, categoryHandler, tagHandler, authHandler, imageHandler, uploadDir)
	r.Setup(engine)

	app := &App{
		cfg:    cfg,
		engine: engine,
		sqlDB:  sqlDB,
	}
	return app, cleanup, nil
}

// Config 返回应用配置。
func (a *App) Config() *config.Config {
	return a.cfg
}

// Engine 返回 gin 引擎，供测试注入请求。
func (a *App) Engine() *gin.Engine {
	return a.engine
}

// Run 启动 HTTP 服务并阻塞。
func (a *App) Run() error {
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8092"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}
