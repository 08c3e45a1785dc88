/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-05 11:30:55
 * @LastEditTime: 2025-10-23 18:26:37
 * @LastEditors: 安知鱼
 */
// vue-blog-api/internal/infra/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/xyhcode/vue-blog-api/internal/app/middleware"
	auth_handler "github.com/xyhcode/vue-blog-api/pkg/handler/auth"
	category_handler "github.com/xyhcode/vue-blog-api/pkg/handler/category"
	image_handler "github.com/xyhcode/vue-blog-api/pkg/handler/image"
	post_handler "github.com/xyhcode/vue-blog-api/pkg/handler/post"
	tag_handler "github.com/xyhcode/vue-blog-api/pkg/handler/tag"
)

// Router 聚合了所有处理器并负责注册路由。
type Router struct {
	mw              *middleware.Middleware
	postHandler     *post_handler.Handler
	categoryHandler *category_handler.Handler
	tagHandler      *tag_handler.Handler
	authHandler     *auth_handler.Handler
	imageHandler    *image_handler.Handler
	uploadDir       string
}

// NewRouter 是 Router 的构造函数。
func NewRouter(
	mw *middleware.Middleware,
	postHandler *post_handler.Handler,
	categoryHandler *category_handler.Handler,
	tagHandler *tag_handler.Handler,
	authHandler *auth_handler.Handler,
	imageHandler *image_handler.Handler,
	uploadDir string,
) *Router {
	return &Router{
		mw:              mw,
		postHandler:     postHandler,
		categoryHandler: categoryHandler,
		tagHandler:      tagHandler,
		authHandler:     authHandler,
		imageHandler:    imageHandler,
		uploadDir:       uploadDir,
	}
}

// Setup 注册所有路由。公开接口直接挂在 /api/v1 下，
// 修改数据的接口全部经过 JWT 认证。
func (r *Router) Setup(engine *gin.Engine) {
	// 上传的图片通过 /uploads 静态暴露
	engine.Static("/uploads", r.uploadDir)

	api := engine.Group("/api/v1")

	// 文章公开接口
	api.GET("/get-posts", r.postHandler.ListPublished)
	api.GET("/get-posts-without-content", r.postHandler.ListNoContent)
	api.GET("/get-recent-posts", r.postHandler.ListRecent)
	api.GET("/search-posts", r.postHandler.Search)
	api.GET("/suggested-posts/:postId", r.postHandler.SuggestRelated)
	api.GET("/get-post-tags/:postId", r.postHandler.GetTags)
	api.GET("/get-post/:postId", r.postHandler.Get)

	// 分类与标签公开接口
	api.GET("/get-categories", r.categoryHandler.List)
	api.GET("/get-category/:categoryId", r.categoryHandler.Get)
	api.GET("/get-tags", r.tagHandler.List)

	// 管理员认证
	admin := api.Group("/admin")
	{
		admin.POST("/register", r.authHandler.Register)
		admin.POST("/login", r.authHandler.Login)
		admin.GET("/validate-token", r.authHandler.Validate)
	}

	// 需要认证的管理接口
	authed := api.Group("").Use(r.mw.JWTAuth())
	{
		authed.GET("/get-all-posts", r.postHandler.ListAll)
		authed.POST("/initialize-post", r.postHandler.Initialize)
		authed.POST("/create-post", r.postHandler.Create)
		authed.POST("/partially-save-post/:postId", r.postHandler.PartiallySave)
		authed.POST("/assign-cover-image/:postId", r.postHandler.AssignCoverImage)
		authed.POST("/publish-draft-post/:postId", r.postHandler.Publish)
		authed.DELETE("/delete-post/:postId", r.postHandler.Delete)
		authed.POST("/seed", r.postHandler.Seed)

		authed.POST("/create-category", r.categoryHandler.Create)
		authed.POST("/create-categories", r.categoryHandler.CreateBatch)
		authed.PUT("/update-category/:categoryId", r.categoryHandler.Update)
		authed.DELETE("/delete-category/:categoryId", r.categoryHandler.Delete)

		authed.POST("/create-tag", r.tagHandler.Create)
		authed.POST("/create-tags", r.tagHandler.CreateBatch)
		authed.PUT("/update-tag/:tagId", r.tagHandler.Update)
		authed.DELETE("/delete-tag/:tagId", r.tagHandler.Delete)

		authed.POST("/image/upload", r.imageHandler.Upload)
	}
}
