package post

import (
	"net/http"
	"strconv"

	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/response"

	post_service "github.com/xyhcode/vue-blog-api/pkg/service/post"

	"github.com/gin-gonic/gin"
)

// 列表接口的默认分页参数
const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Handler 封装了所有与文章相关的 HTTP 处理器。
type Handler struct {
	svc    *post_service.Service
	seeder *post_service.Seeder
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *post_service.Service, seeder *post_service.Seeder) *Handler {
	return &Handler{svc: svc, seeder: seeder}
}

// parsePostID 从路径参数中解析文章ID。
func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, http.StatusBadRequest, "无效的文章ID")
		return 0, false
	}
	return uint(id), true
}

// parsePaging 从查询参数中解析分页参数，未提供时使用默认值。
func parsePaging(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	return page, pageSize
}

// ListPublished
// @Summary      获取已发布文章列表
// @Description  分页获取所有已发布的文章（含正文）
// @Tags         文章
// @Produce      json
// @Param        page query int false "页码，默认 1"
// @Param        pageSize query int false "每页条数，默认 10"
// @Success      200 {object} response.Response "成功响应"
// @Failure      400 {object} response.Response "分页参数错误"
// @Router       /get-posts [get]
func (h *Handler) ListPublished(c *gin.Context) {
	page, pageSize := parsePaging(c)
	result, err := h.svc.ListPublished(c.Request.Context(), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取文章列表成功")
}

// ListAll
// @Summary      获取所有文章列表
// @Description  分页获取所有未删除的文章（含草稿），供后台管理使用
// @Tags         文章
// @Security     BearerAuth
// @Produce      json
// @Param        page query int false "页码，默认 1"
// @Param        pageSize query int false "每页条数，默认 10"
// @Success      200 {object} response.Response "成功响应"
// @Router       /get-all-posts [get]
func (h *Handler) ListAll(c *gin.Context) {
	page, pageSize := parsePaging(c)
	result, err := h.svc.ListAll(c.Request.Context(), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取文章列表成功")
}

// ListNoContent
// @Summary      获取不含正文的文章列表
// @Description  分页获取所有未删除文章的轻量投影，不含正文字段
// @Tags         文章
// @Produce      json
// @Param        page query int false "页码，默认 1"
// @Param        pageSize query int false "每页条数，默认 10"
// @Success      200 {object} response.Response "成功响应"
// @Router       /get-posts-without-content [get]
func (h *Handler) ListNoContent(c *gin.Context) {
	page, pageSize := parsePaging(c)
	result, err := h.svc.ListNoContent(c.Request.Context(), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取文章列表成功")
}

// ListRecent
// @Summary      获取最新文章
// @Description  获取最新发布的十篇文章，不含正文
// @Tags         文章
// @Produce      json
// @Success      200 {object} response.Response "成功响应"
// @Router       /get-recent-posts [get]
func (h *Handler) ListRecent(c *gin.Context) {
	items, err := h.svc.ListRecentNoContent(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, items, "获取最新文章成功")
}

// Search
// @Summary      搜索文章
// @Description  按关键字在标题、正文、分类名、标签名上做大小写不敏感的匹配
// @Tags         文章
// @Produce      json
// @Param        query query string true "搜索关键字"
// @Param        page query int false "页码，默认 1"
// @Param        pageSize query int false "每页条数，默认 10"
// @Success      200 {object} response.Response "成功响应"
// @Failure      400 {object} response.Response "关键字为空"
// @Router       /search-posts [get]
func (h *Handler) Search(c *gin.Context) {
	page, pageSize := parsePaging(c)
	result, err := h.svc.Search(c.Request.Context(), c.Query("query"), page, pageSize)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "搜索成功")
}

// SuggestRelated
// @Summary      获取相关文章推荐
// @Description  返回与指定文章共享标签的其他已发布文章，最多三篇；文章不存在时 data 为 null
// @Tags         文章
// @Produce      json
// @Param        postId path int true "文章ID"
// @Success      200 {object} response.Response "成功响应"
// @Router       /suggested-posts/{postId} [get]
func (h *Handler) SuggestRelated(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	items, err := h.svc.SuggestRelated(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, items, "获取推荐文章成功")
}

// GetTags
// @Summary      获取文章标签
// @Description  返回指定文章关联的标签列表
// @Tags         文章
// @Produce      json
// @Param        postId path int true "文章ID"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "文章不存在"
// @Router       /get-post-tags/{postId} [get]
func (h *Handler) GetTags(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	tags, err := h.svc.ListTagNames(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, tags, "获取文章标签成功")
}

// Get
// @Summary      获取单篇文章
// @Description  返回单篇文章的完整投影（含正文与渲染后的 HTML）；文章不存在时 data 为 null
// @Tags         文章
// @Produce      json
// @Param        postId path int true "文章ID"
// @Success      200 {object} response.Response "成功响应"
// @Router       /get-post/{postId} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	dto, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	if dto == nil {
		response.Success(c, nil, "文章不存在")
		return
	}
	response.Success(c, dto, "获取文章成功")
}

// Initialize
// @Summary      初始化空白草稿
// @Description  创建一篇空白草稿并返回，编辑器以它为起点增量保存
// @Tags         文章
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} response.Response "成功响应"
// @Router       /initialize-post [post]
func (h *Handler) Initialize(c *gin.Context) {
	dto, err := h.svc.Initialize(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "草稿初始化成功")
}

// Create
// @Summary      创建文章
// @Description  创建一篇完整文章，isDraft 决定初始状态
// @Tags         文章
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        post body model.CreatePostRequest true "创建文章的请求体"
// @Success      200 {object} response.Response "成功响应"
// @Failure      400 {object} response.Response "请求参数错误"
// @Router       /create-post [post]
func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dto, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "创建文章成功")
}

// PartiallySave
// @Summary      增量保存文章
// @Description  覆盖标题、正文、摘要；categoryId 为 0 时保留原分类；标签整组替换
// @Tags         文章
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        postId path int true "文章ID"
// @Param        post body model.CreatePostRequest true "保存内容"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "文章不存在"
// @Router       /partially-save-post/{postId} [post]
func (h *Handler) PartiallySave(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dto, err := h.svc.PartiallySave(c.Request.Context(), id, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "保存成功")
}

// assignCoverImageRequest 设置封面图的请求体。
type assignCoverImageRequest struct {
	CoverImageURL string `json:"coverImageUrl" binding:"required"`
}

// AssignCoverImage
// @Summary      设置文章封面图
// @Tags         文章
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        postId path int true "文章ID"
// @Param        body body assignCoverImageRequest true "封面图地址"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "文章不存在"
// @Router       /assign-cover-image/{postId} [post]
func (h *Handler) AssignCoverImage(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	var req assignCoverImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dto, err := h.svc.AssignCoverImage(c.Request.Context(), id, req.CoverImageURL)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "封面图设置成功")
}

// Publish
// @Summary      发布草稿
// @Description  把草稿转为已发布状态；文章不存在时 data 为 null 而不是 404
// @Tags         文章
// @Security     BearerAuth
// @Produce      json
// @Param        postId path int true "文章ID"
// @Success      200 {object} response.Response "成功响应"
// @Router       /publish-draft-post/{postId} [post]
func (h *Handler) Publish(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	dto, err := h.svc.Publish(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	if dto == nil {
		response.Success(c, nil, "文章不存在")
		return
	}
	response.Success(c, dto, "发布成功")
}

// Delete
// @Summary      删除文章
// @Description  软删除：状态置为 DELETED，行保留
// @Tags         文章
// @Security     BearerAuth
// @Produce      json
// @Param        postId path int true "文章ID"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "文章不存在"
// @Router       /delete-post/{postId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "删除成功")
}

// Seed
// @Summary      填充演示数据
// @Description  向空库写入一批演示文章、分类与标签，库中已有文章时跳过
// @Tags         文章
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} response.Response "成功响应"
// @Router       /seed [post]
func (h *Handler) Seed(c *gin.Context) {
	if err := h.seeder.Run(c.Request.Context()); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "演示数据填充完成")
}
