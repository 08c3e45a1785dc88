package category

import (
	"net/http"
	"strconv"

	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/response"

	category_service "github.com/xyhcode/vue-blog-api/pkg/service/category"

	"github.com/gin-gonic/gin"
)

// Handler 封装了所有与文章分类相关的 HTTP 处理器。
type Handler struct {
	svc *category_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *category_service.Service) *Handler {
	return &Handler{svc: svc}
}

func parseCategoryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("categoryId"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, http.StatusBadRequest, "无效的分类ID")
		return 0, false
	}
	return uint(id), true
}

// Create
// @Summary      创建新分类
// @Tags         分类
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body model.CreateCategoryRequest true "创建分类的请求体"
// @Success      200 {object} response.Response{data=model.CategoryDTO} "成功响应"
// @Failure      409 {object} response.Response "分类已存在"
// @Router       /create-category [post]
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dto, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "创建分类成功")
}

// createCategoriesRequest 批量创建分类的请求体。
type createCategoriesRequest struct {
	Names []string `json:"names" binding:"required"`
}

// CreateBatch
// @Summary      批量创建分类
// @Tags         分类
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body createCategoriesRequest true "分类名称列表"
// @Success      200 {object} response.Response{data=[]model.CategoryDTO} "成功响应"
// @Router       /create-categories [post]
func (h *Handler) CreateBatch(c *gin.Context) {
	var req createCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dtos, err := h.svc.CreateBatch(c.Request.Context(), req.Names)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dtos, "批量创建分类成功")
}

// Update
// @Summary      重命名分类
// @Tags         分类
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        categoryId path int true "分类ID"
// @Param        category body model.CreateCategoryRequest true "新名称"
// @Success      200 {object} response.Response{data=model.CategoryDTO} "成功响应"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /update-category/{categoryId} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseCategoryID(c)
	if !ok {
		return
	}
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dto, err := h.svc.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "更新分类成功")
}

// Delete
// @Summary      删除分类
// @Tags         分类
// @Security     BearerAuth
// @Produce      json
// @Param        categoryId path int true "分类ID"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /delete-category/{categoryId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseCategoryID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "删除分类成功")
}

// List
// @Summary      获取分类列表
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=[]model.CategoryDTO} "成功响应"
// @Router       /get-categories [get]
func (h *Handler) List(c *gin.Context) {
	dtos, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dtos, "获取分类列表成功")
}

// Get
// @Summary      获取单个分类
// @Tags         分类
// @Produce      json
// @Param        categoryId path int true "分类ID"
// @Success      200 {object} response.Response{data=model.CategoryDTO} "成功响应"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /get-category/{categoryId} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseCategoryID(c)
	if !ok {
		return
	}
	dto, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "获取分类成功")
}
