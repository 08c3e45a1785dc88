package tag

import (
	"net/http"
	"strconv"

	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/response"

	tag_service "github.com/xyhcode/vue-blog-api/pkg/service/tag"

	"github.com/gin-gonic/gin"
)

// Handler 封装了所有与文章标签相关的 HTTP 处理器。
type Handler struct {
	svc *tag_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *tag_service.Service) *Handler {
	return &Handler{svc: svc}
}

func parseTagID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("tagId"), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, http.StatusBadRequest, "无效的标签ID")
		return 0, false
	}
	return uint(id), true
}

// Create
// @Summary      创建新标签
// @Tags         标签
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        tag body model.CreateTagRequest true "创建标签的请求体"
// @Success      200 {object} response.Response{data=model.TagDTO} "成功响应"
// @Failure      409 {object} response.Response "标签已存在"
// @Router       /create-tag [post]
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dto, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "创建标签成功")
}

// createTagsRequest 批量创建标签的请求体。
type createTagsRequest struct {
	Names []string `json:"names" binding:"required"`
}

// CreateBatch
// @Summary      批量创建标签
// @Tags         标签
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body createTagsRequest true "标签名称列表"
// @Success      200 {object} response.Response{data=[]model.TagDTO} "成功响应"
// @Router       /create-tags [post]
func (h *Handler) CreateBatch(c *gin.Context) {
	var req createTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dtos, err := h.svc.CreateBatch(c.Request.Context(), req.Names)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dtos, "批量创建标签成功")
}

// Update
// @Summary      重命名标签
// @Tags         标签
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        tagId path int true "标签ID"
// @Param        tag body model.CreateTagRequest true "新名称"
// @Success      200 {object} response.Response{data=model.TagDTO} "成功响应"
// @Failure      404 {object} response.Response "标签不存在"
// @Router       /update-tag/{tagId} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseTagID(c)
	if !ok {
		return
	}
	var req model.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dto, err := h.svc.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "更新标签成功")
}

// Delete
// @Summary      删除标签
// @Tags         标签
// @Security     BearerAuth
// @Produce      json
// @Param        tagId path int true "标签ID"
// @Success      200 {object} response.Response "成功响应"
// @Failure      404 {object} response.Response "标签不存在"
// @Router       /delete-tag/{tagId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseTagID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "删除标签成功")
}

// List
// @Summary      获取标签列表
// @Tags         标签
// @Produce      json
// @Success      200 {object} response.Response{data=[]model.TagDTO} "成功响应"
// @Router       /get-tags [get]
func (h *Handler) List(c *gin.Context) {
	dtos, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dtos, "获取标签列表成功")
}
