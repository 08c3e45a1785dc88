package image

import (
	"net/http"

	"github.com/xyhcode/vue-blog-api/pkg/response"

	image_service "github.com/xyhcode/vue-blog-api/pkg/service/image"

	"github.com/gin-gonic/gin"
)

// Handler 封装了图片上传的 HTTP 处理器。
type Handler struct {
	svc *image_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *image_service.Service) *Handler {
	return &Handler{svc: svc}
}

// uploadImageRequest Base64 图片上传的请求体。
type uploadImageRequest struct {
	Base64Image string `json:"base64Image" binding:"required"`
}

// Upload
// @Summary      上传图片
// @Description  接收 Base64 编码的图片并落盘，返回可公开访问的相对地址
// @Tags         图片
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body uploadImageRequest true "Base64 图片数据，可携带 data URL 前缀"
// @Success      200 {object} response.Response{data=string} "成功响应"
// @Failure      400 {object} response.Response "图片数据无效"
// @Router       /image/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	var req uploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	url, err := h.svc.UploadBase64(c.Request.Context(), req.Base64Image)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, url, "图片上传成功")
}
