package auth

import (
	"net/http"
	"strings"

	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/response"

	auth_service "github.com/xyhcode/vue-blog-api/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// Handler 封装了所有与管理员认证相关的 HTTP 处理器。
type Handler struct {
	svc      *auth_service.Service
	tokenSvc *auth_service.TokenService
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *auth_service.Service, tokenSvc *auth_service.TokenService) *Handler {
	return &Handler{svc: svc, tokenSvc: tokenSvc}
}

// Register
// @Summary      注册管理员
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        admin body model.RegisterAdminRequest true "注册请求体"
// @Success      200 {object} response.Response{data=model.AdminDTO} "成功响应"
// @Failure      409 {object} response.Response "邮箱已被注册"
// @Router       /admin/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	dto, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, dto, "注册成功")
}

// Login
// @Summary      管理员登录
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        admin body model.LoginAdminRequest true "登录请求体"
// @Success      200 {object} response.Response{data=model.TokenResponse} "成功响应"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}
	token, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, token, "登录成功")
}

// Validate
// @Summary      校验令牌
// @Description  回答 Authorization 头中携带的令牌是否仍然有效
// @Tags         认证
// @Produce      json
// @Success      200 {object} response.Response{data=bool} "成功响应"
// @Router       /admin/validate-token [get]
func (h *Handler) Validate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	valid := tokenStr != "" && h.tokenSvc.Validate(tokenStr)
	response.Success(c, valid, "校验完成")
}
