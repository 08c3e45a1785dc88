/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-04 16:02:35
 * @LastEditTime: 2025-09-04 16:02:40
 * @LastEditors: 安知鱼
 */
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xyhcode/vue-blog-api/pkg/constant"
)

// FailWithError 根据业务哨兵错误映射 HTTP 状态码并返回失败响应。
// 未识别的错误一律按 500 处理。
func FailWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, constant.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, constant.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, constant.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, constant.ErrUnauthorized), errors.Is(err, constant.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, constant.ErrNotImplemented):
		status = http.StatusNotImplemented
	}
	Fail(c, status, err.Error())
}
