package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/xyhcode/vue-blog-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery 捕获处理器中的 panic，记录带关联ID的日志并返回 500。
// debugMode 为 true 时把调用栈一并写入日志。
func Recovery(debugMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// 关联ID用于把客户端收到的错误和服务端日志对上
				incidentID := uuid.New().String()
				log.Printf("[Recovery] panic (关联ID %s): %v", incidentID, r)
				if debugMode {
					log.Printf("[Recovery] 调用栈 (关联ID %s):\n%s", incidentID, debug.Stack())
				}
				response.Fail(c, http.StatusInternalServerError, "内部服务器错误，关联ID: "+incidentID)
				c.Abort()
			}
		}()
		c.Next()
	}
}
