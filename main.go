/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-05 00:21:55
 * @LastEditTime: 2025-10-23 12:19:06
 * @LastEditors: 安知鱼
 */
package main

import (
	"log"

	"github.com/xyhcode/vue-blog-api/cmd/server"
)

// @title           Vue Blog API
// @version         1.0
// @description     Vue 博客前端配套的内容管理接口文档

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8092
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 在请求头中添加 Bearer Token，格式为: Bearer {token}
func main() {
	app, cleanup, err := server.NewApp()
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		log.Fatalf("应用运行失败: %v", err)
	}
}
