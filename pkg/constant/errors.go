/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:05:33
 * @LastEditTime: 2025-09-20 18:12:09
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrConflict 表示资源冲突（如重复创建），可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrNotImplemented 表示功能未实现，可以由 Handler 转换为 501
	ErrNotImplemented = errors.New("功能未实现")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")

	// ErrInvalidToken 表示无效的令牌，可以由 Handler 转换为 401
	ErrInvalidToken = errors.New("无效令牌")
)
