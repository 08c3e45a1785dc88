/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:31:20
 * @LastEditTime: 2025-09-02 14:31:26
 * @LastEditors: 安知鱼
 */
package model

import "time"

// Admin 是管理员的领域模型。PasswordHash 永远不进入任何投影。
type Admin struct {
	ID           uint
	CreatedAt    time.Time
	Email        string
	FullName     string
	PasswordHash string
}

// AdminDTO 是管理员的只读投影。
type AdminDTO struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// RegisterAdminRequest 注册管理员的请求体。
type RegisterAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginAdminRequest 管理员登录的请求体。
type LoginAdminRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 登录成功后返回的令牌。
type TokenResponse struct {
	Value string `json:"value"`
}
