/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-03 09:14:25
 * @LastEditTime: 2025-09-03 09:14:30
 * @LastEditors: 安知鱼
 */
package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是认证信息在 gin.Context 中的键名
const ClaimsKey = "admin_claims"

// AdminClaims 是管理员令牌携带的声明，只包含邮箱一个业务字段
type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
