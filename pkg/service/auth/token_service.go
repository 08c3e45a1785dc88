/*
 * @Description: 管理员令牌的签发与校验
 * @Author: 安知鱼
 * @Date: 2025-09-04 11:08:27
 * @LastEditTime: 2025-10-22 15:01:44
 * @LastEditors: 安知鱼
 */
package auth

import (
	"fmt"

	"github.com/xyhcode/vue-blog-api/internal/pkg/auth"
	"github.com/xyhcode/vue-blog-api/pkg/constant"
)

// TokenService 封装了 JWT 令牌的签发与校验，持有签名密钥。
type TokenService struct {
	secretKey []byte
}

// NewTokenService 是 TokenService 的构造函数。
func NewTokenService(secretKey []byte) *TokenService {
	return &TokenService{secretKey: secretKey}
}

// Generate 为指定邮箱签发一个管理员令牌。
func (s *TokenService) Generate(email string) (string, error) {
	token, err := auth.GenerateAdminToken(email, s.secretKey)
	if err != nil {
		return "", fmt.Errorf("签发令牌失败: %w", err)
	}
	return token, nil
}

// Parse 解析并校验令牌，返回其中的声明。
func (s *TokenService) Parse(tokenStr string) (*auth.AdminClaims, error) {
	claims, err := auth.ParseAdminToken(tokenStr, s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidToken, err)
	}
	return claims, nil
}

// Validate 仅回答令牌是否有效，供校验端点使用。
func (s *TokenService) Validate(tokenStr string) bool {
	_, err := s.Parse(tokenStr)
	return err == nil
}
