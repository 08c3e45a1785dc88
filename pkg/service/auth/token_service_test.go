package auth

import (
	"errors"
	"testing"

	"github.com/xyhcode/vue-blog-api/pkg/constant"
)

func TestTokenService_签发与解析(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	token, err := svc.Generate("admin@example.com")
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	if token == "" {
		t.Fatal("令牌不应为空")
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email = %s, 期望 admin@example.com", claims.Email)
	}
	if claims.Subject != "admin@example.com" {
		t.Errorf("Subject = %s, 期望与邮箱一致", claims.Subject)
	}
}

func TestTokenService_密钥不匹配(t *testing.T) {
	token, err := NewTokenService([]byte("secret-a")).Generate("admin@example.com")
	if err != nil {
		t.Fatal(err)
	}

	_, err = NewTokenService([]byte("secret-b")).Parse(token)
	if !errors.Is(err, constant.ErrInvalidToken) {
		t.Errorf("错误 = %v, 期望 ErrInvalidToken", err)
	}
}

func TestTokenService_篡改的令牌(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))
	token, err := svc.Generate("admin@example.com")
	if err != nil {
		t.Fatal(err)
	}

	tampered := token[:len(token)-4] + "xxxx"
	if svc.Validate(tampered) {
		t.Error("篡改的令牌不应通过校验")
	}
}

func TestTokenService_Validate(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"))

	token, err := svc.Generate("admin@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !svc.Validate(token) {
		t.Error("有效令牌应通过校验")
	}
	if svc.Validate("not-a-token") {
		t.Error("乱码不应通过校验")
	}
	if svc.Validate("") {
		t.Error("空字符串不应通过校验")
	}
}
