// internal/app/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/xyhcode/vue-blog-api/ent"
	"github.com/xyhcode/vue-blog-api/internal/pkg/utils"
	"github.com/xyhcode/vue-blog-api/pkg/config"
)

type Bootstrapper struct {
	entClient *ent.Client
	cfg       *config.Config
}

func NewBootstrapper(entClient *ent.Client, cfg *config.Config) *Bootstrapper {
	return &Bootstrapper{
		entClient: entClient,
		cfg:       cfg,
	}
}

// InitializeDatabase 同步数据库 Schema 并准备运行时目录。
func (b *Bootstrapper) InitializeDatabase() error {
	log.Println("--- 开始执行数据库初始化引导程序 ---")

	if err := b.entClient.Schema.Create(context.Background()); err != nil {
		return fmt.Errorf("数据库 schema 创建/更新失败: %w", err)
	}
	log.Println("--- 数据库 Schema 同步成功 ---")

	if err := b.ensureUploadDir(); err != nil {
		return err
	}

	log.Println("--- 数据库初始化引导程序执行完成 ---")
	return nil
}

// ensureUploadDir 保证图片上传目录存在。
func (b *Bootstrapper) ensureUploadDir() error {
	uploadDir := b.cfg.GetString(config.KeyUploadDir)
	if uploadDir == "" {
		uploadDir = "data/uploads"
	}
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return fmt.Errorf("创建上传目录 '%s' 失败: %w", uploadDir, err)
	}
	return nil
}

// ResolveJWTSecret 返回签名密钥。配置中未设置时生成一个随机密钥，
// 该密钥只在当次进程内有效，重启后已签发的令牌全部失效。
func (b *Bootstrapper) ResolveJWTSecret() ([]byte, error) {
	secret := b.cfg.GetString(config.KeyJWTSecret)
	if secret != "" {
		return []byte(secret), nil
	}

	log.Println("警告: 未配置 Security.JWTSecret，将生成临时随机密钥，进程重启后所有令牌失效。")
	generated, err := utils.GenerateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("生成随机 JWT 密钥失败: %w", err)
	}
	return []byte(generated), nil
}
