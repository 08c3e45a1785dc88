/*
 * @Description: Base64 图片上传
 * @Author: 安知鱼
 * @Date: 2025-09-04 14:33:10
 * @LastEditTime: 2025-10-22 15:40:18
 * @LastEditors: 安知鱼
 */
package image

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xyhcode/vue-blog-api/pkg/constant"
)

// Service 把 Base64 编码的图片落盘，并返回可公开访问的相对地址。
type Service struct {
	uploadDir string
}

// NewService 是图片 Service 的构造函数，uploadDir 是落盘目录。
func NewService(uploadDir string) *Service {
	return &Service{uploadDir: uploadDir}
}

// UploadBase64 解码图片数据并以随机文件名保存。
// 入参允许携带 data URL 前缀（data:image/png;base64,...），前缀会被剥掉。
func (s *Service) UploadBase64(ctx context.Context, base64Image string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(base64Image) == "" {
		return "", fmt.Errorf("%w: 图片数据不能为空", constant.ErrBadRequest)
	}

	// 剥掉 data URL 前缀，只保留逗号之后的有效载荷
	if idx := strings.Index(base64Image, ","); idx >= 0 {
		base64Image = base64Image[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return "", fmt.Errorf("%w: 无效的 Base64 图片数据", constant.ErrBadRequest)
	}

	if err := os.MkdirAll(s.uploadDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("创建上传目录失败: %w", err)
	}

	fileName := uuid.New().String() + ".png"
	filePath := filepath.Join(s.uploadDir, fileName)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("写入图片文件失败: %w", err)
	}

	return "/uploads/" + fileName, nil
}
