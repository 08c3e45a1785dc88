package image

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xyhcode/vue-blog-api/pkg/constant"
)

// 1x1 像素的测试图片数据
var testImageData = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestUploadBase64(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	encoded := base64.StdEncoding.EncodeToString(testImageData)
	url, err := svc.UploadBase64(context.Background(), encoded)
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %s, 期望 /uploads/<uuid>.png 格式", url)
	}

	// 文件应真实落盘且内容一致
	fileName := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		t.Fatalf("读取落盘文件失败: %v", err)
	}
	if string(data) != string(testImageData) {
		t.Error("落盘内容与上传数据不一致")
	}
}

func TestUploadBase64_剥离DataURL前缀(t *testing.T) {
	svc := NewService(t.TempDir())

	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(testImageData)
	url, err := svc.UploadBase64(context.Background(), encoded)
	if err != nil {
		t.Fatalf("携带 data URL 前缀的上传失败: %v", err)
	}
	if url == "" {
		t.Error("url 不应为空")
	}
}

func TestUploadBase64_空数据(t *testing.T) {
	svc := NewService(t.TempDir())

	for _, input := range []string{"", "   "} {
		if _, err := svc.UploadBase64(context.Background(), input); !errors.Is(err, constant.ErrBadRequest) {
			t.Errorf("UploadBase64(%q) 错误 = %v, 期望 ErrBadRequest", input, err)
		}
	}
}

func TestUploadBase64_无效编码(t *testing.T) {
	svc := NewService(t.TempDir())

	if _, err := svc.UploadBase64(context.Background(), "不是base64!!!"); !errors.Is(err, constant.ErrBadRequest) {
		t.Errorf("错误 = %v, 期望 ErrBadRequest", err)
	}
}

func TestUploadBase64_每次生成不同文件名(t *testing.T) {
	svc := NewService(t.TempDir())
	encoded := base64.StdEncoding.EncodeToString(testImageData)

	first, err := svc.UploadBase64(context.Background(), encoded)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.UploadBase64(context.Background(), encoded)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("两次上传不应产生相同的文件名")
	}
}
