// Package importer 把外部文本来源读成文章正文：本地 .md/.txt 文件或网页。
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// DefaultTimeout 网页抓取超时
const DefaultTimeout = 30 * time.Second

// MaxSize 单个导入文件的大小上限
const MaxSize = 8 << 20

var (
	// ErrUnsupportedFile 只接受 .md 和 .txt
	ErrUnsupportedFile = errors.New("unsupported file type, expected .md or .txt")
	// ErrTooLarge 文件超过 MaxSize
	ErrTooLarge = errors.New("file too large")
	// ErrEmptyPage 网页中没有提取到正文
	ErrEmptyPage = errors.New("no readable content")
)

// Extensions 支持的扩展名
func Extensions() []string {
	return []string{".md", ".txt"}
}

// CheckName 校验文件扩展名
func CheckName(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions() {
		if ext == e {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFile, name)
}

// ReadFile 校验文件名后整体读入内存，内容原样返回
func ReadFile(name string, r io.Reader) ([]byte, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if n > MaxSize {
		return nil, ErrTooLarge
	}
	return buf.Bytes(), nil
}

// Page 网页提取结果
type Page struct {
	Title string
	Text  string
}

// FromURL 抓取网页并提取正文
func FromURL(url string, timeout time.Duration) (*Page, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	article, err := readability.FromURL(url, timeout)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, fmt.Errorf("%s: %w", url, ErrEmptyPage)
	}
	return &Page{Title: strings.TrimSpace(article.Title), Text: text}, nil
}
