package workspace

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/importer"
)

// WordsPerMinute 阅读时间估算的速度
const WordsPerMinute = 200

// Format 导出格式，两种格式内容完全相同，只有扩展名不同
type Format string

const (
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
)

// ParseFormat 解析导出格式，允许带前导点
func ParseFormat(s string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(s), ".")) {
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatText:
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: export format %q", importer.ErrUnsupportedFile, s)
}

// Artifact 可下载的导出文件
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Stats 由正文实时计算的统计
type Stats struct {
	Words    int `json:"words"`
	ReadTime int `json:"readTime"`
}

// Document 当前文章
func (w *Workspace) Document() Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.doc
}

// Edit 编辑器写入正文
func (w *Workspace) Edit(body string) Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.setBody(body)
	return w.doc
}

// SetTitle 修改标题
func (w *Workspace) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.doc.Title = title
	w.doc.LastModified = w.now()
}

func (w *Workspace) setBody(body string) {
	w.doc.Body = body
	w.doc.LastModified = w.now()
}

// Import 导入 .md/.txt 文件，替换正文后自动重新生成图表
func (w *Workspace) Import(ctx context.Context, name string, body []byte) error {
	if err := importer.CheckName(name); err != nil {
		return err
	}
	w.log.WithField("file", name).Infof("importing document (%d bytes)", len(body))
	return w.ImportText(ctx, "", string(body))
}

// ImportText 用外部文本替换正文并重新生成图表，title 为空时保留原标题
func (w *Workspace) ImportText(ctx context.Context, title, text string) error {
	w.mu.Lock()
	w.setBody(text)
	if title != "" {
		w.doc.Title = title
	}
	w.mu.Unlock()
	return w.RefreshCharts(ctx, text)
}

// Export 把正文原样导出
func (w *Workspace) Export(f Format) (Artifact, error) {
	f, err := ParseFormat(string(f))
	if err != nil {
		return Artifact{}, err
	}
	w.mu.Lock()
	body := w.doc.Body
	w.mu.Unlock()

	ct := "text/plain; charset=utf-8"
	if f == FormatMarkdown {
		ct = "text/markdown; charset=utf-8"
	}
	return Artifact{
		Filename:    "article." + string(f),
		ContentType: ct,
		Body:        []byte(body),
	}, nil
}

// Stats 字数按空白切分，阅读时间向上取整到分钟
func (w *Workspace) Stats() Stats {
	w.mu.Lock()
	body := w.doc.Body
	w.mu.Unlock()
	return Count(body)
}

// Count 统计一段文本
func Count(body string) Stats {
	n := len(strings.Fields(body))
	return Stats{
		Words:    n,
		ReadTime: int(math.Ceil(float64(n) / WordsPerMinute)),
	}
}
