package service

import (
	"context"
	"errors"
	nethttp "net/http"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/chart"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/i18n"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/importer"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/jackpot"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/style"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/workspace"
)

// StateReply 页面需要的完整状态
type StateReply struct {
	workspace.State
	Stats     workspace.Stats `json:"stats"`
	WordsText string          `json:"wordsText"`
	LastSaved string          `json:"lastSaved"`
	Spinning  bool            `json:"spinning"`
	Models    []ModelOption   `json:"models"`
}

// ModelOption 可选模型
type ModelOption struct {
	ID    collab.Model `json:"id"`
	Label string       `json:"label"`
}

// ChartsReply 渲染后的六张图
type ChartsReply struct {
	Charts []ChartView `json:"charts"`
}

// ChartView 一张图及其本地化标题
type ChartView struct {
	Title string `json:"title"`
	chart.Visual
}

// EditRequest 编辑器提交
type EditRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ImportURLRequest 从网页导入
type ImportURLRequest struct {
	URL string `json:"url"`
}

// RefreshRequest 重新生成图表，Text 为空时使用当前正文
type RefreshRequest struct {
	Text string `json:"text"`
}

// ChatRequest 对话输入
type ChatRequest struct {
	Message string `json:"message"`
}

// ToolRequest 魔法工具参数
type ToolRequest struct {
	Params map[string]string `json:"params"`
}

// ModelRequest 选择模型
type ModelRequest struct {
	Model string `json:"model"`
}

// DashboardService 仪表板接口实现
type DashboardService struct {
	ws      *workspace.Workspace
	spinner *jackpot.Spinner
	log     *log.Helper
	now     func() time.Time

	detect sync.Once
}

// NewDashboardService 创建仪表板服务
func NewDashboardService(ws *workspace.Workspace, spinner *jackpot.Spinner, logger log.Logger) *DashboardService {
	return &DashboardService{
		ws:      ws,
		spinner: spinner,
		log:     log.NewHelper(logger),
		now:     time.Now,
	}
}

// State 当前状态及派生统计
func (s *DashboardService) State(ctx context.Context) (*StateReply, error) {
	st := s.ws.Snapshot()
	stats := workspace.Count(st.Document.Body)
	models := make([]ModelOption, 0, len(collab.Models()))
	for _, m := range collab.Models() {
		models = append(models, ModelOption{ID: m, Label: m.Label()})
	}
	return &StateReply{
		State:     st,
		Stats:     stats,
		WordsText: humanize.Comma(int64(stats.Words)),
		LastSaved: humanize.RelTime(st.Document.LastModified, s.now(), "ago", "from now"),
		Spinning:  s.spinner.Spinning(),
		Models:    models,
	}, nil
}

// Charts 按当前风格渲染全部图表
func (s *DashboardService) Charts(ctx context.Context) (*ChartsReply, error) {
	st := s.ws.Snapshot()
	strs := i18n.For(string(st.Language))
	out := make([]ChartView, 0, len(chart.Tags()))
	for _, v := range chart.RenderAll(st.Charts, st.Style, style.HexResolver{}) {
		out = append(out, ChartView{Title: strs.GraphTitle(v.Tag), Visual: v})
	}
	return &ChartsReply{Charts: out}, nil
}

// Chart 渲染单张图，未知类型返回 unsupported 结果
func (s *DashboardService) Chart(ctx context.Context, tag string) (*ChartView, error) {
	st := s.ws.Snapshot()
	t, _ := chart.ParseTag(tag)
	v := chart.Render(t, st.Charts, st.Style, style.HexResolver{})
	return &ChartView{Title: i18n.For(string(st.Language)).GraphTitle(t), Visual: v}, nil
}

// Edit 编辑器写入
func (s *DashboardService) Edit(ctx context.Context, req *EditRequest) (*workspace.Document, error) {
	if req.Title != "" {
		s.ws.SetTitle(req.Title)
	}
	doc := s.ws.Edit(req.Body)
	return &doc, nil
}

// Import 导入上传的文件并重新生成图表。
// 正文替换后图表生成失败不算导入失败，失败原因通过提示返回给页面。
func (s *DashboardService) Import(ctx context.Context, name string, body []byte) (*StateReply, error) {
	if err := importer.CheckName(name); err != nil {
		return nil, s.convert(err)
	}
	if err := s.ws.Import(ctx, name, body); err != nil {
		s.log.Warnf("import %s: charts not refreshed: %v", name, err)
	}
	return s.State(ctx)
}

// ImportURL 抓取网页正文作为文章
func (s *DashboardService) ImportURL(ctx context.Context, req *ImportURLRequest) (*StateReply, error) {
	if req.URL == "" {
		return nil, kerrors.BadRequest("URL_REQUIRED", "url is required")
	}
	page, err := importer.FromURL(req.URL, importer.DefaultTimeout)
	if err != nil {
		s.log.Errorf("import url %s: %v", req.URL, err)
		return nil, kerrors.BadRequest("IMPORT_FAILED", err.Error())
	}
	if err = s.ws.ImportText(ctx, page.Title, page.Text); err != nil {
		s.log.Warnf("import url %s: charts not refreshed: %v", req.URL, err)
	}
	return s.State(ctx)
}

// Export 导出正文
func (s *DashboardService) Export(ctx context.Context, format string) (*workspace.Artifact, error) {
	f, err := workspace.ParseFormat(format)
	if err != nil {
		return nil, s.convert(err)
	}
	art, err := s.ws.Export(f)
	if err != nil {
		return nil, s.convert(err)
	}
	return &art, nil
}

// Refresh 重新生成图表
func (s *DashboardService) Refresh(ctx context.Context, req *RefreshRequest) (*ChartsReply, error) {
	text := req.Text
	if text == "" {
		text = s.ws.Document().Body
	}
	if err := s.ws.RefreshCharts(ctx, text); err != nil {
		return nil, s.convert(err)
	}
	return s.Charts(ctx)
}

// Chat 发送对话消息，返回最新的对话记录
func (s *DashboardService) Chat(ctx context.Context, req *ChatRequest) ([]workspace.ChatMessage, error) {
	if err := s.ws.SubmitChat(ctx, req.Message); err != nil {
		return nil, s.convert(err)
	}
	return s.transcript(), nil
}

// RunTool 执行魔法工具
func (s *DashboardService) RunTool(ctx context.Context, name string, req *ToolRequest) ([]workspace.ChatMessage, error) {
	if err := s.ws.RunTool(ctx, name, collab.ToolParams(req.Params)); err != nil {
		return nil, s.convert(err)
	}
	return s.transcript(), nil
}

// transcript 空对话记录编码为 [] 而不是 null
func (s *DashboardService) transcript() []workspace.ChatMessage {
	tr := s.ws.Transcript()
	if tr == nil {
		tr = []workspace.ChatMessage{}
	}
	return tr
}

// Spin 启动风格拉霸；已经在转时返回 false
func (s *DashboardService) Spin(ctx context.Context) (bool, error) {
	return s.spinner.Spin(), nil
}

// SelectStyle 按 ID 切换风格
func (s *DashboardService) SelectStyle(ctx context.Context, id string) (*style.Style, error) {
	if !s.ws.SelectStyle(id) {
		return nil, kerrors.NotFound("STYLE_NOT_FOUND", "unknown style: "+id)
	}
	st := s.ws.Style()
	return &st, nil
}

// Styles 全部风格
func (s *DashboardService) Styles(ctx context.Context) ([]style.Style, error) {
	return style.Registry(), nil
}

// DetectLanguage 首次打开页面时按 Accept-Language 选择语言，之后以用户切换为准
func (s *DashboardService) DetectLanguage(ctx context.Context, acceptLanguage string) {
	s.detect.Do(func() {
		lang := workspace.Language(i18n.Match(acceptLanguage))
		s.ws.SetLanguage(lang)
		s.log.Infof("initial language: %s", lang)
	})
}

// ToggleLanguage 切换语言
func (s *DashboardService) ToggleLanguage(ctx context.Context) (workspace.Language, error) {
	s.detect.Do(func() {})
	return s.ws.ToggleLanguage(), nil
}

// ToggleTheme 切换明暗模式
func (s *DashboardService) ToggleTheme(ctx context.Context) (bool, error) {
	return s.ws.ToggleThemeMode(), nil
}

// SetView 切换视图
func (s *DashboardService) SetView(ctx context.Context, view string) (workspace.View, error) {
	v, ok := workspace.ParseView(view)
	if !ok {
		return "", kerrors.BadRequest("UNKNOWN_VIEW", "unknown view: "+view)
	}
	s.ws.SetView(v)
	return v, nil
}

// SelectModel 选择模型
func (s *DashboardService) SelectModel(ctx context.Context, req *ModelRequest) (collab.Model, error) {
	m, ok := collab.ParseModel(req.Model)
	if !ok {
		return "", kerrors.BadRequest("UNKNOWN_MODEL", "unknown model: "+req.Model)
	}
	s.ws.SelectModel(m)
	return m, nil
}

// SetChatOpen 打开或关闭对话面板
func (s *DashboardService) SetChatOpen(ctx context.Context, open bool) (bool, error) {
	s.ws.SetChatOpen(open)
	return open, nil
}

// Alerts 取出待展示的提示
func (s *DashboardService) Alerts(ctx context.Context) ([]workspace.Alert, error) {
	alerts := s.ws.DrainAlerts()
	if alerts == nil {
		alerts = []workspace.Alert{}
	}
	return alerts, nil
}

// convert 把工作区错误转换为 kratos 错误
func (s *DashboardService) convert(err error) error {
	switch {
	case errors.Is(err, importer.ErrUnsupportedFile):
		return kerrors.BadRequest("UNSUPPORTED_FILE", err.Error())
	case errors.Is(err, importer.ErrTooLarge):
		return kerrors.New(nethttp.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, workspace.ErrChatBusy):
		return kerrors.Conflict("CHAT_BUSY", err.Error())
	case errors.Is(err, workspace.ErrSuperseded):
		return kerrors.Conflict("SUPERSEDED", err.Error())
	case errors.Is(err, workspace.ErrNoCollaborator):
		return kerrors.ServiceUnavailable("AI_DISABLED", err.Error())
	}
	return kerrors.New(nethttp.StatusBadGateway, "COLLABORATOR_FAILED", err.Error())
}
