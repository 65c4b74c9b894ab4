// Package workspace 是一次会话的全部状态：文章、图表数据、对话记录以及界面选项。
// 所有修改都经由 Workspace 的方法完成，调用协作方期间不持有锁。
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/chart"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/style"
)

// Language 界面语言
type Language string

const (
	LangEN   Language = "en"
	LangZhTW Language = "zh-TW"
)

// View 当前视图
type View string

const (
	ViewDashboard View = "dashboard"
	ViewEditor    View = "editor"
)

// ParseView 解析视图名
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewDashboard, ViewEditor:
		return View(s), true
	}
	return "", false
}

// Document 正在编辑的文章
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	LastModified time.Time `json:"lastModified"`
}

// ChatMessage 对话记录中的一条
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      collab.Role `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	// Pending 等待回复时的占位消息
	Pending bool `json:"pending,omitempty"`
}

// Alert 需要展示给用户的提示
type Alert struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const (
	alertRefresh = "Failed to regenerate graphs. Check API Key."
	alertChat    = "Chat error"
	alertTool    = "Tool failed"

	statusAnalyzing = "AI Analyzing & Generating Graphs..."
	placeholderText = "..."
)

var (
	// ErrChatBusy 上一条消息的回复还没有回来
	ErrChatBusy = errors.New("a chat reply is still pending")
	// ErrSuperseded 分析结果已被更新的一次请求取代，未写入
	ErrSuperseded = errors.New("chart analysis superseded by a newer request")
)

// State 某一时刻的只读快照
type State struct {
	Style       style.Style    `json:"style"`
	Language    Language       `json:"language"`
	Dark        bool           `json:"dark"`
	View        View           `json:"view"`
	Document    Document       `json:"document"`
	Charts      *chart.Dataset `json:"charts"`
	Transcript  []ChatMessage  `json:"transcript"`
	Analyzing   bool           `json:"analyzing"`
	ToolRunning bool           `json:"toolRunning"`
	Status      string         `json:"status"`
	Model       collab.Model   `json:"model"`
	ChatOpen    bool           `json:"chatOpen"`
}

// Busy 是否有分析或工具在运行
func (s State) Busy() bool {
	return s.Analyzing || s.ToolRunning
}

// Options 工作区参数，零值字段使用默认实现
type Options struct {
	Collaborator collab.Collaborator
	Logger       logrus.FieldLogger
	Now          func() time.Time
	NewID        func() string
	Document     *Document
	Charts       *chart.Dataset
}

// Workspace 会话状态容器
type Workspace struct {
	collab collab.Collaborator
	log    logrus.FieldLogger
	now    func() time.Time
	newID  func() string

	mu         sync.Mutex
	style      style.Style
	lang       Language
	dark       bool
	view       View
	doc        Document
	charts     *chart.Dataset
	transcript []ChatMessage
	pendingID  string
	model      collab.Model
	chatOpen   bool
	alerts     []Alert

	// 正在运行的分析和工具数量，可能有多次请求重叠
	analyzing int
	tools     int
	status    string
	// 每次发起分析时递增，只有最新一次的结果会写入
	generation uint64
}

// New 创建工作区
func New(opts Options) *Workspace {
	w := &Workspace{
		collab: opts.Collaborator,
		log:    opts.Logger,
		now:    opts.Now,
		newID:  opts.NewID,
		style:  style.Default(),
		lang:   LangEN,
		view:   ViewDashboard,
		model:  collab.DefaultModel,
	}
	if w.log == nil {
		w.log = logrus.StandardLogger()
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.newID == nil {
		w.newID = uuid.NewString
	}
	if opts.Document != nil {
		w.doc = *opts.Document
	} else {
		w.doc = Document{ID: "1", Title: DefaultTitle, Body: DefaultArticle}
	}
	if w.doc.LastModified.IsZero() {
		w.doc.LastModified = w.now()
	}
	if opts.Charts != nil {
		w.charts = opts.Charts.Clone()
	} else {
		w.charts = chart.Default()
	}
	return w
}

// Snapshot 返回当前状态的拷贝
func (w *Workspace) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Style:       w.style,
		Language:    w.lang,
		Dark:        w.dark,
		View:        w.view,
		Document:    w.doc,
		Charts:      w.charts.Clone(),
		Transcript:  append([]ChatMessage(nil), w.transcript...),
		Analyzing:   w.analyzing > 0,
		ToolRunning: w.tools > 0,
		Status:      w.status,
		Model:       w.model,
		ChatOpen:    w.chatOpen,
	}
}

// Charts 当前图表数据的拷贝
func (w *Workspace) Charts() *chart.Dataset {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.charts.Clone()
}

// Transcript 当前对话记录的拷贝
func (w *Workspace) Transcript() []ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]ChatMessage(nil), w.transcript...)
}

// Style 当前风格
func (w *Workspace) Style() style.Style {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style
}

// SetStyle 切换风格，拉霸每次切换也走这里
func (w *Workspace) SetStyle(st style.Style) {
	w.mu.Lock()
	w.style = st
	w.mu.Unlock()
}

// SelectStyle 按 ID 切换风格
func (w *Workspace) SelectStyle(id string) bool {
	st, ok := style.Lookup(id)
	if !ok {
		return false
	}
	w.SetStyle(st)
	return true
}

// ToggleLanguage 在 en 和 zh-TW 之间切换，返回新语言
func (w *Workspace) ToggleLanguage() Language {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lang == LangEN {
		w.lang = LangZhTW
	} else {
		w.lang = LangEN
	}
	return w.lang
}

// SetLanguage 直接设置语言
func (w *Workspace) SetLanguage(l Language) {
	w.mu.Lock()
	w.lang = l
	w.mu.Unlock()
}

// ToggleThemeMode 切换明暗模式，返回是否为暗色
func (w *Workspace) ToggleThemeMode() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dark = !w.dark
	return w.dark
}

// SetView 切换视图
func (w *Workspace) SetView(v View) {
	w.mu.Lock()
	w.view = v
	w.mu.Unlock()
}

// SelectModel 选择模型
func (w *Workspace) SelectModel(m collab.Model) {
	w.mu.Lock()
	w.model = m
	w.mu.Unlock()
}

// SetChatOpen 打开或关闭对话面板
func (w *Workspace) SetChatOpen(open bool) {
	w.mu.Lock()
	w.chatOpen = open
	w.mu.Unlock()
}

// DrainAlerts 取出并清空待展示的提示
func (w *Workspace) DrainAlerts() []Alert {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.alerts
	w.alerts = nil
	return out
}

// alert 调用方需持有锁
func (w *Workspace) alert(msg string) {
	w.alerts = append(w.alerts, Alert{Message: msg, At: w.now()})
}

// finish 结束一次分析或工具调用；两者都结束后清空状态文字，只剩分析时恢复分析文字
func (w *Workspace) finish(counter *int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	*counter--
	switch {
	case w.analyzing == 0 && w.tools == 0:
		w.status = ""
	case w.tools == 0:
		w.status = statusAnalyzing
	}
}

// call 调用协作方，协作方 panic 时转为错误
func call(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("collaborator panic: %v", r)
		}
	}()
	return fn(ctx)
}
