package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/chart"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
)

// ErrNoCollaborator 没有配置协作方
var ErrNoCollaborator = errors.New("no collaborator configured")

// RefreshCharts 用协作方重新生成图表数据。
// 失败时保留原数据并记录提示；被更新的请求取代时返回 ErrSuperseded，不写入结果。
func (w *Workspace) RefreshCharts(ctx context.Context, text string) error {
	w.mu.Lock()
	w.generation++
	gen := w.generation
	w.analyzing++
	w.status = statusAnalyzing
	m := w.model
	w.mu.Unlock()
	defer w.finish(&w.analyzing)

	log := w.log.WithFields(logrus.Fields{"op": "refresh", "gen": gen, "model": m})

	var ds *chart.Dataset
	err := call(ctx, func(ctx context.Context) error {
		if w.collab == nil {
			return ErrNoCollaborator
		}
		var err error
		ds, err = w.collab.AnalyzeCharts(ctx, text, m)
		if err == nil && ds == nil {
			err = fmt.Errorf("%w: nil dataset", chart.ErrContract)
		}
		return err
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		log.Errorf("refresh charts failed: %v", err)
		w.alert(alertRefresh)
		return err
	}
	if gen != w.generation {
		log.Warnf("discarding stale chart data, latest gen=%d", w.generation)
		return ErrSuperseded
	}
	w.charts = ds.Clone()
	log.Info("charts refreshed")
	return nil
}

// SubmitChat 发送一条对话消息。空白输入直接忽略。
// 等待期间对话记录末尾有一条占位消息，回复或失败时先移除占位再写入结果。
func (w *Workspace) SubmitChat(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	w.mu.Lock()
	if w.pendingID != "" {
		w.mu.Unlock()
		return ErrChatBusy
	}
	now := w.now()
	user := ChatMessage{ID: w.newID(), Role: collab.RoleUser, Content: text, Timestamp: now}
	history := make([]collab.Turn, 0, len(w.transcript)+1)
	for _, msg := range w.transcript {
		history = append(history, collab.Turn{Role: msg.Role, Content: msg.Content})
	}
	history = append(history, collab.Turn{Role: user.Role, Content: user.Content})

	placeholder := ChatMessage{
		ID:        w.newID(),
		Role:      collab.RoleAssistant,
		Content:   placeholderText,
		Timestamp: now,
		Pending:   true,
	}
	w.transcript = append(w.transcript, user, placeholder)
	w.pendingID = placeholder.ID
	doc := w.doc.Body
	m := w.model
	w.mu.Unlock()

	var reply string
	err := call(ctx, func(ctx context.Context) error {
		if w.collab == nil {
			return ErrNoCollaborator
		}
		var err error
		reply, err = w.collab.Chat(ctx, history, doc, m)
		return err
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	w.removePending()
	if err != nil {
		w.log.WithFields(logrus.Fields{"op": "chat", "model": m}).Errorf("chat failed: %v", err)
		w.alert(alertChat)
		return err
	}
	w.transcript = append(w.transcript, ChatMessage{
		ID:        w.newID(),
		Role:      collab.RoleAssistant,
		Content:   reply,
		Timestamp: w.now(),
	})
	return nil
}

// removePending 调用方需持有锁
func (w *Workspace) removePending() {
	for i, msg := range w.transcript {
		if msg.ID == w.pendingID {
			w.transcript = append(w.transcript[:i], w.transcript[i+1:]...)
			break
		}
	}
	w.pendingID = ""
}

// RunTool 执行魔法工具，成功后把结果追加为助手消息并打开对话面板
func (w *Workspace) RunTool(ctx context.Context, name string, params collab.ToolParams) error {
	name = strings.TrimSpace(name)
	tool := collab.ParseTool(name)

	w.mu.Lock()
	w.tools++
	w.status = fmt.Sprintf("Running %s...", name)
	doc := w.doc.Body
	m := w.model
	w.mu.Unlock()
	defer w.finish(&w.tools)

	log := w.log.WithFields(logrus.Fields{"op": "tool", "tool": tool, "model": m})
	if tool == collab.ToolAnalyze {
		log.Warnf("unknown tool %q, using generic analysis", name)
	}

	var out string
	err := call(ctx, func(ctx context.Context) error {
		if w.collab == nil {
			return ErrNoCollaborator
		}
		var err error
		out, err = w.collab.RunTool(ctx, tool, doc, m, params)
		return err
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		log.Errorf("tool failed: %v", err)
		w.alert(alertTool)
		return err
	}
	w.transcript = append(w.transcript, ChatMessage{
		ID:        w.newID(),
		Role:      collab.RoleAssistant,
		Content:   fmt.Sprintf("**Magic Tool (%s) Result:**\n\n%s", name, out),
		Timestamp: w.now(),
	})
	w.chatOpen = true
	log.Info("tool finished")
	return nil
}
