package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/chart"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/jackpot"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/logger"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/workspace"
)

// mockCollaborator 模拟 AI 协作方
type mockCollaborator struct {
	err error
}

func (m *mockCollaborator) AnalyzeCharts(ctx context.Context, text string, model collab.Model) (*chart.Dataset, error) {
	if m.err != nil {
		return nil, m.err
	}
	ds := chart.Default()
	ds.Timeline = ds.Timeline[:1]
	return ds, nil
}

func (m *mockCollaborator) Chat(ctx context.Context, history []collab.Turn, document string, model collab.Model) (string, error) {
	return "reply", m.err
}

func (m *mockCollaborator) RunTool(ctx context.Context, tool collab.Tool, document string, model collab.Model, params collab.ToolParams) (string, error) {
	return "result", m.err
}

func newTestService(c collab.Collaborator) (*DashboardService, *workspace.Workspace) {
	ws := workspace.New(workspace.Options{Collaborator: c, Logger: logger.Discard()})
	spinner := jackpot.New(ws.SetStyle, jackpot.Options{Interval: time.Millisecond, Ticks: 3, Logger: logger.Discard()})
	return NewDashboardService(ws, spinner, log.DefaultLogger), ws
}

func TestDashboardService_State(t *testing.T) {
	s, ws := newTestService(&mockCollaborator{})
	ws.Edit("one two three four")

	st, err := s.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, workspace.Stats{Words: 4, ReadTime: 1}, st.Stats)
	assert.Equal(t, "4", st.WordsText)
	assert.NotEmpty(t, st.LastSaved)
	assert.Len(t, st.Models, 2)
	assert.False(t, st.Spinning)
}

func TestDashboardService_Charts(t *testing.T) {
	s, ws := newTestService(&mockCollaborator{})
	ws.ToggleLanguage()

	reply, err := s.Charts(context.Background())
	require.NoError(t, err)
	require.Len(t, reply.Charts, 6)
	assert.Equal(t, "法規時間軸 (Timeline)", reply.Charts[0].Title)
	assert.Equal(t, chart.KindHorizontalBar, reply.Charts[0].Kind)

	v, err := s.Chart(context.Background(), "sankey")
	require.NoError(t, err)
	assert.Equal(t, chart.KindUnsupported, v.Kind)
}

func TestDashboardService_Refresh(t *testing.T) {
	s, ws := newTestService(&mockCollaborator{})
	_, err := s.Refresh(context.Background(), &RefreshRequest{})
	require.NoError(t, err)
	assert.Len(t, ws.Charts().Timeline, 1)

	s, ws = newTestService(&mockCollaborator{err: errors.New("401")})
	_, err = s.Refresh(context.Background(), &RefreshRequest{Text: "x"})
	assert.Equal(t, 502, kerrors.Code(err))
	assert.Equal(t, chart.Default(), ws.Charts())

	alerts, err := s.Alerts(context.Background())
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
	alerts, _ = s.Alerts(context.Background())
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestDashboardService_ChatAndTools(t *testing.T) {
	s, ws := newTestService(&mockCollaborator{})

	tr, err := s.Chat(context.Background(), &ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Len(t, tr, 2)

	tr, err = s.RunTool(context.Background(), "keywords", &ToolRequest{})
	require.NoError(t, err)
	assert.Len(t, tr, 3)
	assert.True(t, ws.Snapshot().ChatOpen)
}

func TestDashboardService_EmptyTranscriptIsNotNull(t *testing.T) {
	s, _ := newTestService(&mockCollaborator{})

	tr, err := s.Chat(context.Background(), &ChatRequest{Message: "   "})
	require.NoError(t, err)
	require.NotNil(t, tr)
	out, err := json.Marshal(tr)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestDashboardService_Import(t *testing.T) {
	s, ws := newTestService(&mockCollaborator{err: errors.New("down")})

	_, err := s.Import(context.Background(), "a.pdf", []byte("x"))
	assert.Equal(t, 400, kerrors.Code(err))

	st, err := s.Import(context.Background(), "a.md", []byte("# new"))
	require.NoError(t, err)
	assert.Equal(t, "# new", st.Document.Body)
	assert.Equal(t, "# new", ws.Document().Body)
}

func TestDashboardService_Export(t *testing.T) {
	s, ws := newTestService(nil)
	ws.Edit("body")

	art, err := s.Export(context.Background(), "txt")
	require.NoError(t, err)
	assert.Equal(t, "article.txt", art.Filename)
	assert.Equal(t, []byte("body"), art.Body)

	_, err = s.Export(context.Background(), "docx")
	assert.Equal(t, 400, kerrors.Code(err))
}

func TestDashboardService_Transitions(t *testing.T) {
	s, ws := newTestService(nil)
	ctx := context.Background()

	_, err := s.SetView(ctx, "editor")
	require.NoError(t, err)
	_, err = s.SetView(ctx, "settings")
	assert.Equal(t, 400, kerrors.Code(err))

	_, err = s.SelectModel(ctx, &ModelRequest{Model: "gemini-2.5-flash-latest"})
	require.NoError(t, err)
	_, err = s.SelectModel(ctx, &ModelRequest{Model: "gpt-5"})
	assert.Equal(t, 400, kerrors.Code(err))

	_, err = s.SelectStyle(ctx, "banksy")
	assert.Equal(t, 404, kerrors.Code(err))
	st, err := s.SelectStyle(ctx, "klimt")
	require.NoError(t, err)
	assert.Equal(t, "klimt", st.ID)

	_, err = s.Chat(ctx, &ChatRequest{Message: "hi"})
	assert.Equal(t, 503, kerrors.Code(err))

	snap := ws.Snapshot()
	assert.Equal(t, workspace.ViewEditor, snap.View)
	assert.Equal(t, collab.ModelGemini25Flash, snap.Model)
}

func TestDashboardService_Spin(t *testing.T) {
	s, _ := newTestService(nil)
	ok, err := s.Spin(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	s.spinner.Wait()
	assert.False(t, s.spinner.Spinning())
}

func TestDashboardService_DetectLanguageOnce(t *testing.T) {
	s, ws := newTestService(nil)
	s.DetectLanguage(context.Background(), "zh-TW,zh;q=0.9")
	assert.Equal(t, workspace.LangZhTW, ws.Snapshot().Language)

	s.DetectLanguage(context.Background(), "en-US")
	assert.Equal(t, workspace.LangZhTW, ws.Snapshot().Language)

	s, ws = newTestService(nil)
	_, _ = s.ToggleLanguage(context.Background())
	s.DetectLanguage(context.Background(), "en-US")
	assert.Equal(t, workspace.LangZhTW, ws.Snapshot().Language)
}
