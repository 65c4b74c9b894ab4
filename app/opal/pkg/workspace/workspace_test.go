package workspace

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/chart"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/importer"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/style"
)

// fakeCollab 可编程的协作方；gate 非空时每次调用先等待放行
type fakeCollab struct {
	mu sync.Mutex

	dataset *chart.Dataset
	reply   string
	err     error
	panics  bool
	gate    chan struct{}
	entered chan struct{}
	// toolGate 非空时 RunTool 等待它而不是 gate
	toolGate chan struct{}

	history []collab.Turn
	doc     string
	tool    collab.Tool
	model   collab.Model
}

func (f *fakeCollab) wait() {
	f.waitOn(f.gate)
}

func (f *fakeCollab) waitOn(gate chan struct{}) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	if f.panics {
		panic("boom")
	}
}

func (f *fakeCollab) AnalyzeCharts(_ context.Context, _ string, m collab.Model) (*chart.Dataset, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.model = m
	if f.err != nil {
		return nil, f.err
	}
	return f.dataset, nil
}

func (f *fakeCollab) Chat(_ context.Context, history []collab.Turn, document string, m collab.Model) (string, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history, f.doc, f.model = history, document, m
	return f.reply, f.err
}

func (f *fakeCollab) RunTool(_ context.Context, tool collab.Tool, document string, m collab.Model, _ collab.ToolParams) (string, error) {
	if f.toolGate != nil {
		f.waitOn(f.toolGate)
	} else {
		f.wait()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tool, f.doc, f.model = tool, document, m
	return f.reply, f.err
}

type fixture struct {
	ws    *Workspace
	fc    *fakeCollab
	hook  *test.Hook
	clock time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	f := &fixture{fc: &fakeCollab{}, hook: hook, clock: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	seq := 0
	f.ws = New(Options{
		Collaborator: f.fc,
		Logger:       log,
		Now: func() time.Time {
			f.clock = f.clock.Add(time.Second)
			return f.clock
		},
		NewID: func() string {
			seq++
			return "msg-" + strconv.Itoa(seq)
		},
	})
	return f
}

func sampleDataset() *chart.Dataset {
	return &chart.Dataset{
		Timeline:          []chart.Milestone{{Date: "2027-01-01", Event: "MDR transition", Type: "EU"}},
		ComplianceHeatmap: []chart.RegionCompliance{{Region: "Europe", Score: 50, Complexity: 90}},
		RiskMatrix:        []chart.Risk{{ID: "a", Name: "Triage", Probability: 70, Severity: 80, Category: "High"}},
		TechNetwork:       []chart.Link{{Source: "AI Act", Target: "MDR", Value: 9}},
		Checklist:         []chart.Phase{{Phase: "Gap Analysis", Progress: 40, Status: "In Progress"}},
		Burden:            []chart.Burden{{Metric: "Cost", US: 10, EU: 20, CN: 30}},
	}
}

func TestNew_Defaults(t *testing.T) {
	f := newFixture(t)
	st := f.ws.Snapshot()

	assert.Equal(t, style.Default(), st.Style)
	assert.Equal(t, LangEN, st.Language)
	assert.Equal(t, ViewDashboard, st.View)
	assert.Equal(t, collab.DefaultModel, st.Model)
	assert.Equal(t, DefaultTitle, st.Document.Title)
	assert.Equal(t, DefaultArticle, st.Document.Body)
	assert.Equal(t, chart.Default(), st.Charts)
	assert.Empty(t, st.Transcript)
	assert.False(t, st.Busy())
	assert.False(t, st.ChatOpen)
}

func TestRefreshCharts_Success(t *testing.T) {
	f := newFixture(t)
	f.fc.dataset = sampleDataset()
	f.ws.SelectModel(collab.ModelGemini25Flash)

	require.NoError(t, f.ws.RefreshCharts(context.Background(), "text"))

	st := f.ws.Snapshot()
	assert.Equal(t, sampleDataset(), st.Charts)
	assert.Equal(t, collab.ModelGemini25Flash, f.fc.model)
	assert.False(t, st.Analyzing)
	assert.Empty(t, st.Status)
	assert.Empty(t, f.ws.DrainAlerts())
}

func TestRefreshCharts_FailureKeepsData(t *testing.T) {
	f := newFixture(t)
	before := f.ws.Charts()
	f.fc.err = errors.New("401")

	err := f.ws.RefreshCharts(context.Background(), "text")
	require.Error(t, err)

	st := f.ws.Snapshot()
	assert.Equal(t, before, st.Charts)
	assert.False(t, st.Analyzing)
	alerts := f.ws.DrainAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, alertRefresh, alerts[0].Message)
	assert.Empty(t, f.ws.DrainAlerts())
	assert.Equal(t, logrus.ErrorLevel, f.hook.LastEntry().Level)
}

func TestRefreshCharts_PanicIsRecovered(t *testing.T) {
	f := newFixture(t)
	before := f.ws.Charts()
	f.fc.panics = true

	err := f.ws.RefreshCharts(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
	assert.Equal(t, before, f.ws.Charts())
	assert.False(t, f.ws.Snapshot().Analyzing)
	assert.Len(t, f.ws.DrainAlerts(), 1)
}

func TestRefreshCharts_NilDatasetIsContractError(t *testing.T) {
	f := newFixture(t)
	err := f.ws.RefreshCharts(context.Background(), "text")
	assert.ErrorIs(t, err, chart.ErrContract)
	assert.Equal(t, chart.Default(), f.ws.Charts())
}

func TestRefreshCharts_StaleResultDiscarded(t *testing.T) {
	f := newFixture(t)
	f.fc.gate = make(chan struct{})
	f.fc.entered = make(chan struct{})
	f.fc.dataset = sampleDataset()

	first := make(chan error, 1)
	go func() { first <- f.ws.RefreshCharts(context.Background(), "old") }()
	<-f.fc.entered
	assert.True(t, f.ws.Snapshot().Analyzing)
	assert.Equal(t, statusAnalyzing, f.ws.Snapshot().Status)

	second := make(chan error, 1)
	go func() { second <- f.ws.RefreshCharts(context.Background(), "new") }()
	<-f.fc.entered

	// 无论哪个先返回，只有第二次的结果会被写入
	f.fc.gate <- struct{}{}
	f.fc.gate <- struct{}{}
	assert.ErrorIs(t, <-first, ErrSuperseded)
	assert.NoError(t, <-second)
	assert.Equal(t, sampleDataset(), f.ws.Charts())
	assert.False(t, f.ws.Snapshot().Analyzing)
}

func TestSubmitChat_Blank(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ws.SubmitChat(context.Background(), ""))
	require.NoError(t, f.ws.SubmitChat(context.Background(), " \n\t "))
	assert.Empty(t, f.ws.Transcript())
	assert.Nil(t, f.fc.history)
}

func TestSubmitChat_Success(t *testing.T) {
	f := newFixture(t)
	f.fc.reply = "PCCP means Predetermined Change Control Plan."

	require.NoError(t, f.ws.SubmitChat(context.Background(), "What is PCCP?"))

	tr := f.ws.Transcript()
	require.Len(t, tr, 2)
	assert.Equal(t, collab.RoleUser, tr[0].Role)
	assert.Equal(t, "What is PCCP?", tr[0].Content)
	assert.Equal(t, collab.RoleAssistant, tr[1].Role)
	assert.Equal(t, f.fc.reply, tr[1].Content)
	for _, m := range tr {
		assert.False(t, m.Pending)
	}
	assert.Equal(t, DefaultArticle, f.fc.doc)
	assert.Equal(t, []collab.Turn{{Role: collab.RoleUser, Content: "What is PCCP?"}}, f.fc.history)

	// 第二轮携带之前的全部记录
	require.NoError(t, f.ws.SubmitChat(context.Background(), "And MDR?"))
	assert.Len(t, f.fc.history, 3)
	assert.Len(t, f.ws.Transcript(), 4)
}

func TestSubmitChat_Failure(t *testing.T) {
	f := newFixture(t)
	f.fc.err = errors.New("network down")

	require.Error(t, f.ws.SubmitChat(context.Background(), "hello"))

	tr := f.ws.Transcript()
	require.Len(t, tr, 1)
	assert.Equal(t, collab.RoleUser, tr[0].Role)
	alerts := f.ws.DrainAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, alertChat, alerts[0].Message)
}

func TestSubmitChat_PlaceholderWhilePending(t *testing.T) {
	f := newFixture(t)
	f.fc.gate = make(chan struct{})
	f.fc.entered = make(chan struct{})
	f.fc.reply = "ok"

	done := make(chan error, 1)
	go func() { done <- f.ws.SubmitChat(context.Background(), "first") }()
	<-f.fc.entered

	tr := f.ws.Transcript()
	require.Len(t, tr, 2)
	assert.True(t, tr[1].Pending)
	assert.Equal(t, collab.RoleAssistant, tr[1].Role)

	assert.ErrorIs(t, f.ws.SubmitChat(context.Background(), "second"), ErrChatBusy)
	assert.Len(t, f.ws.Transcript(), 2)

	f.fc.gate <- struct{}{}
	require.NoError(t, <-done)
	tr = f.ws.Transcript()
	require.Len(t, tr, 2)
	assert.False(t, tr[1].Pending)
	assert.Equal(t, "ok", tr[1].Content)
}

func TestRunTool_Keywords(t *testing.T) {
	f := newFixture(t)
	f.fc.reply = `["AI Act", "PCCP"]`

	require.NoError(t, f.ws.RunTool(context.Background(), "keywords", nil))

	st := f.ws.Snapshot()
	require.Len(t, st.Transcript, 1)
	assert.Equal(t, collab.RoleAssistant, st.Transcript[0].Role)
	assert.Equal(t, "**Magic Tool (keywords) Result:**\n\n[\"AI Act\", \"PCCP\"]", st.Transcript[0].Content)
	assert.True(t, st.ChatOpen)
	assert.False(t, st.ToolRunning)
	assert.Empty(t, st.Status)
	assert.Equal(t, collab.ToolKeywords, f.fc.tool)
}

func TestRunTool_UnknownFallsBackToAnalyze(t *testing.T) {
	f := newFixture(t)
	f.fc.reply = "analysis"
	require.NoError(t, f.ws.RunTool(context.Background(), "horoscope", nil))
	assert.Equal(t, collab.ToolAnalyze, f.fc.tool)
	assert.Equal(t, logrus.InfoLevel, f.hook.LastEntry().Level)
	assert.Equal(t, logrus.WarnLevel, f.hook.Entries[0].Level)
}

func TestRunTool_Failure(t *testing.T) {
	f := newFixture(t)
	f.fc.err = errors.New("quota")

	require.Error(t, f.ws.RunTool(context.Background(), "summarize", collab.ToolParams{"level": "Technical"}))

	st := f.ws.Snapshot()
	assert.Empty(t, st.Transcript)
	assert.False(t, st.ChatOpen)
	assert.False(t, st.ToolRunning)
	alerts := f.ws.DrainAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, alertTool, alerts[0].Message)
}

func TestRunTool_StatusLabel(t *testing.T) {
	f := newFixture(t)
	f.fc.gate = make(chan struct{})
	f.fc.entered = make(chan struct{})

	done := make(chan error, 1)
	go func() { done <- f.ws.RunTool(context.Background(), "citation", nil) }()
	<-f.fc.entered
	st := f.ws.Snapshot()
	assert.True(t, st.ToolRunning)
	assert.Equal(t, "Running citation...", st.Status)

	f.fc.gate <- struct{}{}
	require.NoError(t, <-done)
	assert.Empty(t, f.ws.Snapshot().Status)
}

func TestRunTool_AnalysisLabelRestored(t *testing.T) {
	f := newFixture(t)
	f.fc.gate = make(chan struct{})
	f.fc.toolGate = make(chan struct{})
	f.fc.entered = make(chan struct{})
	f.fc.dataset = sampleDataset()

	refresh := make(chan error, 1)
	go func() { refresh <- f.ws.RefreshCharts(context.Background(), "text") }()
	<-f.fc.entered

	tool := make(chan error, 1)
	go func() { tool <- f.ws.RunTool(context.Background(), "keywords", nil) }()
	<-f.fc.entered
	assert.Equal(t, "Running keywords...", f.ws.Snapshot().Status)

	f.fc.toolGate <- struct{}{}
	require.NoError(t, <-tool)
	st := f.ws.Snapshot()
	assert.True(t, st.Analyzing)
	assert.False(t, st.ToolRunning)
	assert.Equal(t, statusAnalyzing, st.Status)

	f.fc.gate <- struct{}{}
	require.NoError(t, <-refresh)
	assert.Empty(t, f.ws.Snapshot().Status)
}

func TestExport_NormalizesFormat(t *testing.T) {
	f := newFixture(t)
	f.ws.Edit("body")

	for _, in := range []Format{".md", "MD", ".Md"} {
		art, err := f.ws.Export(in)
		require.NoError(t, err, in)
		assert.Equal(t, "article.md", art.Filename, in)
		assert.Equal(t, "text/markdown; charset=utf-8", art.ContentType, in)
	}
	art, err := f.ws.Export(".TXT")
	require.NoError(t, err)
	assert.Equal(t, "article.txt", art.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", art.ContentType)
}

func TestExportImportRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.fc.dataset = sampleDataset()
	body := "# Outlook\r\n\n*  bullet\twith tab\n> quote — 法規\n"
	f.ws.Edit(body)

	md, err := f.ws.Export(FormatMarkdown)
	require.NoError(t, err)
	txt, err := f.ws.Export(FormatText)
	require.NoError(t, err)
	assert.Equal(t, "article.md", md.Filename)
	assert.Equal(t, "article.txt", txt.Filename)
	assert.Equal(t, md.Body, txt.Body)

	f.ws.Edit("something else")
	require.NoError(t, f.ws.Import(context.Background(), md.Filename, md.Body))
	assert.Equal(t, body, f.ws.Document().Body)
	assert.Equal(t, sampleDataset(), f.ws.Charts())

	_, err = f.ws.Export("pdf")
	assert.ErrorIs(t, err, importer.ErrUnsupportedFile)
}

func TestImport_RejectsUnsupportedFile(t *testing.T) {
	f := newFixture(t)
	before := f.ws.Document()
	err := f.ws.Import(context.Background(), "slides.pptx", []byte("x"))
	assert.ErrorIs(t, err, importer.ErrUnsupportedFile)
	assert.Equal(t, before, f.ws.Document())
}

func TestImport_RefreshFailureStillReplacesBody(t *testing.T) {
	f := newFixture(t)
	f.fc.err = errors.New("401")
	before := f.ws.Document()

	require.Error(t, f.ws.Import(context.Background(), "notes.txt", []byte("new body")))
	doc := f.ws.Document()
	assert.Equal(t, "new body", doc.Body)
	assert.True(t, doc.LastModified.After(before.LastModified))
	assert.Equal(t, chart.Default(), f.ws.Charts())
}

func TestImportText_SetsTitle(t *testing.T) {
	f := newFixture(t)
	f.fc.dataset = sampleDataset()
	require.NoError(t, f.ws.ImportText(context.Background(), "Imported", "page text"))
	assert.Equal(t, "Imported", f.ws.Document().Title)
}

func TestEditStampsTime(t *testing.T) {
	f := newFixture(t)
	before := f.ws.Document().LastModified
	doc := f.ws.Edit("draft")
	assert.Equal(t, "draft", doc.Body)
	assert.True(t, doc.LastModified.After(before))
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	f.ws.Edit("one two three four")
	assert.Equal(t, Stats{Words: 4, ReadTime: 1}, f.ws.Stats())

	assert.Equal(t, Stats{}, Count("  \n "))
	assert.Equal(t, Stats{Words: 201, ReadTime: 2}, Count(repeatWord(201)))
	assert.Equal(t, Stats{Words: 200, ReadTime: 1}, Count(repeatWord(200)))
}

func repeatWord(n int) string {
	b := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		b = append(b, 'w', ' ')
	}
	return string(b)
}

func TestSyncTransitions(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, LangZhTW, f.ws.ToggleLanguage())
	assert.Equal(t, LangEN, f.ws.ToggleLanguage())
	assert.True(t, f.ws.ToggleThemeMode())
	assert.False(t, f.ws.ToggleThemeMode())

	f.ws.SetView(ViewEditor)
	f.ws.SetChatOpen(true)
	f.ws.SelectModel(collab.ModelGemini25Flash)
	assert.True(t, f.ws.SelectStyle("rothko"))
	assert.False(t, f.ws.SelectStyle("banksy"))

	st := f.ws.Snapshot()
	assert.Equal(t, ViewEditor, st.View)
	assert.True(t, st.ChatOpen)
	assert.Equal(t, collab.ModelGemini25Flash, st.Model)
	assert.Equal(t, "rothko", st.Style.ID)
	assert.Nil(t, f.fc.history)

	_, ok := ParseView("settings")
	assert.False(t, ok)
}

func TestSnapshotIsCopy(t *testing.T) {
	f := newFixture(t)
	st := f.ws.Snapshot()
	st.Charts.Timeline[0].Event = "mutated"
	assert.NotEqual(t, "mutated", f.ws.Charts().Timeline[0].Event)
}

func TestNoCollaborator(t *testing.T) {
	ws := New(Options{Logger: logrus.New()})
	assert.ErrorIs(t, ws.RefreshCharts(context.Background(), "x"), ErrNoCollaborator)
	assert.ErrorIs(t, ws.SubmitChat(context.Background(), "x"), ErrNoCollaborator)
	assert.Len(t, ws.Transcript(), 1)
	assert.Len(t, ws.DrainAlerts(), 2)
}
