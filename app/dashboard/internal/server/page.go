package server

import (
	"bytes"
	"html/template"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/opal_dashboard/app/dashboard/internal/service"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/chart"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/collab"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/i18n"
	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/style"
)

// PageData 首页模板数据
type PageData struct {
	*service.StateReply
	Strings   i18n.Strings
	Card      string
	Primary   string
	Secondary string
	Icon      string
	// Tint 背景与强调色的混合色，用于侧栏高亮
	Tint   string
	Styles []style.Style
	Tags   []chart.Tag
	Tools  []collab.Tool
}

type pageRenderer struct {
	svc  *service.DashboardService
	tmpl *template.Template
	log  *log.Helper
}

func newPageRenderer(svc *service.DashboardService, logger log.Logger) *pageRenderer {
	tmpl := template.Must(template.New("index.html").Funcs(template.FuncMap{
		"graphTitle": func(s i18n.Strings, t chart.Tag) string { return s.GraphTitle(t) },
	}).ParseFS(assets, "assets/index.html"))
	return &pageRenderer{svc: svc, tmpl: tmpl, log: log.NewHelper(logger)}
}

// Data 组装模板数据
func (p *pageRenderer) Data(r *nethttp.Request) (*PageData, error) {
	p.svc.DetectLanguage(r.Context(), r.Header.Get("Accept-Language"))
	st, err := p.svc.State(r.Context())
	if err != nil {
		return nil, err
	}
	s := st.Style
	return &PageData{
		StateReply: st,
		Strings:    i18n.For(string(st.Language)),
		Card:       style.CardClasses(s),
		Primary:    style.ButtonClasses(s, style.VariantPrimary),
		Secondary:  style.ButtonClasses(s, style.VariantSecondary),
		Icon:       style.ButtonClasses(s, style.VariantIcon),
		Tint:       style.Mix(s.Colors.Background, s.Colors.Accent, 0.2),
		Styles:     style.Registry(),
		Tags:       chart.Tags(),
		Tools:      collab.Tools(),
	}, nil
}

func (p *pageRenderer) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	data, err := p.Data(r)
	if err != nil {
		nethttp.Error(w, err.Error(), nethttp.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err = p.tmpl.Execute(&buf, data); err != nil {
		p.log.Errorf("render index: %v", err)
		nethttp.Error(w, "render failed", nethttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
