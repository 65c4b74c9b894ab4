package chart

import (
	"math"
	"strconv"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/style"
)

// Kind 图表形态
type Kind string

const (
	KindHorizontalBar Kind = "horizontal-bar"
	KindGroupedBar    Kind = "grouped-bar"
	KindScatter       Kind = "scatter"
	KindBubble        Kind = "bubble"
	KindPie           Kind = "pie"
	KindRadar         Kind = "radar"
	KindUnsupported   Kind = "unsupported"
)

// UnsupportedMessage 不支持的图表类型的提示
const UnsupportedMessage = "Graph type not supported"

// fixedColors 按下标循环的固定区分色，不随主题变化
var fixedColors = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884d8", "#82ca9d"}

// Theme 图表的主题色
type Theme struct {
	Text    string   `json:"text"`
	Grid    string   `json:"grid"`
	Palette []string `json:"palette"`
	Font    string   `json:"font"`
}

// Tooltip 使用当前风格的表面、边框、文字 token 渲染的提示框
type Tooltip struct {
	Background  string `json:"background"`
	Border      string `json:"border"`
	BorderWidth string `json:"borderWidth"`
	Text        string `json:"text"`
	Font        string `json:"font"`
}

// Axis 直角坐标轴
type Axis struct {
	Type       string   `json:"type"` // value | category
	Name       string   `json:"name,omitempty"`
	Unit       string   `json:"unit,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Hidden     bool     `json:"hidden,omitempty"`
}

// Indicator 雷达图的一个维度
type Indicator struct {
	Name string  `json:"name"`
	Max  float64 `json:"max"`
}

// Point 一个数据点；柱状、雷达只用 Value，散点用 X/Y/Size
type Point struct {
	Label   string  `json:"label,omitempty"`
	Value   float64 `json:"value"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Size    float64 `json:"size,omitempty"`
	Percent int     `json:"percent,omitempty"`
	Color   string  `json:"color,omitempty"`
	Detail  string  `json:"detail,omitempty"`
}

// Series 一组数据
type Series struct {
	Name        string  `json:"name"`
	Color       string  `json:"color,omitempty"`
	FillOpacity float64 `json:"fillOpacity,omitempty"`
	Points      []Point `json:"points"`
}

// Visual 渲染结果，前端按 Kind 选择具体的图表组件
type Visual struct {
	Tag        Tag         `json:"tag"`
	Kind       Kind        `json:"kind"`
	Message    string      `json:"message,omitempty"`
	Theme      Theme       `json:"theme"`
	Tooltip    Tooltip     `json:"tooltip"`
	XAxis      *Axis       `json:"xAxis,omitempty"`
	YAxis      *Axis       `json:"yAxis,omitempty"`
	Indicators []Indicator `json:"indicators,omitempty"`
	Legend     bool        `json:"legend"`
	Series     []Series    `json:"series"`
}

// Supported 是否为支持的图表类型
func (v Visual) Supported() bool {
	return v.Kind != KindUnsupported
}

// ThemeFor 根据风格推导图表文字、网格颜色与系列色板
func ThemeFor(st style.Style) Theme {
	th := Theme{
		Text: "#1e293b",
		Grid: "#e2e8f0",
		Font: st.Font.Stack(),
	}
	if st.Dark {
		th.Text = "#e2e8f0"
		th.Grid = "#334155"
	}
	if st.ID == "mondrian" {
		th.Palette = []string{"#FF0000", "#FFFF00", "#0000FF"}
	} else {
		th.Palette = []string{"#8884d8", "#82ca9d", "#ffc658"}
	}
	th.Palette = append(th.Palette, "#ff7300", "#0088FE", "#00C49F")
	return th
}

// TooltipFor 解析提示框的视觉值
func TooltipFor(st style.Style, r style.Resolver) Tooltip {
	return Tooltip{
		Background:  r.Resolve(st.Colors.Surface),
		Border:      r.Resolve(st.Colors.Border),
		BorderWidth: string(st.BorderWidth),
		Text:        r.Resolve(st.Colors.Text),
		Font:        st.Font.Stack(),
	}
}

// Render 按图表类型把数据集渲染为可视化结构；未知类型返回 KindUnsupported，不会 panic
func Render(tag Tag, ds *Dataset, st style.Style, r style.Resolver) Visual {
	if ds == nil {
		ds = &Dataset{}
	}
	if r == nil {
		r = style.ClassResolver{}
	}
	v := Visual{
		Tag:     tag,
		Theme:   ThemeFor(st),
		Tooltip: TooltipFor(st, r),
	}

	switch tag {
	case TagTimeline:
		renderTimeline(&v, ds.Timeline)
	case TagComplianceHeatmap:
		renderCompliance(&v, ds.ComplianceHeatmap)
	case TagRiskMatrix:
		renderRisk(&v, ds.RiskMatrix)
	case TagTechNetwork:
		renderNetwork(&v, ds.TechNetwork)
	case TagChecklist:
		renderChecklist(&v, ds.Checklist)
	case TagBurden:
		renderBurden(&v, ds.Burden)
	default:
		v.Kind = KindUnsupported
		v.Message = UnsupportedMessage
		v.Series = []Series{}
	}
	return v
}

// RenderAll 按展示顺序渲染全部六类图表
func RenderAll(ds *Dataset, st style.Style, r style.Resolver) []Visual {
	out := make([]Visual, 0, len(Tags()))
	for _, t := range Tags() {
		out = append(out, Render(t, ds, st, r))
	}
	return out
}

// 时间轴：按给定顺序排列的水平柱，柱长为序号，标签为事件
func renderTimeline(v *Visual, items []Milestone) {
	v.Kind = KindHorizontalBar
	dates := make([]string, 0, len(items))
	points := make([]Point, 0, len(items))
	for i, m := range items {
		dates = append(dates, m.Date)
		points = append(points, Point{
			Label:  m.Event,
			Value:  float64(i + 1),
			Detail: m.Type,
		})
	}
	v.XAxis = &Axis{Type: "value", Hidden: true}
	v.YAxis = &Axis{Type: "category", Categories: dates}
	v.Series = []Series{{Name: "Event", Color: v.Theme.Palette[0], Points: points}}
}

func renderCompliance(v *Visual, items []RegionCompliance) {
	v.Kind = KindGroupedBar
	v.Legend = true
	regions := make([]string, 0, len(items))
	score := make([]Point, 0, len(items))
	complexity := make([]Point, 0, len(items))
	for _, c := range items {
		regions = append(regions, c.Region)
		score = append(score, Point{Label: c.Region, Value: c.Score})
		complexity = append(complexity, Point{Label: c.Region, Value: c.Complexity})
	}
	v.XAxis = &Axis{Type: "category", Categories: regions}
	v.YAxis = &Axis{Type: "value"}
	v.Series = []Series{
		{Name: "Compliance Score", Color: v.Theme.Palette[0], Points: score},
		{Name: "Complexity", Color: v.Theme.Palette[1], Points: complexity},
	}
}

// 风险矩阵：点颜色按下标循环固定色板
func renderRisk(v *Visual, items []Risk) {
	v.Kind = KindScatter
	points := make([]Point, 0, len(items))
	for i, r := range items {
		points = append(points, Point{
			Label:  r.Name,
			X:      r.Probability,
			Y:      r.Severity,
			Color:  fixedColors[i%len(fixedColors)],
			Detail: r.Category,
		})
	}
	v.XAxis = &Axis{Type: "value", Name: "Probability", Unit: "%"}
	v.YAxis = &Axis{Type: "value", Name: "Severity", Unit: "%"}
	v.Series = []Series{{Name: "Devices", Color: v.Theme.Palette[2], Points: points}}
}

const (
	bubbleMin = 100
	bubbleMax = 1000
)

// 技术网络：用气泡散点近似网络图，两轴都取关联权重，气泡大小随权重线性放大
func renderNetwork(v *Visual, items []Link) {
	v.Kind = KindBubble
	points := make([]Point, 0, len(items))
	for _, l := range items {
		w := math.Min(math.Max(l.Value, 1), 10)
		points = append(points, Point{
			Label:  l.Source,
			X:      l.Value,
			Y:      l.Value,
			Size:   bubbleMin + (w-1)/9*(bubbleMax-bubbleMin),
			Detail: l.Source + " → " + l.Target,
		})
	}
	v.XAxis = &Axis{Type: "value", Name: "Importance"}
	v.YAxis = &Axis{Type: "value", Name: "Impact"}
	v.Series = []Series{{Name: "Concepts", Color: v.Theme.Palette[3], Points: points}}
}

// 检查表：饼图，标签为阶段名加四舍五入后的百分比
func renderChecklist(v *Visual, items []Phase) {
	v.Kind = KindPie
	var total float64
	for _, p := range items {
		total += p.Progress
	}
	points := make([]Point, 0, len(items))
	for i, p := range items {
		pct := 0
		if total > 0 {
			pct = int(math.Round(p.Progress / total * 100))
		}
		points = append(points, Point{
			Label:   PieLabel(p.Phase, pct),
			Value:   p.Progress,
			Percent: pct,
			Color:   fixedColors[i%len(fixedColors)],
			Detail:  p.Status,
		})
	}
	v.Series = []Series{{Name: "Progress", Points: points}}
}

// PieLabel 饼图扇区标签
func PieLabel(name string, pct int) string {
	return name + " " + strconv.Itoa(pct) + "%"
}

func renderBurden(v *Visual, items []Burden) {
	v.Kind = KindRadar
	v.Legend = true
	indicators := make([]Indicator, 0, len(items))
	us := make([]Point, 0, len(items))
	eu := make([]Point, 0, len(items))
	cn := make([]Point, 0, len(items))
	for _, b := range items {
		indicators = append(indicators, Indicator{Name: b.Metric, Max: 100})
		us = append(us, Point{Label: b.Metric, Value: b.US})
		eu = append(eu, Point{Label: b.Metric, Value: b.EU})
		cn = append(cn, Point{Label: b.Metric, Value: b.CN})
	}
	v.Indicators = indicators
	v.Series = []Series{
		{Name: "US", Color: v.Theme.Palette[0], FillOpacity: 0.4, Points: us},
		{Name: "EU", Color: v.Theme.Palette[1], FillOpacity: 0.4, Points: eu},
		{Name: "CN", Color: v.Theme.Palette[2], FillOpacity: 0.4, Points: cn},
	}
}
