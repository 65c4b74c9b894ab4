// Package chart 定义六类图表的数据契约以及把数据集渲染成可视化结构的渲染器。
package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Tag 图表类型标识
type Tag string

const (
	TagTimeline          Tag = "timeline"
	TagComplianceHeatmap Tag = "complianceHeatmap"
	TagRiskMatrix        Tag = "riskMatrix"
	TagTechNetwork       Tag = "techNetwork"
	TagChecklist         Tag = "checklist"
	TagBurden            Tag = "burden"
)

// Tags 按展示顺序返回六个图表类型
func Tags() []Tag {
	return []Tag{TagTimeline, TagComplianceHeatmap, TagRiskMatrix, TagTechNetwork, TagChecklist, TagBurden}
}

// ParseTag 解析图表类型
func ParseTag(s string) (Tag, bool) {
	for _, t := range Tags() {
		if string(t) == s {
			return t, true
		}
	}
	return Tag(s), false
}

// Milestone 法规时间轴节点
type Milestone struct {
	Date  string `json:"date"`
	Event string `json:"event"`
	Type  string `json:"type"`
}

// RegionCompliance 区域合规得分
type RegionCompliance struct {
	Region     string  `json:"region"`
	Score      float64 `json:"score"`
	Complexity float64 `json:"complexity"`
}

// Risk 风险矩阵中的一项
type Risk struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	Severity    float64 `json:"severity"`
	Category    string  `json:"category"`
}

// Link 技术概念之间的关联，Value 取 1~10
type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// Phase 合规检查阶段
type Phase struct {
	Phase    string  `json:"phase"`
	Progress float64 `json:"progress"`
	Status   string  `json:"status"`
}

// Burden 三个法域在同一指标上的负担
type Burden struct {
	Metric string  `json:"metric"`
	US     float64 `json:"us"`
	EU     float64 `json:"eu"`
	CN     float64 `json:"cn"`
}

// Dataset 一次分析产出的六组数据，成功时整体替换
type Dataset struct {
	Timeline          []Milestone        `json:"timeline"`
	ComplianceHeatmap []RegionCompliance `json:"complianceHeatmap"`
	RiskMatrix        []Risk             `json:"riskMatrix"`
	TechNetwork       []Link             `json:"techNetwork"`
	Checklist         []Phase            `json:"checklist"`
	Burden            []Burden           `json:"burden"`
}

// Clone 深拷贝
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	return &Dataset{
		Timeline:          append([]Milestone(nil), d.Timeline...),
		ComplianceHeatmap: append([]RegionCompliance(nil), d.ComplianceHeatmap...),
		RiskMatrix:        append([]Risk(nil), d.RiskMatrix...),
		TechNetwork:       append([]Link(nil), d.TechNetwork...),
		Checklist:         append([]Phase(nil), d.Checklist...),
		Burden:            append([]Burden(nil), d.Burden...),
	}
}

// Len 返回某类图表的数据条数
func (d *Dataset) Len(t Tag) int {
	switch t {
	case TagTimeline:
		return len(d.Timeline)
	case TagComplianceHeatmap:
		return len(d.ComplianceHeatmap)
	case TagRiskMatrix:
		return len(d.RiskMatrix)
	case TagTechNetwork:
		return len(d.TechNetwork)
	case TagChecklist:
		return len(d.Checklist)
	case TagBurden:
		return len(d.Burden)
	}
	return 0
}

// ErrContract 协作方返回的内容不符合六组数据的结构
var ErrContract = errors.New("chart data contract violated")

// Parse 解析协作方返回的 JSON，六个 key 必须全部存在，失败时不返回任何部分结果
func Parse(raw []byte) (*Dataset, error) {
	clean := CleanJSON(string(raw))
	if clean == "" {
		return nil, fmt.Errorf("%w: empty response", ErrContract)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContract, err)
	}
	for _, t := range Tags() {
		v, ok := fields[string(t)]
		if !ok || string(v) == "null" {
			return nil, fmt.Errorf("%w: missing %s", ErrContract, t)
		}
	}

	var ds Dataset
	if err := json.Unmarshal([]byte(clean), &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContract, err)
	}
	return &ds, nil
}

// CleanJSON 去掉 LLM 常见的 markdown 代码块包裹
func CleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
