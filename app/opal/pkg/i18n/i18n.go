// Package i18n 界面文案，支持英文和繁体中文。
package i18n

import (
	"golang.org/x/text/language"

	"github.com/iWorld-y/opal_dashboard/app/opal/pkg/chart"
)

// Strings 一种语言下的全部界面文案
type Strings struct {
	Dashboard  string
	Editor     string
	Analytics  string
	Settings   string
	WordCount  string
	ReadTime   string
	AIMagic    string
	AskAI      string
	Upload     string
	Download   string
	Model      string
	Theme      string
	Style      string
	LastSaved  string
	Processing string
	Graphs     map[chart.Tag]string
}

// GraphTitle 图表标题，未知类型返回类型名本身
func (s Strings) GraphTitle(t chart.Tag) string {
	if title, ok := s.Graphs[t]; ok {
		return title
	}
	return string(t)
}

const (
	EN   = "en"
	ZhTW = "zh-TW"
)

var tables = map[string]Strings{
	EN: {
		Dashboard:  "Dashboard",
		Editor:     "Editor",
		Analytics:  "Analytics",
		Settings:   "Settings",
		WordCount:  "Words",
		ReadTime:   "Read Time",
		AIMagic:    "AI Magic",
		AskAI:      "Ask AI",
		Upload:     "Upload",
		Download:   "Download",
		Model:      "Model",
		Theme:      "Theme",
		Style:      "Style Jackpot",
		LastSaved:  "Last saved",
		Processing: "AI Processing...",
		Graphs: map[chart.Tag]string{
			chart.TagTimeline:          "Regulatory Timeline",
			chart.TagComplianceHeatmap: "Global Compliance Heatmap",
			chart.TagRiskMatrix:        "AI Risk Classification",
			chart.TagTechNetwork:       "Technology Network",
			chart.TagChecklist:         "Checklist Progress",
			chart.TagBurden:            "Burden Analysis",
		},
	},
	ZhTW: {
		Dashboard:  "儀表板 (Dashboard)",
		Editor:     "編輯器 (Editor)",
		Analytics:  "分析 (Analytics)",
		Settings:   "設定 (Settings)",
		WordCount:  "字數",
		ReadTime:   "閱讀時間",
		AIMagic:    "AI 魔法",
		AskAI:      "詢問 AI",
		Upload:     "上傳",
		Download:   "下載",
		Model:      "模型",
		Theme:      "主題",
		Style:      "風格拉霸 (Style Jackpot)",
		LastSaved:  "最後儲存",
		Processing: "AI 運算中...",
		Graphs: map[chart.Tag]string{
			chart.TagTimeline:          "法規時間軸 (Timeline)",
			chart.TagComplianceHeatmap: "全球合規熱圖 (Heatmap)",
			chart.TagRiskMatrix:        "AI 風險分類 (Risk Matrix)",
			chart.TagTechNetwork:       "技術網絡 (Network)",
			chart.TagChecklist:         "檢查表進度 (Checklist)",
			chart.TagBurden:            "負擔分析 (Burden)",
		},
	},
}

// For 返回语言对应的文案，未知语言回退到英文
func For(lang string) Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[EN]
}

// Match 根据 Accept-Language 选出界面语言：按偏好顺序取第一个英文或中文，中文变体都用繁体
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return EN
	}
	zh, _ := language.Chinese.Base()
	en, _ := language.English.Base()
	for _, t := range tags {
		switch base, _ := t.Base(); base {
		case zh:
			return ZhTW
		case en:
			return EN
		}
	}
	return EN
}
