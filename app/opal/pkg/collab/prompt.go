package collab

import (
	"fmt"
	"strings"
)

// Tool 魔法工具名
type Tool string

const (
	ToolSummarize   Tool = "summarize"
	ToolKeywords    Tool = "keywords"
	ToolGapAnalysis Tool = "gap-analysis"
	ToolCitation    Tool = "citation"
	ToolTranslate   Tool = "translate"
	ToolTrend       Tool = "trend-predict"
	// ToolAnalyze 未识别的工具名统一走通用分析模板
	ToolAnalyze Tool = "analyze"
)

// Tools 返回全部已知工具
func Tools() []Tool {
	return []Tool{ToolSummarize, ToolKeywords, ToolGapAnalysis, ToolCitation, ToolTranslate, ToolTrend}
}

// ParseTool 解析工具名，兼容旧的 gap / trend 写法；未知名字返回 ToolAnalyze
func ParseTool(name string) Tool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "summarize":
		return ToolSummarize
	case "keywords":
		return ToolKeywords
	case "gap-analysis", "gap":
		return ToolGapAnalysis
	case "citation":
		return ToolCitation
	case "translate":
		return ToolTranslate
	case "trend-predict", "trend":
		return ToolTrend
	}
	return ToolAnalyze
}

const jsonSystemPrompt = "You are a JSON generator. Output only a JSON object, no markdown."

const analyzeTpl = `Analyze the following regulatory text and generate structured JSON data for 6 graphs.
The graphs are:
1. timeline: Regulatory deadlines (date YYYY-MM-DD, event description, type like US/EU/CN).
2. complianceHeatmap: Regions (North America, Europe, etc), score (0-100), complexity (0-100).
3. riskMatrix: List of devices/systems mentioned, their id, name, probability (0-100), severity (0-100), category.
4. techNetwork: Relationships between concepts (source, target, value 1-10).
5. checklist: Compliance phases, progress (0-100), status.
6. burden: Metrics (Cost, Time, etc) values for us, eu, cn (0-100).

Return ONLY the JSON with exactly these keys:
{"timeline":[{"date":"","event":"","type":""}],"complianceHeatmap":[{"region":"","score":0,"complexity":0}],"riskMatrix":[{"id":"","name":"","probability":0,"severity":0,"category":""}],"techNetwork":[{"source":"","target":"","value":0}],"checklist":[{"phase":"","progress":0,"status":""}],"burden":[{"metric":"","us":0,"eu":0,"cn":0}]}

Text: %s...`

// AnalyzePrompt 图表分析提示词，文本截断到 limit 个字符
func AnalyzePrompt(text string, limit int) string {
	return fmt.Sprintf(analyzeTpl, Truncate(text, limit))
}

const chatSystemTpl = `System Instruction: You are a MedTech Regulatory Expert. Answer based on the context provided.

Context: %s`

// ChatSystemPrompt 对话的系统设定，文章截断到 limit 个字符
func ChatSystemPrompt(document string, limit int) string {
	return fmt.Sprintf(chatSystemTpl, Truncate(document, limit))
}

// ToolPrompt 按工具名生成提示词；translate 之外都使用全文
func ToolPrompt(tool Tool, text string, params ToolParams, translateLimit int) string {
	switch tool {
	case ToolSummarize:
		level := params["level"]
		if level == "" {
			level = "Executive"
		}
		length := params["length"]
		if length == "" {
			length = "Paragraph"
		}
		return fmt.Sprintf("Summarize this medical regulatory text. Level: %s. Length: %s. Text: %s", level, length, text)
	case ToolKeywords:
		return fmt.Sprintf("Extract top 10 keywords and concept clusters from this text. Return as JSON list of strings. Text: %s", text)
	case ToolGapAnalysis:
		return fmt.Sprintf("Act as a Regulatory Gap Analyzer. Identify compliance gaps based on this text for a generic Class IIb AI device. Text: %s", text)
	case ToolCitation:
		return fmt.Sprintf("Generate citations for this text in APA, IEEE, and Regulatory standard formats. Text: %s", text)
	case ToolTranslate:
		return fmt.Sprintf("Translate the following summary of the text into Traditional Chinese, ensuring medical regulatory terminology (like PMS, NB, PCCP) is accurate. Text: %s", Truncate(text, translateLimit))
	case ToolTrend:
		return fmt.Sprintf("Based on this text, predict 3 future regulatory trends for 2027-2028. Text: %s", text)
	}
	return fmt.Sprintf("Analyze: %s", text)
}
