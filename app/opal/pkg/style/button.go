package style

import "strings"

// Variant 按钮变体
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantIcon      Variant = "icon"
)

const buttonBase = "px-4 py-2 transition-all duration-300 flex items-center justify-center gap-2 disabled:opacity-50 disabled:cursor-not-allowed"

// lightAccent 亮色强调色上需要深色文字
const lightAccent = 75.0 / 100

// ButtonClasses 返回风格化按钮的样式类名
func ButtonClasses(s Style, v Variant) string {
	var variant string
	switch v {
	case VariantSecondary:
		variant = string(s.Colors.Secondary) + " " + string(s.Colors.Text) + " hover:brightness-95"
	case VariantIcon:
		variant = "p-2 bg-transparent hover:bg-black/5"
	default:
		variant = primaryClasses(s)
	}
	return strings.Join([]string{buttonBase, s.Font.Class(), string(s.Radius), variant}, " ")
}

func primaryClasses(s Style) string {
	switch s.ID {
	case "mondrian":
		return "bg-red-600 text-white border-2 border-black"
	case "vangogh":
		return "bg-yellow-400 text-blue-900 border-2 border-yellow-600"
	}
	accent := string(s.Colors.Accent)
	if l, ok := Lightness(s.Colors.Accent); ok && l >= lightAccent {
		return accent + " text-black hover:brightness-95"
	}
	return accent + " text-white hover:brightness-110"
}

// CardClasses 返回卡片容器的样式类名
func CardClasses(s Style) string {
	parts := []string{
		"transition-all duration-500 overflow-hidden relative",
		string(s.Colors.Surface),
		string(s.Colors.Text),
		string(s.Radius),
		string(s.BorderWidth),
		string(s.Colors.Border),
		string(s.Shadow),
		s.Font.Class(),
	}
	if s.Texture != "" {
		parts = append(parts, string(s.Texture))
	}
	return strings.Join(parts, " ")
}
