package style

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Resolver 把 token 解析成目标样式系统中的具体值
type Resolver interface {
	Resolve(t Token) string
}

// ClassResolver 原样返回 token，适用于 token 本身就是样式类名的场景
type ClassResolver struct{}

// Resolve 实现 Resolver
func (ClassResolver) Resolve(t Token) string {
	return string(t)
}

// HexResolver 把 Tailwind 颜色类名（bg-blue-50、text-white、border-transparent）解析为 #rrggbb
type HexResolver struct{}

// Resolve 实现 Resolver，无法识别的 token 返回空串
func (HexResolver) Resolve(t Token) string {
	hex, _ := hexOf(t)
	return hex
}

var shades = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// tailwindPalette 每个色系按 shades 顺序排列
var tailwindPalette = map[string][]string{
	"slate":   {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"},
	"gray":    {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"},
	"stone":   {"#fafaf9", "#f5f5f4", "#e7e5e4", "#d6d3d1", "#a8a29e", "#78716c", "#57534e", "#44403c", "#292524", "#1c1917", "#0c0a09"},
	"red":     {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"},
	"orange":  {"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"},
	"amber":   {"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"},
	"yellow":  {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"},
	"green":   {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"},
	"emerald": {"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"},
	"cyan":    {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"},
	"blue":    {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"},
	"indigo":  {"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"},
	"purple":  {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"},
	"pink":    {"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"},
	"rose":    {"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"},
}

// hexOf 第二个返回值表示解析出的是实际颜色（transparent/none 为 false）
func hexOf(t Token) (string, bool) {
	name := string(t)
	// 复合 token 只取第一个类名
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	for _, prefix := range []string{"bg-", "text-", "border-"} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}
	// 去掉透明度后缀，例如 blue-200/50
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name = name[:i]
	}

	switch name {
	case "white":
		return "#ffffff", true
	case "black":
		return "#000000", true
	case "transparent", "none":
		return "transparent", false
	}

	i := strings.LastIndexByte(name, '-')
	if i < 0 {
		return "", false
	}
	family, shade := name[:i], name[i+1:]
	n, err := strconv.Atoi(shade)
	if err != nil {
		return "", false
	}
	hexes, ok := tailwindPalette[family]
	if !ok {
		return "", false
	}
	for idx, s := range shades {
		if s == n {
			return hexes[idx], true
		}
	}
	return "", false
}

// Lightness 返回 token 颜色在 CIE-L*a*b* 空间的亮度（0~1），无法解析时第二个返回值为 false
func Lightness(t Token) (float64, bool) {
	hex, ok := hexOf(t)
	if !ok {
		return 0, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, false
	}
	l, _, _ := c.Lab()
	return l, true
}

// Mix 在两个 token 的颜色之间按 t（0~1）做 Lab 插值，返回 #rrggbb
func Mix(a, b Token, t float64) string {
	ha, okA := hexOf(a)
	hb, okB := hexOf(b)
	if !okA || !okB {
		return ""
	}
	ca, errA := colorful.Hex(ha)
	cb, errB := colorful.Hex(hb)
	if errA != nil || errB != nil {
		return ""
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
