// Package style 维护画家风格目录：每个风格是一组颜色、字体与形状 token，
// 由渲染层通过 Resolver 解析成具体的视觉值。
package style

import (
	"errors"
	"fmt"
)

// Token 不透明的视觉 token（例如样式类名），含义由 Resolver 决定
type Token string

// Font 字体族选择器，只允许三个取值
type Font string

const (
	FontSans  Font = "sans"
	FontSerif Font = "serif"
	FontMono  Font = "mono"
)

// Valid 判断字体是否属于允许的三个取值
func (f Font) Valid() bool {
	switch f {
	case FontSans, FontSerif, FontMono:
		return true
	}
	return false
}

// Class 返回字体对应的样式类名
func (f Font) Class() string {
	return "font-" + string(f)
}

// Stack 返回 CSS font-family 值
func (f Font) Stack() string {
	switch f {
	case FontSerif:
		return `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`
	case FontMono:
		return `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace`
	default:
		return `ui-sans-serif, system-ui, -apple-system, "Segoe UI", Roboto, sans-serif`
	}
}

// Colors 六个语义颜色角色
type Colors struct {
	Background Token `json:"bg"`
	Surface    Token `json:"surface"`
	Text       Token `json:"text"`
	Accent     Token `json:"accent"`
	Secondary  Token `json:"secondary"`
	Border     Token `json:"border"`
}

// Role 颜色角色名
type Role string

const (
	RoleBackground Role = "bg"
	RoleSurface    Role = "surface"
	RoleText       Role = "text"
	RoleAccent     Role = "accent"
	RoleSecondary  Role = "secondary"
	RoleBorder     Role = "border"
)

// Roles 按固定顺序返回全部颜色角色
func Roles() []Role {
	return []Role{RoleBackground, RoleSurface, RoleText, RoleAccent, RoleSecondary, RoleBorder}
}

// Get 按角色取 token
func (c Colors) Get(r Role) Token {
	switch r {
	case RoleBackground:
		return c.Background
	case RoleSurface:
		return c.Surface
	case RoleText:
		return c.Text
	case RoleAccent:
		return c.Accent
	case RoleSecondary:
		return c.Secondary
	case RoleBorder:
		return c.Border
	}
	return ""
}

// Style 画家风格，进程启动时创建，之后只读
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Painter     string `json:"painter"`
	Colors      Colors `json:"colors"`
	Font        Font   `json:"font"`
	Radius      Token  `json:"borderRadius"`
	BorderWidth Token  `json:"borderWidth"`
	Shadow      Token  `json:"shadow"`
	Texture     Token  `json:"texture,omitempty"`
	// Dark 表示卡片表面为深色，图表文字与网格需使用浅色
	Dark bool `json:"dark"`
}

// ErrInvalidStyle 风格定义不完整
var ErrInvalidStyle = errors.New("invalid style")

// Validate 校验所有颜色角色都已定义且字体合法
func Validate(s Style) error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidStyle)
	}
	for _, r := range Roles() {
		if s.Colors.Get(r) == "" {
			return fmt.Errorf("%w: %s missing color role %s", ErrInvalidStyle, s.ID, r)
		}
	}
	if !s.Font.Valid() {
		return fmt.Errorf("%w: %s has font %q", ErrInvalidStyle, s.ID, s.Font)
	}
	return nil
}
