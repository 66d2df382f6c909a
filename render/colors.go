package render

import (
	"github.com/fatih/color"
)

// ColorAttr names a colorable token class in the rendered output.
type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrKeyColor
	AttrValueColor
	TextColor
	DeclColor
)

// Colors maps token classes to color functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

// NewColors returns the default color scheme.
func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor:       color.RGB(128, 168, 196).SprintfFunc(),
			AttrKeyColor:   color.RGB(196, 96, 16).SprintfFunc(),
			AttrValueColor: color.RGB(8, 196, 16).SprintfFunc(),
			TextColor:      color.RGB(128, 216, 236).SprintfFunc(),
			DeclColor:      color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
}

// Color renders v in the color registered for attr.
func (c *Colors) Color(attr ColorAttr, v string) string {
	fn, ok := c.Map[attr]
	if !ok {
		fn = c.Default
	}
	if fn == nil {
		return v
	}
	return fn("%s", v)
}

func colorDefault(format string, args ...any) string {
	return color.WhiteString(format, args...)
}
