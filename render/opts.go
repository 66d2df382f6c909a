package render

// RenderOption adjusts a single Encode or String call.
type RenderOption func(*renderState)

// Depth sets the starting indentation level. The default of zero
// renders the given entity flush left.
func Depth(n int) RenderOption {
	return func(rs *renderState) { rs.depth = n }
}

// RenderColors enables ANSI color output. Colors wrap the emitted
// tokens only; with the option absent, output is plain bytes.
func RenderColors(c *Colors) RenderOption {
	return func(rs *renderState) { rs.Color = c.Color }
}

// ColorFromOpts extracts the color function from render options, or
// nil when none is set.
func ColorFromOpts(opts ...RenderOption) func(ColorAttr, string) string {
	rs := &renderState{}
	for _, opt := range opts {
		opt(rs)
	}
	return rs.Color
}
