package mdcat

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	resetPerLine bool
	bullet       string
}

// WithResetPerLine resets the render context before every line. By default
// open formats and code mode carry over from one line to the next until the
// end of the input.
func WithResetPerLine(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.resetPerLine = enabled
	}
}

// WithBullet sets the glyph substituted for list markers. An empty glyph
// selects the default.
func WithBullet(glyph string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.bullet = glyph
	}
}

func resolveConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
