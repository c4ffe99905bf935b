package carr

// Option configures a Transcoder.
type Option func(*config)

type config struct {
	lineLength int
	bare       bool
	sourceName string
	toolName   string
}

// WithLineLength sets the output line bound. Values below MinLineLength for
// the array name are raised to that minimum.
func WithLineLength(n int) Option {
	return func(cfg *config) {
		cfg.lineLength = n
	}
}

// WithBare enables or disables bare output. Bare output carries no header
// comment and terminates the statement with just the closing quote,
// semicolon and newline.
func WithBare(bare bool) Option {
	return func(cfg *config) {
		cfg.bare = bare
	}
}

// WithHeader sets the input file name and tool name written in the header
// comment. Empty values keep the current setting.
func WithHeader(source, tool string) Option {
	return func(cfg *config) {
		if source != "" {
			cfg.sourceName = source
		}
		if tool != "" {
			cfg.toolName = tool
		}
	}
}
