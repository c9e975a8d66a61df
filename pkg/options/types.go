package options

// Mode is the tokenizer strictness used by the detector.
type Mode string

const (
	// ModeMild skips whitespace and empty symbols
	ModeMild Mode = "mild"

	// ModeStrict uses every symbol as a token
	ModeStrict Mode = "strict"

	// ModeWeak also skips comments
	ModeWeak Mode = "weak"
)

// IsKnown reports whether m is one of the built-in modes.
func (m Mode) IsKnown() bool {
	switch m {
	case ModeMild, ModeStrict, ModeWeak:
		return true
	}
	return false
}

// Reporter and listener names that derivation adds or removes.
const (
	ReporterConsole   = "console"
	ReporterSilent    = "silent"
	ReporterThreshold = "threshold"
	ReporterTime      = "time"

	ListenerClones = "clones"
	ListenerBlamer = "blamer"
)

// DefaultConfigName is the persisted config file looked up in the working
// directory when --config is not given.
const DefaultConfigName = ".clonescan.json"

// Options is the resolved run configuration handed to the detector.
type Options struct {
	// ConfigFile is the absolute path of the loaded config file, or "" when none was found
	ConfigFile string `json:"config" yaml:"config"`

	// ExecutionID identifies this run
	ExecutionID string `json:"executionId" yaml:"executionId"`

	// Path is the absolute root directory to analyze
	Path string `json:"path" yaml:"path"`

	MinLines  int     `json:"minLines" yaml:"minLines"`
	MinTokens int     `json:"minTokens" yaml:"minTokens"`
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// Output is the report directory
	Output string `json:"output" yaml:"output"`

	// XSLHref is the stylesheet referenced by the xml reporter
	XSLHref string `json:"xslHref,omitempty" yaml:"xslHref,omitempty"`

	Reporters []string `json:"reporters" yaml:"reporters"`
	Listeners []string `json:"listeners" yaml:"listeners"`
	Ignore    []string `json:"ignore" yaml:"ignore"`

	// Format lists the enabled format ids
	Format []string `json:"format" yaml:"format"`

	// FormatsExts replaces the default extensions of a format
	FormatsExts map[string][]string `json:"formatsExts" yaml:"formatsExts"`

	Mode Mode `json:"mode" yaml:"mode"`

	Debug     bool `json:"debug" yaml:"debug"`
	Silent    bool `json:"silent" yaml:"silent"`
	Blame     bool `json:"blame" yaml:"blame"`
	Cache     bool `json:"cache" yaml:"cache"`
	Absolute  bool `json:"absolute" yaml:"absolute"`
	Gitignore bool `json:"gitignore" yaml:"gitignore"`
	List      bool `json:"list" yaml:"list"`
}

// Partial is a sparse configuration: a nil field was not supplied by its
// source and must not shadow a lower precedence value.
type Partial struct {
	ExecutionID *string              `mapstructure:"executionId" json:"executionId,omitempty"`
	Path        *string              `mapstructure:"path" json:"path,omitempty"`
	MinLines    *int                 `mapstructure:"minLines" json:"minLines,omitempty"`
	MinTokens   *int                 `mapstructure:"minTokens" json:"minTokens,omitempty"`
	Threshold   *float64             `mapstructure:"threshold" json:"threshold,omitempty"`
	Output      *string              `mapstructure:"output" json:"output,omitempty"`
	XSLHref     *string              `mapstructure:"xslHref" json:"xslHref,omitempty"`
	Reporters   *[]string            `mapstructure:"reporters" json:"reporters,omitempty"`
	Listeners   *[]string            `mapstructure:"listeners" json:"listeners,omitempty"`
	Ignore      *[]string            `mapstructure:"ignore" json:"ignore,omitempty"`
	Format      *[]string            `mapstructure:"format" json:"format,omitempty"`
	FormatsExts *map[string][]string `mapstructure:"formatsExts" json:"formatsExts,omitempty"`
	Mode        *Mode                `mapstructure:"mode" json:"mode,omitempty"`
	Debug       *bool                `mapstructure:"debug" json:"debug,omitempty"`
	Silent      *bool                `mapstructure:"silent" json:"silent,omitempty"`
	Blame       *bool                `mapstructure:"blame" json:"blame,omitempty"`
	Cache       *bool                `mapstructure:"cache" json:"cache,omitempty"`
	Absolute    *bool                `mapstructure:"absolute" json:"absolute,omitempty"`
	Gitignore   *bool                `mapstructure:"gitignore" json:"gitignore,omitempty"`
	List        *bool                `mapstructure:"list" json:"list,omitempty"`
}

// Args is the flat bag of command-line values. A nil slot means the flag was
// not given. List-valued flags carry their raw comma separated text.
type Args struct {
	Config      *string
	MinLines    *int
	Debug       *bool
	ExecutionID *string
	Silent      *bool
	Blame       *bool
	Cache       *bool
	Output      *string
	XSLHref     *string
	Format      *string
	FormatsExts *string
	List        *bool
	Threshold   *float64
	Mode        *string
	Absolute    *bool
	Gitignore   *bool
	Reporters   *string
	Ignore      *string

	// Path is the first positional argument
	Path *string
}
