package emsh

// Default tunables, matching the reference implementation.
const (
	DefaultHistMax = 10
	DefaultLineMax = 77
	DefaultArgMax  = 10
	DefaultPrompt  = "> "
	DefaultNewline = "\n"
)

// Config carries the construction-time tunables of §6.4. Use NewConfig
// for defaults and the chained With* setters to override individual
// fields, following the same pattern as a serial port's dial options.
type Config struct {
	HistMax      int
	LineMax      int
	ArgMax       int
	Prompt       string
	Newline      string
	EnableGetopt bool

	// BellOnOverflow rings the terminal bell when an insert is dropped
	// because the line is already at LineMax. The source silently drops
	// the character instead (§9's open question); default false
	// preserves that behavior.
	BellOnOverflow bool
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{
		HistMax:      DefaultHistMax,
		LineMax:      DefaultLineMax,
		ArgMax:       DefaultArgMax,
		Prompt:       DefaultPrompt,
		Newline:      DefaultNewline,
		EnableGetopt: true,
	}
}

func (c *Config) WithHistMax(n int) *Config { c.HistMax = n; return c }
func (c *Config) WithLineMax(n int) *Config { c.LineMax = n; return c }
func (c *Config) WithArgMax(n int) *Config  { c.ArgMax = n; return c }
func (c *Config) WithPrompt(s string) *Config { c.Prompt = s; return c }
func (c *Config) WithNewline(s string) *Config { c.Newline = s; return c }
func (c *Config) WithGetopt(enabled bool) *Config {
	c.EnableGetopt = enabled
	return c
}

func (c *Config) WithBellOnOverflow(enabled bool) *Config {
	c.BellOnOverflow = enabled
	return c
}
