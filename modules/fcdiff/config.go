package fcdiff

// Mode selects how two files are compared.
type Mode int8

const (
	// Auto classifies each file as text or binary (§ Content Loader
	// classifier) and only takes the text branch when both classify as
	// text; any other combination selects binary.
	Auto Mode = iota
	TextASCII
	TextUnicode
	Binary
)

// Flag is a bitmask of optional comparison behaviors.
type Flag uint8

const (
	// IgnoreCase folds case when fingerprinting lines (ASCII A-Z/a-z for
	// TextASCII, Unicode full case folding for TextUnicode).
	IgnoreCase Flag = 1 << iota
	// IgnoreWhitespace strips space and tab bytes from each line before
	// fingerprinting; a line that becomes empty is dropped entirely.
	IgnoreWhitespace
	// ShowLineNumbers is advisory: the engine does not format output, so
	// this flag only travels through to whatever callback cares.
	ShowLineNumbers
	// RawTabs disables the default 4-space tab expansion.
	RawTabs
)

func (f Flag) has(bit Flag) bool { return f&bit != 0 }

const (
	// DefaultResyncLines is the minimum run of consecutive matched lines
	// treated as a stable synchronization anchor.
	DefaultResyncLines = 2
	// DefaultBufferLines is an advisory capacity hint for line buffers.
	DefaultBufferLines = 100
	// MaxFileSize bounds how large a file loadFile will read into memory;
	// the explicit Binary mode does not consult it.
	MaxFileSize = 1 << 31 // 2 GiB
	// SlidingWindowThreshold is the size above which the binary
	// comparator prefers a bounded sliding window over mapping the
	// entire file at once (Design Notes: "bounded sliding window when
	// the file exceeds a sane threshold").
	SlidingWindowThreshold = 1 << 30 // 1 GiB
)

// Config drives a single comparison. Callback is required; everything
// else has a usable zero value except ResyncLines/BufferLines, which
// should be set via NewConfig to pick up their documented defaults.
type Config struct {
	Mode         Mode
	Flags        Flag
	ResyncLines  int
	BufferLines  int
	Callback     Callback
	UserData     any
	// Trace, if non-nil, receives low-volume diagnostic messages (file
	// sizes, chosen branch, classifier verdicts). The engine never logs
	// on its own; this is the seam cmd/gofc uses to wire logrus.
	Trace func(format string, args ...any)
	// Progress, if non-nil, is called periodically during a sliding-
	// window binary comparison (§ Binary Comparator large-file path)
	// with bytes scanned so far and the total. It is the seam cmd/gofc
	// uses to drive an mpb progress bar; the engine has no notion of a
	// terminal.
	Progress func(done, total int64)
}

// NewConfig returns a Config with the documented defaults applied.
func NewConfig(callback Callback) *Config {
	return &Config{
		Mode:        Auto,
		ResyncLines: DefaultResyncLines,
		BufferLines: DefaultBufferLines,
		Callback:    callback,
	}
}

func (c *Config) trace(format string, args ...any) {
	if c.Trace != nil {
		c.Trace(format, args...)
	}
}

func (c *Config) resyncLines() int {
	if c.ResyncLines <= 0 {
		return DefaultResyncLines
	}
	return c.ResyncLines
}
