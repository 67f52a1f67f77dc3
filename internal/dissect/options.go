package dissect

import "github.com/wtdcode/dissectctl/internal/timestamp"

// Option identifies one recognized dissection option. Single-character
// options use their character value as the code; long-form options sit
// above the byte range.
type Option int

const (
	// OptDecodeAs adds one decode-as rule (-d).
	OptDecodeAs Option = 'd'
	// OptKeytab loads a Kerberos keytab file (-K).
	OptKeytab Option = 'K'
	// OptDisableResolution switches off all name resolution (-n).
	OptDisableResolution Option = 'n'
	// OptResolutionFlags selects which address/port types to resolve (-N).
	OptResolutionFlags Option = 'N'
	// OptTimestampFormat sets the timestamp type and precision (-t).
	OptTimestampFormat Option = 't'
	// OptSecondsType sets the seconds display style (-u).
	OptSecondsType Option = 'u'
)

const (
	OptDisableProtocol Option = iota + 0x100
	OptEnableProtocol
	OptEnableHeuristic
	OptDisableHeuristic
)

// Options is the accumulated dissection configuration for one process
// run. The four name lists preserve command-line order; duplicates are
// kept and resolved, if at all, by the registry during application.
type Options struct {
	TimeFormat    timestamp.Format
	TimePrecision timestamp.Precision

	DisableProtocols  []string
	EnableProtocols   []string
	EnableHeuristics  []string
	DisableHeuristics []string
}

// NewOptions returns an Options record reset to all defaults.
func NewOptions() *Options {
	o := &Options{}
	o.Init()
	return o
}

// Init resets the record to its defaults, discarding anything accumulated
// so far. It must run before any option processing.
func (o *Options) Init() {
	*o = Options{}
}
