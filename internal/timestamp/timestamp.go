// Package timestamp holds the process-wide packet timestamp display
// settings: the display format, the fractional-second precision, and the
// seconds rendering style.
package timestamp

// Format selects how packet timestamps are displayed.
type Format int

const (
	FormatNotSet Format = iota
	FormatRelative
	FormatAbsolute
	FormatAbsoluteYMD
	FormatAbsoluteYDOY
	FormatDelta
	FormatDeltaDisplayed
	FormatEpoch
	FormatUTC
	FormatUTCYMD
	FormatUTCYDOY
)

func (f Format) String() string {
	switch f {
	case FormatNotSet:
		return "not set"
	case FormatRelative:
		return "relative"
	case FormatAbsolute:
		return "absolute"
	case FormatAbsoluteYMD:
		return "absolute with YYYY-MM-DD date"
	case FormatAbsoluteYDOY:
		return "absolute with YYYY/DOY date"
	case FormatDelta:
		return "delta"
	case FormatDeltaDisplayed:
		return "delta displayed"
	case FormatEpoch:
		return "epoch"
	case FormatUTC:
		return "absolute UTC"
	case FormatUTCYMD:
		return "absolute UTC with YYYY-MM-DD date"
	case FormatUTCYDOY:
		return "absolute UTC with YYYY/DOY date"
	}
	return "unknown"
}

// Precision selects how many fractional-second digits are displayed.
type Precision int

const (
	PrecisionNotSet Precision = iota
	// PrecisionAuto tracks the precision of the capture file.
	PrecisionAuto
	PrecisionSec
	PrecisionDsec
	PrecisionCsec
	PrecisionMsec
	PrecisionUsec
	PrecisionNsec
)

func (p Precision) String() string {
	switch p {
	case PrecisionNotSet:
		return "not set"
	case PrecisionAuto:
		return "auto"
	case PrecisionSec:
		return "seconds"
	case PrecisionDsec:
		return "deciseconds"
	case PrecisionCsec:
		return "centiseconds"
	case PrecisionMsec:
		return "milliseconds"
	case PrecisionUsec:
		return "microseconds"
	case PrecisionNsec:
		return "nanoseconds"
	}
	return "unknown"
}

// SecondsType selects how the seconds portion of a timestamp is rendered.
type SecondsType int

const (
	SecondsDefault SecondsType = iota
	SecondsHourMinSec
)

func (s SecondsType) String() string {
	if s == SecondsHourMinSec {
		return "hours, minutes and seconds"
	}
	return "seconds"
}

// Display is the mutable settings store consulted when rendering
// timestamps. One instance exists per process run.
type Display struct {
	format    Format
	precision Precision
	seconds   SecondsType
}

// NewDisplay returns a Display with all settings at their defaults.
func NewDisplay() *Display {
	return &Display{}
}

func (d *Display) SetFormat(f Format)           { d.format = f }
func (d *Display) SetPrecision(p Precision)     { d.precision = p }
func (d *Display) SetSecondsType(s SecondsType) { d.seconds = s }

func (d *Display) Format() Format           { return d.format }
func (d *Display) Precision() Precision     { return d.precision }
func (d *Display) SecondsType() SecondsType { return d.seconds }
