package dissect

import (
	"fmt"
	"strings"

	"github.com/wtdcode/dissectctl/internal/cmderr"
	"github.com/wtdcode/dissectctl/internal/resolv"
	"github.com/wtdcode/dissectctl/internal/timestamp"
)

// Collaborators groups the external capabilities the interpreter drives.
type Collaborators struct {
	// Errs receives every validation diagnostic before HandleOption
	// returns false.
	Errs *cmderr.Sink
	// DecodeAs parses and records one decode-as rule, reporting its own
	// failures.
	DecodeAs func(rule string) bool
	// LoadKeytab loads one Kerberos keytab file. Only consulted when
	// KeytabSupported is true; it may be nil otherwise.
	LoadKeytab      func(path string)
	KeytabSupported bool
	// Resolver owns the name-resolution flags driven by -n and -N.
	Resolver *resolv.Resolver
	// Display receives direct display-setting side effects (-u).
	Display *timestamp.Display
}

// Interpreter validates option values and mutates the shared Options
// record. It is stateless per call; one instance serves the whole
// option-parsing phase.
type Interpreter struct {
	opts *Options
	c    Collaborators
}

// NewInterpreter wires an interpreter to its configuration record and
// collaborators. All collaborators are required, except that LoadKeytab
// may be nil when keytab support is absent.
func NewInterpreter(opts *Options, c Collaborators) *Interpreter {
	if opts == nil {
		panic("dissect: nil options record")
	}
	if c.Errs == nil {
		panic("dissect: nil diagnostic sink")
	}
	if c.DecodeAs == nil {
		panic("dissect: nil decode-as parser")
	}
	if c.Resolver == nil {
		panic("dissect: nil resolver")
	}
	if c.Display == nil {
		panic("dissect: nil timestamp display")
	}
	if c.KeytabSupported && c.LoadKeytab == nil {
		panic("dissect: keytab support claimed but no loader wired")
	}
	return &Interpreter{opts: opts, c: c}
}

// timeFormats is the closed vocabulary of -t type tokens.
var timeFormats = map[string]timestamp.Format{
	"r":    timestamp.FormatRelative,
	"a":    timestamp.FormatAbsolute,
	"ad":   timestamp.FormatAbsoluteYMD,
	"adoy": timestamp.FormatAbsoluteYDOY,
	"d":    timestamp.FormatDelta,
	"dd":   timestamp.FormatDeltaDisplayed,
	"e":    timestamp.FormatEpoch,
	"u":    timestamp.FormatUTC,
	"ud":   timestamp.FormatUTCYMD,
	"udoy": timestamp.FormatUTCYDOY,
}

// HandleOption processes one (option code, argument) pair. It returns
// false on a validation failure, after emitting the diagnostic to the
// sink. Option codes outside the declared set are a caller bug and panic.
func (in *Interpreter) HandleOption(opt Option, arg string) bool {
	switch opt {
	case OptDecodeAs:
		if !in.c.DecodeAs(arg) {
			return false
		}
	case OptKeytab:
		if !in.c.KeytabSupported {
			in.c.Errs.Error("-K specified, but Kerberos keytab file support isn't present")
			return false
		}
		in.c.LoadKeytab(arg)
	case OptDisableResolution:
		in.c.Resolver.Disable()
	case OptResolutionFlags:
		if bad := in.c.Resolver.Apply(arg); bad != 0 {
			in.c.Errs.Error("-N specifies unknown resolving option '%c'; valid options are:", bad)
			in.c.Errs.Continuation("\t'd' to enable address resolution from captured DNS packets\n" +
				"\t'm' to enable MAC address resolution\n" +
				"\t'n' to enable network address resolution\n" +
				"\t'N' to enable using external resolvers (e.g., DNS)\n" +
				"\t    for network address resolution\n" +
				"\t't' to enable transport-layer port number resolution\n" +
				"\t'v' to enable VLAN IDs to names resolution")
			return false
		}
	case OptTimestampFormat:
		return in.handleTimestampFormat(arg)
	case OptSecondsType:
		switch arg {
		case "s":
			in.c.Display.SetSecondsType(timestamp.SecondsDefault)
		case "hms":
			in.c.Display.SetSecondsType(timestamp.SecondsHourMinSec)
		default:
			in.c.Errs.Error("Invalid seconds type \"%s\"; it must be one of:", arg)
			in.c.Errs.Continuation("\t\"s\"   for seconds\n" +
				"\t\"hms\" for hours, minutes and seconds")
			return false
		}
	case OptDisableProtocol:
		in.opts.DisableProtocols = append(in.opts.DisableProtocols, arg)
	case OptEnableProtocol:
		in.opts.EnableProtocols = append(in.opts.EnableProtocols, arg)
	case OptEnableHeuristic:
		in.opts.EnableHeuristics = append(in.opts.EnableHeuristics, arg)
	case OptDisableHeuristic:
		in.opts.DisableHeuristics = append(in.opts.DisableHeuristics, arg)
	default:
		// The caller is responsible for forwarding only the codes this
		// unit declares it handles.
		panic(fmt.Sprintf("dissect: unhandled option code %d", opt))
	}
	return true
}

// handleTimestampFormat parses the compound -t argument: an optional type
// token, then an optional "." precision suffix. Either half may stand
// alone; a bad suffix invalidates the whole argument before the type is
// even considered.
func (in *Interpreter) handleTimestampFormat(arg string) bool {
	typePart, precPart, hasDot := strings.Cut(arg, ".")

	prec := timestamp.PrecisionNotSet
	if hasDot {
		switch precPart {
		case "":
			prec = timestamp.PrecisionAuto
		case "0":
			prec = timestamp.PrecisionSec
		case "1":
			prec = timestamp.PrecisionDsec
		case "2":
			prec = timestamp.PrecisionCsec
		case "3":
			prec = timestamp.PrecisionMsec
		case "6":
			prec = timestamp.PrecisionUsec
		case "9":
			prec = timestamp.PrecisionNsec
		default:
			in.c.Errs.Error("Invalid .N time stamp precision \"%s\"; N must be 0, 1, 2, 3, 6, 9 or absent", arg)
			return false
		}
	}

	if format, ok := timeFormats[typePart]; ok {
		in.opts.TimeFormat = format
	} else if typePart != "" || !hasDot {
		// An empty type with a valid suffix means "precision only";
		// anything else is out of vocabulary.
		in.c.Errs.Error("Invalid time stamp type \"%s\"; it must be one of:", arg)
		in.c.Errs.Continuation("\t\"a\"    for absolute\n" +
			"\t\"ad\"   for absolute with YYYY-MM-DD date\n" +
			"\t\"adoy\" for absolute with YYYY/DOY date\n" +
			"\t\"d\"    for delta\n" +
			"\t\"dd\"   for delta displayed\n" +
			"\t\"e\"    for epoch\n" +
			"\t\"r\"    for relative\n" +
			"\t\"u\"    for absolute UTC\n" +
			"\t\"ud\"   for absolute UTC with YYYY-MM-DD date\n" +
			"\t\"udoy\" for absolute UTC with YYYY/DOY date")
		return false
	}

	if hasDot {
		in.opts.TimePrecision = prec
	}
	return true
}
