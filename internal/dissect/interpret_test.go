package dissect_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wtdcode/dissectctl/internal/cmderr"
	"github.com/wtdcode/dissectctl/internal/dissect"
	"github.com/wtdcode/dissectctl/internal/resolv"
	"github.com/wtdcode/dissectctl/internal/timestamp"
)

// harness bundles an interpreter with observable collaborators.
type harness struct {
	opts     *dissect.Options
	interp   *dissect.Interpreter
	diag     *bytes.Buffer
	resolver *resolv.Resolver
	display  *timestamp.Display

	decodeCalls []string
	keytabCalls []string
}

type harnessOpt func(*harnessConfig)

type harnessConfig struct {
	decodeResult    bool
	keytabSupported bool
}

func withDecodeResult(ok bool) harnessOpt {
	return func(c *harnessConfig) { c.decodeResult = ok }
}

func withKeytabSupport() harnessOpt {
	return func(c *harnessConfig) { c.keytabSupported = true }
}

func newHarness(t *testing.T, hopts ...harnessOpt) *harness {
	t.Helper()

	cfg := harnessConfig{decodeResult: true}
	for _, o := range hopts {
		o(&cfg)
	}

	h := &harness{
		opts:     dissect.NewOptions(),
		diag:     &bytes.Buffer{},
		resolver: resolv.NewResolver(),
		display:  timestamp.NewDisplay(),
	}

	var loadKeytab func(string)
	if cfg.keytabSupported {
		loadKeytab = func(path string) { h.keytabCalls = append(h.keytabCalls, path) }
	}

	h.interp = dissect.NewInterpreter(h.opts, dissect.Collaborators{
		Errs: cmderr.NewSink("dissectctl", h.diag),
		DecodeAs: func(rule string) bool {
			h.decodeCalls = append(h.decodeCalls, rule)
			return cfg.decodeResult
		},
		LoadKeytab:      loadKeytab,
		KeytabSupported: cfg.keytabSupported,
		Resolver:        h.resolver,
		Display:         h.display,
	})
	return h
}

func TestHandleOption_TimestampTypeVocabulary(t *testing.T) {
	t.Parallel()

	cases := map[string]timestamp.Format{
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

	for token, want := range cases {
		t.Run(token, func(t *testing.T) {
			h := newHarness(t)
			require.True(t, h.interp.HandleOption(dissect.OptTimestampFormat, token))
			require.Equal(t, want, h.opts.TimeFormat)
			// No suffix means the precision must stay untouched.
			require.Equal(t, timestamp.PrecisionNotSet, h.opts.TimePrecision)
		})
	}
}

func TestHandleOption_TimestampPrecisionSuffixes(t *testing.T) {
	t.Parallel()

	cases := map[string]timestamp.Precision{
		"r.":  timestamp.PrecisionAuto,
		"r.0": timestamp.PrecisionSec,
		"r.1": timestamp.PrecisionDsec,
		"r.2": timestamp.PrecisionCsec,
		"r.3": timestamp.PrecisionMsec,
		"r.6": timestamp.PrecisionUsec,
		"r.9": timestamp.PrecisionNsec,
	}

	for arg, want := range cases {
		t.Run(arg, func(t *testing.T) {
			h := newHarness(t)
			require.True(t, h.interp.HandleOption(dissect.OptTimestampFormat, arg))
			require.Equal(t, timestamp.FormatRelative, h.opts.TimeFormat)
			require.Equal(t, want, h.opts.TimePrecision)
		})
	}
}

func TestHandleOption_TimestampPrecisionOnly(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.True(t, h.interp.HandleOption(dissect.OptTimestampFormat, "ad"))

	// ".2" addresses only the precision; the previously set type survives.
	require.True(t, h.interp.HandleOption(dissect.OptTimestampFormat, ".2"))
	require.Equal(t, timestamp.FormatAbsoluteYMD, h.opts.TimeFormat)
	require.Equal(t, timestamp.PrecisionCsec, h.opts.TimePrecision)
}

func TestHandleOption_TimestampTypeDoesNotResetPrecision(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.True(t, h.interp.HandleOption(dissect.OptTimestampFormat, "r.3"))
	require.True(t, h.interp.HandleOption(dissect.OptTimestampFormat, "a"))

	require.Equal(t, timestamp.FormatAbsolute, h.opts.TimeFormat)
	require.Equal(t, timestamp.PrecisionMsec, h.opts.TimePrecision)
}

func TestHandleOption_TimestampBadPrecision(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"a.5", "a.33", "a.3x", ".x"} {
		t.Run(arg, func(t *testing.T) {
			h := newHarness(t)
			require.False(t, h.interp.HandleOption(dissect.OptTimestampFormat, arg))

			// The whole argument is rejected; nothing is mutated.
			require.Equal(t, timestamp.FormatNotSet, h.opts.TimeFormat)
			require.Equal(t, timestamp.PrecisionNotSet, h.opts.TimePrecision)
			require.Contains(t, h.diag.String(), `"`+arg+`"`)
			require.Contains(t, h.diag.String(), "N must be 0, 1, 2, 3, 6, 9 or absent")
		})
	}
}

func TestHandleOption_TimestampBadType(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.False(t, h.interp.HandleOption(dissect.OptTimestampFormat, "xyz"))

	require.Equal(t, timestamp.FormatNotSet, h.opts.TimeFormat)
	require.Contains(t, h.diag.String(), `"xyz"`)
	require.Contains(t, h.diag.String(), `"adoy"`, "valid tokens should be enumerated")
}

func TestHandleOption_TimestampBadTypeKeepsSuffixInMessage(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.False(t, h.interp.HandleOption(dissect.OptTimestampFormat, "xy.3"))

	// The original, un-split argument must appear verbatim.
	require.Contains(t, h.diag.String(), `"xy.3"`)
	require.Equal(t, timestamp.PrecisionNotSet, h.opts.TimePrecision)
}

func TestHandleOption_TimestampEmptyArgument(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.False(t, h.interp.HandleOption(dissect.OptTimestampFormat, ""))
	require.Contains(t, h.diag.String(), `""`)
}

func TestHandleOption_SecondsType(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.True(t, h.interp.HandleOption(dissect.OptSecondsType, "hms"))
	require.Equal(t, timestamp.SecondsHourMinSec, h.display.SecondsType())

	require.True(t, h.interp.HandleOption(dissect.OptSecondsType, "s"))
	require.Equal(t, timestamp.SecondsDefault, h.display.SecondsType())
}

func TestHandleOption_SecondsTypeInvalid(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.False(t, h.interp.HandleOption(dissect.OptSecondsType, "minutes"))
	require.Contains(t, h.diag.String(), `"minutes"`)
	require.Contains(t, h.diag.String(), `"hms"`)
	require.Equal(t, timestamp.SecondsDefault, h.display.SecondsType())
}

func TestHandleOption_ResolutionFlags(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.True(t, h.interp.HandleOption(dissect.OptResolutionFlags, "dmN"))

	require.True(t, h.resolver.Flags.DNSPacket)
	require.True(t, h.resolver.Flags.MAC)
	require.True(t, h.resolver.Flags.ExternalResolver)
	require.False(t, h.resolver.Flags.Network)
}

func TestHandleOption_ResolutionFlagsInvalidLetter(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.False(t, h.interp.HandleOption(dissect.OptResolutionFlags, "dmX"))

	require.Contains(t, h.diag.String(), "'X'")
	require.Contains(t, h.diag.String(), "MAC address resolution")
	// The resolver commits all-or-nothing: the valid leading letters must
	// not have been applied.
	require.Equal(t, resolv.Flags{}, h.resolver.Flags)
}

func TestHandleOption_DisableResolution(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.True(t, h.interp.HandleOption(dissect.OptResolutionFlags, "dm"))
	require.True(t, h.interp.HandleOption(dissect.OptDisableResolution, ""))
	require.Equal(t, resolv.Flags{}, h.resolver.Flags)
}

func TestHandleOption_DecodeAsPassThrough(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.True(t, h.interp.HandleOption(dissect.OptDecodeAs, "tcp.port==8888,http"))
	require.Equal(t, []string{"tcp.port==8888,http"}, h.decodeCalls)

	failing := newHarness(t, withDecodeResult(false))
	require.False(t, failing.interp.HandleOption(dissect.OptDecodeAs, "nonsense"))
}

func TestHandleOption_KeytabUnsupported(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.False(t, h.interp.HandleOption(dissect.OptKeytab, "krb5.keytab"))
	require.Contains(t, h.diag.String(), "Kerberos keytab file support isn't present")
	require.Empty(t, h.keytabCalls)
}

func TestHandleOption_KeytabSupported(t *testing.T) {
	t.Parallel()

	h := newHarness(t, withKeytabSupport())
	require.True(t, h.interp.HandleOption(dissect.OptKeytab, "krb5.keytab"))
	require.Equal(t, []string{"krb5.keytab"}, h.keytabCalls)
	require.Empty(t, h.diag.String())
}

func TestHandleOption_NameListsPreserveOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.True(t, h.interp.HandleOption(dissect.OptEnableProtocol, "gopher"))
	require.True(t, h.interp.HandleOption(dissect.OptEnableProtocol, "gopher"))
	require.True(t, h.interp.HandleOption(dissect.OptDisableProtocol, "tcp"))
	require.True(t, h.interp.HandleOption(dissect.OptEnableHeuristic, "http_tcp"))
	require.True(t, h.interp.HandleOption(dissect.OptDisableHeuristic, "dns_udp"))

	require.Equal(t, []string{"gopher", "gopher"}, h.opts.EnableProtocols)
	require.Equal(t, []string{"tcp"}, h.opts.DisableProtocols)
	require.Equal(t, []string{"http_tcp"}, h.opts.EnableHeuristics)
	require.Equal(t, []string{"dns_udp"}, h.opts.DisableHeuristics)
}

func TestHandleOption_UnknownCodePanics(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.Panics(t, func() {
		h.interp.HandleOption(dissect.Option('z'), "whatever")
	})
}
