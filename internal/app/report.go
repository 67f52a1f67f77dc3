package app

import (
	"fmt"
	"strings"
)

// report prints the effective dissection configuration.
func (a *App) report(cfg *Config) {
	fmt.Fprintf(a.outW, "Timestamps: format=%s, precision=%s, seconds=%s\n",
		cfg.Display.Format(), cfg.Display.Precision(), cfg.Display.SecondsType())

	fmt.Fprintf(a.outW, "Name resolution: %s\n", resolutionSummary(cfg))

	if rules := cfg.DecodeRules.Rules(); len(rules) > 0 {
		fmt.Fprintln(a.outW, "Decode-as rules:")
		for _, r := range rules {
			fmt.Fprintf(a.outW, "  %s==%s -> %s\n", r.Table, r.Selector, r.Dissector)
		}
	}

	if paths := cfg.Keytabs.Paths(); len(paths) > 0 {
		fmt.Fprintf(a.outW, "Keytab files: %s\n", strings.Join(paths, ", "))
	}

	fmt.Fprintln(a.outW, "Protocols:")
	for _, p := range a.registry.Protocols() {
		fmt.Fprintf(a.outW, "  %-12s %-8s %s\n", p.Name, enabledWord(p.Enabled), p.Description)
	}

	if heuristics := a.registry.Heuristics(); len(heuristics) > 0 {
		fmt.Fprintln(a.outW, "Heuristic sub-dissectors:")
		for _, h := range heuristics {
			fmt.Fprintf(a.outW, "  %-12s %-8s (over %s)\n", h.Name, enabledWord(h.Enabled), h.Parent)
		}
	}
}

func resolutionSummary(cfg *Config) string {
	f := cfg.Resolver.Flags
	var on []string
	if f.DNSPacket {
		on = append(on, "captured-dns")
	}
	if f.MAC {
		on = append(on, "mac")
	}
	if f.Network {
		on = append(on, "network")
	}
	if f.ExternalResolver {
		on = append(on, "external")
	}
	if f.TransportPort {
		on = append(on, "transport-port")
	}
	if f.VLAN {
		on = append(on, "vlan")
	}
	if len(on) == 0 {
		return "disabled"
	}
	return strings.Join(on, ", ")
}

func enabledWord(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
