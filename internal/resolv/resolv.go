// Package resolv tracks which name-resolution mechanisms are active for
// the current run. The flag set mirrors the single-letter vocabulary of
// the -N command-line option.
package resolv

// Flags records which kinds of addresses and port numbers get resolved
// to names.
type Flags struct {
	// DNSPacket resolves addresses from DNS packets found in the capture.
	DNSPacket bool
	// MAC resolves MAC addresses to vendor names.
	MAC bool
	// Network resolves network (IP) addresses to host names.
	Network bool
	// ExternalResolver permits external resolvers (e.g. DNS) to be
	// queried for network address resolution.
	ExternalResolver bool
	// TransportPort resolves transport-layer port numbers to service names.
	TransportPort bool
	// VLAN resolves VLAN IDs to names.
	VLAN bool
}

// Resolver owns the process-wide resolution flags.
type Resolver struct {
	Flags Flags
}

// NewResolver returns a resolver with every mechanism switched off.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Disable switches off every resolution mechanism.
func (r *Resolver) Disable() {
	r.Flags = Flags{}
}

// Apply interprets s as a string of single-letter resolution flags and
// sets the corresponding mechanisms. It returns the first unrecognized
// letter, or zero when the whole string was valid. The flag set is
// updated only when every letter is valid.
func (r *Resolver) Apply(s string) byte {
	scratch := r.Flags
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'd':
			scratch.DNSPacket = true
		case 'm':
			scratch.MAC = true
		case 'n':
			scratch.Network = true
		case 'N':
			scratch.ExternalResolver = true
		case 't':
			scratch.TransportPort = true
		case 'v':
			scratch.VLAN = true
		default:
			return s[i]
		}
	}
	r.Flags = scratch
	return 0
}
