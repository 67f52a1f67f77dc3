package proto

import (
	"fmt"
	"log/slog"
	"sort"
)

// Protocol describes one dissectable protocol.
type Protocol struct {
	Name        string
	Description string
	Enabled     bool
}

// Heuristic describes one heuristic sub-dissector, attached to a parent
// protocol and selected by content inspection rather than a fixed binding.
type Heuristic struct {
	Name    string
	Parent  string
	Enabled bool
}

// Registry holds the protocols and heuristic sub-dissectors known to a
// single process instance.
type Registry struct {
	protocols  map[string]*Protocol
	heuristics map[string]*Heuristic
}

// NewRegistry creates and initializes a new empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		protocols:  make(map[string]*Protocol),
		heuristics: make(map[string]*Heuristic),
	}
}

// RegisterProtocol adds a protocol to the registry.
func (r *Registry) RegisterProtocol(p *Protocol) {
	if _, exists := r.protocols[p.Name]; exists {
		panic(fmt.Sprintf("protocol with name '%s' already registered", p.Name))
	}
	slog.Debug("Registering protocol.", "name", p.Name)
	r.protocols[p.Name] = p
}

// RegisterHeuristic adds a heuristic sub-dissector to the registry. Its
// parent protocol must already be registered.
func (r *Registry) RegisterHeuristic(h *Heuristic) {
	if _, exists := r.heuristics[h.Name]; exists {
		panic(fmt.Sprintf("heuristic with name '%s' already registered", h.Name))
	}
	if _, exists := r.protocols[h.Parent]; !exists {
		panic(fmt.Sprintf("heuristic '%s' references unknown parent protocol '%s'", h.Name, h.Parent))
	}
	slog.Debug("Registering heuristic sub-dissector.", "name", h.Name, "parent", h.Parent)
	r.heuristics[h.Name] = h
}

// DisableByName disables the named protocol. Unknown names are tolerated.
func (r *Registry) DisableByName(name string) {
	if p, ok := r.protocols[name]; ok {
		p.Enabled = false
		return
	}
	slog.Debug("Ignoring disable of unknown protocol.", "name", name)
}

// EnableByName enables the named protocol. Unknown names are tolerated.
func (r *Registry) EnableByName(name string) {
	if p, ok := r.protocols[name]; ok {
		p.Enabled = true
		return
	}
	slog.Debug("Ignoring enable of unknown protocol.", "name", name)
}

// EnableHeuristicByName sets the enabled state of the named heuristic
// sub-dissector. It reports whether the name was found.
func (r *Registry) EnableHeuristicByName(name string, enable bool) bool {
	h, ok := r.heuristics[name]
	if !ok {
		return false
	}
	h.Enabled = enable
	return true
}

// Lookup returns the named protocol, if registered.
func (r *Registry) Lookup(name string) (*Protocol, bool) {
	p, ok := r.protocols[name]
	return p, ok
}

// LookupHeuristic returns the named heuristic sub-dissector, if registered.
func (r *Registry) LookupHeuristic(name string) (*Heuristic, bool) {
	h, ok := r.heuristics[name]
	return h, ok
}

// Protocols returns every registered protocol, sorted by name.
func (r *Registry) Protocols() []*Protocol {
	out := make([]*Protocol, 0, len(r.protocols))
	for _, p := range r.protocols {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Heuristics returns every registered heuristic sub-dissector, sorted by name.
func (r *Registry) Heuristics() []*Heuristic {
	out := make([]*Heuristic, 0, len(r.heuristics))
	for _, h := range r.heuristics {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
