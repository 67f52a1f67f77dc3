// Package proto is the protocol registry consulted during dissection.
//
// The registry stores every known protocol and heuristic sub-dissector
// keyed by its short name, together with its current enabled state. It is
// populated once at startup from HCL manifests and then adjusted by the
// command-line enable/disable lists before dissection begins.
//
// Plain protocols and heuristic sub-dissectors deliberately carry two
// different enable contracts: enabling or disabling a protocol by name
// tolerates unknown names silently, while the heuristic operation reports
// whether the name was found so the caller can surface a per-name error.
package proto
