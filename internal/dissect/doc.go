// Package dissect translates command-line dissection options into a
// validated process-wide configuration and applies the protocol
// enable/disable portions of it to the protocol registry.
//
// The two halves run in strict sequence. During flag parsing the caller
// feeds each recognized (option code, argument) pair to an Interpreter,
// which validates the value and mutates a single shared Options record.
// After all flags are consumed, the caller invokes
// Options.ApplyProtocols exactly once to push the accumulated name lists
// into the registry; heuristic names are only validated at that point,
// since the registry is not queryable until fully loaded.
package dissect
