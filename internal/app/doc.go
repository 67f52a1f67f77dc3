// Package app wires the parsed configuration to the protocol registry:
// it loads the protocol manifests, runs the one-shot application of the
// command-line enable/disable lists, pushes the timestamp display
// settings, and prints the effective configuration.
package app
