// Package krb loads Kerberos keytab files used to decrypt protected
// traffic during dissection. Support is compiled in only when the krb5
// build tag is set; callers must check Supported before requesting a load.
package krb

import (
	"log/slog"
	"os"
)

// Loader records keytab files for the decryption machinery.
type Loader struct {
	paths []string
}

// NewLoader returns an empty keytab loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the keytab file at path. Loading is fire-and-forget: an
// unreadable file is logged and otherwise ignored, matching the
// command-line contract where -K never fails once support is present.
func (l *Loader) Load(path string) {
	if _, err := os.Stat(path); err != nil {
		slog.Warn("Could not read Kerberos keytab file.", "path", path, "error", err)
		return
	}
	l.paths = append(l.paths, path)
	slog.Debug("Loaded Kerberos keytab file.", "path", path)
}

// Paths returns the keytab files loaded so far, in load order.
func (l *Loader) Paths() []string {
	return l.paths
}
