//go:build krb5

package krb

// Supported reports whether Kerberos keytab support is compiled in.
const Supported = true
