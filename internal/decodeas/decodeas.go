// Package decodeas accumulates user decode-as overrides of the form
// "table==selector,dissector", e.g. "tcp.port==8888,http".
package decodeas

import (
	"strings"

	"github.com/wtdcode/dissectctl/internal/cmderr"
)

// Rule forces traffic matched by a table selector to a specific dissector.
type Rule struct {
	Table    string
	Selector string
	// Dissector is the short name of the dissector to apply.
	Dissector string
}

// Book holds decode-as rules in the order they were given. Duplicates
// are preserved; the dissection engine resolves conflicts when the rules
// are installed.
type Book struct {
	errs  *cmderr.Sink
	rules []Rule
}

// NewBook creates an empty rule book reporting parse failures to errs.
func NewBook(errs *cmderr.Sink) *Book {
	if errs == nil {
		panic("decodeas: nil diagnostic sink")
	}
	return &Book{errs: errs}
}

// Add parses one decode-as rule and appends it. It returns false on a
// malformed rule, after emitting a diagnostic.
func (b *Book) Add(rule string) bool {
	match, dissector, ok := strings.Cut(rule, ",")
	if !ok || dissector == "" {
		b.errs.Error("Invalid decode-as rule \"%s\"; it must have the form <layer type>==<selector>,<decode-as protocol>", rule)
		return false
	}
	table, selector, ok := strings.Cut(match, "==")
	if !ok || table == "" || selector == "" {
		b.errs.Error("Invalid decode-as rule \"%s\"; it must have the form <layer type>==<selector>,<decode-as protocol>", rule)
		return false
	}
	b.rules = append(b.rules, Rule{Table: table, Selector: selector, Dissector: dissector})
	return true
}

// Rules returns the accumulated rules in insertion order.
func (b *Book) Rules() []Rule {
	return b.rules
}
