// Package parser turns raw command text into commands.
package parser

// Prefix marks the start of a field value in command text, e.g. "n/".
type Prefix string

// Prefixes understood by the parsers.
const (
	PrefixName  Prefix = "n/"
	PrefixPhone Prefix = "p/"
	PrefixEmail Prefix = "e/"
	PrefixTag   Prefix = "t/"
)

func (p Prefix) String() string { return string(p) }
