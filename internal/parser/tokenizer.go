package parser

import (
	"sort"
	"strings"
)

// Argument is one prefixed value in command text.
type Argument struct {
	Prefix Prefix
	Value  string
}

// ArgumentMultimap holds the tokenized form of an argument string: the text
// before the first prefix and the prefixed values in input order.
type ArgumentMultimap struct {
	preamble  string
	arguments []Argument
}

// Preamble returns the trimmed text found before the first prefix.
func (m ArgumentMultimap) Preamble() string { return m.preamble }

// Arguments returns every prefixed value in the order it appeared.
func (m ArgumentMultimap) Arguments() []Argument {
	out := make([]Argument, len(m.arguments))
	copy(out, m.arguments)
	return out
}

// AllValues returns the values of prefix p in input order.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	var values []string
	for _, a := range m.arguments {
		if a.Prefix == p {
			values = append(values, a.Value)
		}
	}
	return values
}

// Count returns the number of times prefix p appeared.
func (m ArgumentMultimap) Count(p Prefix) int {
	n := 0
	for _, a := range m.arguments {
		if a.Prefix == p {
			n++
		}
	}
	return n
}

// Has returns true if prefix p appeared at least once.
func (m ArgumentMultimap) Has(p Prefix) bool { return m.Count(p) > 0 }

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefixed values. A prefix is only
// recognised when it follows whitespace or starts the string. Values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	// A leading space lets a prefix at the very start match like any other.
	args = " " + args

	var positions []prefixPosition
	for _, p := range prefixes {
		for from := 0; ; {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if at > 0 && isSpace(args[at-1]) {
				positions = append(positions, prefixPosition{prefix: p, start: at})
			}
			from = at + 1
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	var m ArgumentMultimap
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])
	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := args[pos.start+len(pos.prefix) : valueEnd]
		m.arguments = append(m.arguments, Argument{Prefix: pos.prefix, Value: strings.TrimSpace(value)})
	}
	return m
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
