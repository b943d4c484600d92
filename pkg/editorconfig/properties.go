package editorconfig

import (
	"iter"
	"strings"
)

// Property is one resolved name/value pair.
type Property struct {
	Name  string
	Value string
}

// Properties is an insertion-ordered set of properties, unique by name.
// Names are stored lower-cased. Overwriting a name changes its value but
// keeps its original position.
type Properties struct {
	entries []Property
	index   map[string]int
}

// NewProperties returns an empty set.
func NewProperties() *Properties {
	return &Properties{index: make(map[string]int)}
}

// Set inserts or overwrites name. The values of end_of_line and
// indent_style are lower-cased.
func (p *Properties) Set(name, value string) {
	name = strings.ToLower(name)
	if name == "end_of_line" || name == "indent_style" {
		value = strings.ToLower(value)
	}

	if idx, ok := p.index[name]; ok {
		p.entries[idx].Value = value
		return
	}

	p.index[name] = len(p.entries)
	p.entries = append(p.entries, Property{Name: name, Value: value})
}

// Get returns the value of name, looked up case-insensitively.
func (p *Properties) Get(name string) (string, bool) {
	idx, ok := p.index[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return p.entries[idx].Value, true
}

// Has reports whether name is present.
func (p *Properties) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the properties in insertion order.
func (p *Properties) Entries() []Property {
	out := make([]Property, len(p.entries))
	copy(out, p.entries)
	return out
}

// All iterates the properties in insertion order.
func (p *Properties) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, entry := range p.entries {
			if !yield(entry.Name, entry.Value) {
				return
			}
		}
	}
}

// String renders the set as name=value lines.
func (p *Properties) String() string {
	var sb strings.Builder
	for _, entry := range p.entries {
		sb.WriteString(entry.Name)
		sb.WriteByte('=')
		sb.WriteString(entry.Value)
		sb.WriteByte('\n')
	}
	return sb.String()
}
