package mico

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	invalidKind Kind = iota
	// StringKind is a single string value written as "key: value".
	StringKind
	// ListKind is an ordered list of strings written as a key line
	// followed by "- item" lines.
	ListKind
)

func (k Kind) String() string {
	switch k {
	case StringKind:
		return "string"
	case ListKind:
		return "list"
	default:
		return "invalid"
	}
}

// Value is either a string or a list of strings. A Value is immutable once
// constructed: constructors copy their input and accessors return copies.
//
// The zero Value holds neither variant and must not be emitted.
type Value struct {
	kind  Kind
	text  string
	items []string
}

// String returns a string value with surrounding whitespace removed.
func String(s string) Value {
	return Value{kind: StringKind, text: trim(s)}
}

// StringOf returns a string value holding the default formatting of v.
// It is meant for scalars such as booleans, integers and floats. Since rune
// is an alias for int32, runes are formatted as numbers.
func StringOf(v any) Value {
	if s, ok := v.(string); ok {
		return String(s)
	}
	return String(fmt.Sprint(v))
}

// List returns a list value holding a copy of items. Leading whitespace is
// removed from every item; trailing whitespace is kept.
func List(items ...string) Value {
	cp := make([]string, len(items))
	for i, item := range items {
		cp[i] = trimLeft(item)
	}
	return Value{kind: ListKind, items: cp}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds one of the two variants.
func (v Value) IsValid() bool { return v.kind == StringKind || v.kind == ListKind }

// Text returns the string held by v. The boolean is false if v is not a
// string value.
func (v Value) Text() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.text, true
}

// Items returns a copy of the list held by v. The boolean is false if v is
// not a list value.
func (v Value) Items() ([]string, bool) {
	if v.kind != ListKind {
		return nil, false
	}
	return slices.Clone(v.items), true
}

// MustText is like Text but panics if v is not a string value.
func (v Value) MustText() string {
	s, ok := v.Text()
	if !ok {
		panic(fmt.Sprintf("mico: MustText called on %s value", v.kind))
	}
	return s
}

// MustItems is like Items but panics if v is not a list value.
func (v Value) MustItems() []string {
	items, ok := v.Items()
	if !ok {
		panic(fmt.Sprintf("mico: MustItems called on %s value", v.kind))
	}
	return items
}

// Len returns the number of items of a list value and 0 otherwise.
func (v Value) Len() int {
	return len(v.items)
}

// Equal reports whether v and o hold the same variant and content. An empty
// list equals another empty list regardless of how it was built.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == ListKind {
		return slices.Equal(v.items, o.items)
	}
	return v.text == o.text
}

// String implements fmt.Stringer for debugging output.
func (v Value) String() string {
	switch v.kind {
	case StringKind:
		return v.text
	case ListKind:
		return "[" + strings.Join(v.items, ", ") + "]"
	default:
		return "<invalid>"
	}
}

// GoString implements fmt.GoStringer.
func (v Value) GoString() string {
	switch v.kind {
	case StringKind:
		return fmt.Sprintf("mico.String(%q)", v.text)
	case ListKind:
		var b strings.Builder
		b.WriteString("mico.List(")
		for i, item := range v.items {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q", item)
		}
		b.WriteString(")")
		return b.String()
	default:
		return "mico.Value{}"
	}
}

// Entry pairs a key with its value.
type Entry struct {
	Key   string
	Value Value
}

// NewEntry returns an entry with surrounding whitespace removed from key.
func NewEntry(key string, value Value) Entry {
	return Entry{Key: trim(key), Value: value}
}

// Document is an ordered sequence of entries. Keys need not be unique;
// duplicates are kept as separate entries in the order they appear.
type Document []Entry

// Get returns the value of the first entry with the given key.
func (d Document) Get(key string) (Value, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// GetAll returns the values of every entry with the given key, in order.
func (d Document) GetAll(key string) []Value {
	var vals []Value
	for _, e := range d {
		if e.Key == key {
			vals = append(vals, e.Value)
		}
	}
	return vals
}

// Keys returns the keys of all entries in order, duplicates included.
func (d Document) Keys() []string {
	keys := make([]string, len(d))
	for i, e := range d {
		keys[i] = e.Key
	}
	return keys
}

// Equal reports whether d and o hold equal entries in the same order.
func (d Document) Equal(o Document) bool {
	return slices.EqualFunc(d, o, func(a, b Entry) bool {
		return a.Key == b.Key && a.Value.Equal(b.Value)
	})
}

// trim and trimLeft share the whitespace definition used for line trimming.
func trim(s string) string { return strings.TrimFunc(s, unicode.IsSpace) }

func trimLeft(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) }

func trimRight(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }
