// Package kmico implements a koanf.Parser that reads and writes mico
// documents.
package kmico

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KimNorgaard/go-mico"
	"github.com/knadh/koanf/maps"
)

// ErrEmptyValue is reported by Marshal for empty strings, nil values and
// empty list items, none of which survive a trip through mico text.
var ErrEmptyValue = errors.New("empty values cannot be written")

// MICO implements a mico parser.
type MICO struct {
	delim  string
	indent int
}

// Parser returns a mico parser that nests keys on ".".
func Parser() *MICO {
	return &MICO{delim: "."}
}

// ParserWithDelim returns a mico parser that nests keys on delim and indents
// list items by indent spaces when marshaling. An empty delim keeps keys
// flat.
func ParserWithDelim(delim string, indent int) *MICO {
	return &MICO{delim: delim, indent: indent}
}

// Unmarshal parses b into a map. String entries become string values and
// list entries become []string. When a key repeats, the last entry wins.
func (p *MICO) Unmarshal(b []byte) (map[string]interface{}, error) {
	var doc mico.Document
	if err := mico.Unmarshal(b, &doc); err != nil {
		return nil, err
	}

	out := make(map[string]interface{}, len(doc))
	for _, e := range doc {
		switch e.Value.Kind() {
		case mico.StringKind:
			out[e.Key] = e.Value.MustText()
		case mico.ListKind:
			out[e.Key] = e.Value.MustItems()
		}
	}
	if p.delim == "" {
		return out, nil
	}
	return maps.Unflatten(out, p.delim), nil
}

// Marshal writes o as a mico document. Nested maps are flattened into
// delimited keys and entries are written in sorted key order. Values that
// would not read back unchanged fail with ErrEmptyValue.
func (p *MICO) Marshal(o map[string]interface{}) ([]byte, error) {
	flat := o
	if p.delim != "" {
		flat, _ = maps.Flatten(o, nil, p.delim)
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := make(mico.Document, 0, len(keys))
	for _, k := range keys {
		v, err := toValue(flat[k])
		if err != nil {
			return nil, fmt.Errorf("kmico: key %q: %w", k, err)
		}
		doc = append(doc, mico.NewEntry(k, v))
	}
	return mico.Marshal(doc, mico.Indent(p.indent))
}

// toValue converts v to a mico value. Empty strings, nil and empty list
// items are rejected because mico text cannot hold them: "key: " reads back
// as a list key named "key:".
func toValue(v interface{}) (mico.Value, error) {
	switch x := v.(type) {
	case string:
		return stringValue(mico.String(x))
	case []string:
		return listValue(x)
	case []interface{}:
		items := make([]string, len(x))
		for i, item := range x {
			switch item.(type) {
			case map[string]interface{}:
				return mico.Value{}, fmt.Errorf("list item %d is a map", i)
			case nil:
				return mico.Value{}, fmt.Errorf("list item %d: %w", i, ErrEmptyValue)
			}
			items[i] = fmt.Sprint(item)
		}
		return listValue(items)
	case map[string]interface{}:
		if len(x) == 0 {
			return mico.Value{}, errors.New("empty maps have no mico form")
		}
		return mico.Value{}, errors.New("nested maps require a delimiter")
	case nil:
		return mico.Value{}, ErrEmptyValue
	default:
		return stringValue(mico.StringOf(x))
	}
}

func stringValue(v mico.Value) (mico.Value, error) {
	if v.MustText() == "" {
		return mico.Value{}, ErrEmptyValue
	}
	return v, nil
}

func listValue(items []string) (mico.Value, error) {
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			return mico.Value{}, fmt.Errorf("list item %d: %w", i, ErrEmptyValue)
		}
	}
	return mico.List(items...), nil
}
