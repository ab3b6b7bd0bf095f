package mico

import (
	"fmt"
	"io"
	"strings"
)

// formatter writes a Document to an output stream.
type formatter struct {
	w      io.Writer
	indent string
}

// newFormatter returns a formatter prefixing list items with indent spaces.
// A negative indent is treated as zero.
func newFormatter(w io.Writer, indent int) *formatter {
	var indentStr string
	if indent > 0 {
		indentStr = strings.Repeat(" ", indent)
	}
	return &formatter{w: w, indent: indentStr}
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

// format writes every entry of doc in order. Keys and values are written
// as they are; no trimming or validation takes place.
func (f *formatter) format(doc Document) error {
	for _, e := range doc {
		if err := f.writeEntry(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) writeEntry(e Entry) error {
	switch e.Value.kind {
	case StringKind:
		return f.write(e.Key + separator + e.Value.text + "\n")
	case ListKind:
		if err := f.write(e.Key + "\n"); err != nil {
			return err
		}
		for _, item := range e.Value.items {
			if err := f.write(f.indent + itemMarker + item + "\n"); err != nil {
				return err
			}
		}
		return nil
	default:
		panic(fmt.Sprintf("mico: entry %q has an invalid value", e.Key))
	}
}
