package mico

import (
	"bytes"
	"encoding"
	"errors"
	"io"
	"strings"
)

var (
	_ encoding.TextMarshaler   = Document(nil)
	_ encoding.TextUnmarshaler = (*Document)(nil)
)

// Parse reads r to the end and returns the entries it contains.
//
// Parse never fails on content: any sequence of lines is a valid document.
// The only errors are read errors from r, returned unchanged.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	if err := NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseString parses the document held in s.
func ParseString(s string) Document {
	var p lineParser
	for len(s) > 0 {
		line, rest, _ := strings.Cut(s, "\n")
		p.feed(line)
		s = rest
	}
	return p.finish()
}

// Unmarshal parses data and stores the result in doc.
func Unmarshal(data []byte, doc *Document) error {
	if doc == nil {
		return errors.New("mico: Unmarshal(nil *Document)")
	}
	return NewDecoder(bytes.NewReader(data)).Decode(doc)
}

// Marshal returns the text form of doc.
func Marshal(doc Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Emit writes doc to w, prefixing every list item line with indent spaces.
// A negative indent is treated as zero.
func Emit(w io.Writer, doc Document, indent int) error {
	return newFormatter(w, indent).format(doc)
}

// EmitString returns the text form of doc, prefixing every list item line
// with indent spaces. A negative indent is treated as zero.
func EmitString(doc Document, indent int) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = newFormatter(&b, indent).format(doc)
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the default indent.
func (d Document) MarshalText() ([]byte, error) {
	return Marshal(d)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Document) UnmarshalText(text []byte) error {
	return Unmarshal(text, d)
}
