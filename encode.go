package mico

import (
	"errors"
	"io"
)

// Encoder writes mico documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the text form of doc to the stream.
//
// Errors from the underlying writer are returned unchanged. Encode panics if
// an entry holds the zero Value.
func (e *Encoder) Encode(doc Document) error {
	if e.w == nil {
		return errors.New("mico: Encode(nil writer)")
	}
	o, err := applyOptions(e.opts)
	if err != nil {
		return err
	}
	return newFormatter(e.w, o.indent).format(doc)
}
