package mico

import (
	"bufio"
	"errors"
	"io"
)

// Decoder reads a mico document from an input stream.
type Decoder struct {
	r    *bufio.Reader
	line int
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder buffers data from r. It is the caller's responsibility to call
// Close on r if required.
func NewDecoder(r io.Reader) *Decoder {
	if r == nil {
		return &Decoder{}
	}
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads lines until the end of the input and stores the resulting
// Document in doc.
//
// Input is parsed as it is read, one line at a time, with no limit on line
// length. Every input maps to some Document, so the only errors are those
// returned by the underlying reader, which are passed through unchanged. On
// error doc is left untouched.
func (d *Decoder) Decode(doc *Document) error {
	if d.r == nil {
		return errors.New("mico: Decode(nil reader)")
	}
	if doc == nil {
		return errors.New("mico: Decode(nil *Document)")
	}

	var p lineParser
	for {
		line, err := d.r.ReadString('\n')
		if line != "" {
			d.line++
			p.feed(line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	*doc = p.finish()
	return nil
}

// Line returns the number of lines consumed so far, blank lines included.
func (d *Decoder) Line() int {
	return d.line
}
