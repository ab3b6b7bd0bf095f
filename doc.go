/*
Package mico parses and emits mico, a minimalistic line-oriented
configuration format meant to be written by hand, fast. There is no nesting,
quoting or escaping: any line of text can be pasted into a mico file as is.

A mico document is a flat, ordered sequence of entries. Each entry maps a key
either to a string or to a list of strings:

	Name: mico
	Description: minimalistic config file format

	Benefits
	 - easy to read and write for everyone
	 - ludicrously simple parsing logic

# Parsing rules

Every line is trimmed and blank lines are ignored everywhere. A line holding
": " is a string entry; the first occurrence splits key from value, so
"a: b: c" maps "a" to "b: c". Any other line starts a list whose items are the
following lines beginning with "- ". A list ends at the first line that is not
an item, and that line is then read as a new entry. A colon not followed by a
space is part of the key, which means "key:" on its own starts a list.

Because every line fits one of these shapes, parsing never fails on content.
The only errors are read errors from the underlying stream.

# Parsing and emitting

Parse and ParseString turn text into a Document. Emit, EmitString and Marshal
do the reverse, with list items indented by a configurable number of spaces:

	doc := mico.ParseString("foo: bar\nlist\n- a\n- b\n")
	v, _ := doc.Get("foo")
	fmt.Println(v.MustText()) // bar

	out, err := mico.Marshal(doc, mico.Indent(2))
	if err != nil {
		// handle error
	}
	// out is "foo: bar\nlist\n  - a\n  - b\n"

Documents can also be built directly:

	doc := mico.Document{
		mico.NewEntry("name", mico.String("mico")),
		mico.NewEntry("tags", mico.List("config", "format")),
	}

Emitting does not validate its input. Some documents will not read back the
way they were written: keys or values holding line terminators, string keys
holding ": ", empty string values, and empty list items or list items with
trailing whitespace.
*/
package mico
