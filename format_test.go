package mico

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// failingWriter accepts n writes and fails every write after that.
type failingWriter struct {
	n   int
	err error
	buf strings.Builder
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--
	return w.buf.Write(p)
}

func TestEmitString(t *testing.T) {
	tests := []struct {
		name   string
		doc    Document
		indent int
		want   string
	}{
		{
			name: "string",
			doc:  Document{NewEntry("key", String("value"))},
			want: "key: value\n",
		},
		{
			name: "list",
			doc:  Document{NewEntry("key", List("value"))},
			want: "key\n- value\n",
		},
		{
			name:   "list indent",
			doc:    Document{NewEntry("key", List("value1", "value2"))},
			indent: 2,
			want:   "key\n  - value1\n  - value2\n",
		},
		{
			name:   "empty list",
			doc:    Document{NewEntry("k", List())},
			indent: 4,
			want:   "k\n",
		},
		{
			name:   "empty document",
			doc:    Document{},
			indent: 1,
			want:   "",
		},
		{
			name: "nil document",
			want: "",
		},
		{
			name:   "negative indent",
			doc:    Document{NewEntry("key", List("a"))},
			indent: -3,
			want:   "key\n- a\n",
		},
		{
			name: "no trimming on emit",
			doc: Document{
				{Key: " k ", Value: Value{kind: StringKind, text: " v "}},
				{Key: "l", Value: Value{kind: ListKind, items: []string{" x "}}},
			},
			want: " k :  v \nl\n-  x \n",
		},
		{
			name: "mixed",
			doc: Document{
				NewEntry("key1", String("value1")),
				NewEntry("key2", List("value2")),
				NewEntry("key3", String("value3")),
				NewEntry("key4", List("value4")),
			},
			indent: 2,
			want:   "key1: value1\nkey2\n  - value2\nkey3: value3\nkey4\n  - value4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EmitString(tt.doc, tt.indent))

			var b strings.Builder
			require.NoError(t, Emit(&b, tt.doc, tt.indent))
			require.Equal(t, tt.want, b.String())
		})
	}
}

func TestEmitWriteError(t *testing.T) {
	errWrite := errors.New("disk full")
	doc := Document{
		NewEntry("a", String("1")),
		NewEntry("b", List("x", "y")),
	}

	for n := 0; n < 4; n++ {
		w := &failingWriter{n: n, err: errWrite}
		err := Emit(w, doc, 0)
		require.Same(t, errWrite, err, "after %d writes", n)
	}

	w := &failingWriter{n: 4, err: errWrite}
	require.NoError(t, Emit(w, doc, 0))
	require.Equal(t, "a: 1\nb\n- x\n- y\n", w.buf.String())
}

func TestEmitInvalidValuePanics(t *testing.T) {
	doc := Document{{Key: "broken"}}
	require.PanicsWithValue(t, `mico: entry "broken" has an invalid value`, func() {
		EmitString(doc, 0)
	})
}
