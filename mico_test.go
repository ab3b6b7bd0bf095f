package mico_test

import (
	"strings"
	"testing"

	"github.com/KimNorgaard/go-mico"
	"github.com/KimNorgaard/go-mico/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	t.Run("Single string entry", func(t *testing.T) {
		doc := mico.ParseString("key: value")
		require.Len(t, doc, 1)
		require.Equal(t, "key", doc[0].Key)
		require.Equal(t, "value", doc[0].Value.MustText())
	})

	t.Run("Single list entry", func(t *testing.T) {
		doc := mico.ParseString("key\n- a\n- b")
		require.Len(t, doc, 1)
		require.Equal(t, "key", doc[0].Key)
		require.Equal(t, []string{"a", "b"}, doc[0].Value.MustItems())
	})

	t.Run("List keys never merge", func(t *testing.T) {
		doc := mico.ParseString("key1\nkey2")
		require.Len(t, doc, 2)
		for i, key := range []string{"key1", "key2"} {
			require.Equal(t, key, doc[i].Key)
			require.Empty(t, doc[i].Value.MustItems())
		}
	})

	t.Run("Separator whitespace is discarded", func(t *testing.T) {
		doc := mico.ParseString(" key : value ")
		require.Equal(t, "key", doc[0].Key)
		require.Equal(t, "value", doc[0].Value.MustText())

		doc = mico.ParseString("a: b: c")
		require.Equal(t, "a", doc[0].Key)
		require.Equal(t, "b: c", doc[0].Value.MustText())
	})

	t.Run("Blank lines are inert", func(t *testing.T) {
		plain := mico.ParseString("a: 1\nlist\n- x\n- y\nb: 2")
		spaced := mico.ParseString("\n \na: 1\n\t\nlist\n  \n- x\n\n- y\n \nb: 2\n\n")
		require.True(t, plain.Equal(spaced))
	})
}

func TestEmitProperties(t *testing.T) {
	t.Run("Empty document", func(t *testing.T) {
		for _, indent := range []int{0, 1, 8} {
			require.Equal(t, "", mico.EmitString(nil, indent))
			require.Equal(t, "", mico.EmitString(mico.Document{}, indent))
		}
	})

	t.Run("Empty list emits key only", func(t *testing.T) {
		for _, indent := range []int{0, 2, 5} {
			doc := mico.Document{mico.NewEntry("k", mico.List())}
			require.Equal(t, "k\n", mico.EmitString(doc, indent))
		}
	})

	t.Run("Order is preserved", func(t *testing.T) {
		input := "s1: a\nl1\n- x\ns2: b\nl2\n- y\n- z\ns3: c\n"
		doc := mico.ParseString(input)
		require.Equal(t, []string{"s1", "l1", "s2", "l2", "s3"}, doc.Keys())
		require.Equal(t, input, mico.EmitString(doc, 0))
	})
}

func TestRoundTrip(t *testing.T) {
	names, err := testutil.Samples()
	require.NoError(t, err)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			src, err := testutil.ReadTestData(name)
			require.NoError(t, err)

			doc, err := mico.Parse(strings.NewReader(string(src)))
			require.NoError(t, err)

			for _, indent := range []int{0, 1, 4} {
				first, err := mico.Marshal(doc, mico.Indent(indent))
				require.NoError(t, err)

				var again mico.Document
				require.NoError(t, mico.Unmarshal(first, &again))
				require.True(t, doc.Equal(again), "indent %d: document changed after a round trip", indent)

				second, err := mico.Marshal(again, mico.Indent(indent))
				require.NoError(t, err)
				require.Equal(t, string(first), string(second))
			}
		})
	}
}

func TestText(t *testing.T) {
	doc := mico.Document{
		mico.NewEntry("a", mico.String("1")),
		mico.NewEntry("b", mico.List("x")),
	}

	text, err := doc.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "a: 1\nb\n- x\n", string(text))

	var got mico.Document
	require.NoError(t, got.UnmarshalText(text))
	require.True(t, doc.Equal(got))

	require.EqualError(t, mico.Unmarshal(text, nil), "mico: Unmarshal(nil *Document)")
}
