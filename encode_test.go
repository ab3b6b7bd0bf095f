package mico_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/KimNorgaard/go-mico"
	"github.com/KimNorgaard/go-mico/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestEncoder(t *testing.T) {
	doc := mico.Document{
		mico.NewEntry("name", mico.String("mico")),
		mico.NewEntry("tags", mico.List("a", "b")),
	}

	t.Run("Default indent", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, mico.NewEncoder(&buf).Encode(doc))
		require.Equal(t, "name: mico\ntags\n- a\n- b\n", buf.String())
	})

	t.Run("Indent option", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, mico.NewEncoder(&buf, mico.Indent(3)).Encode(doc))
		require.Equal(t, "name: mico\ntags\n   - a\n   - b\n", buf.String())
	})

	t.Run("Last option wins", func(t *testing.T) {
		b, err := mico.Marshal(doc, mico.Indent(4), nil, mico.Indent(1))
		require.NoError(t, err)
		require.Equal(t, "name: mico\ntags\n - a\n - b\n", string(b))
	})

	t.Run("Negative indent", func(t *testing.T) {
		var buf bytes.Buffer
		err := mico.NewEncoder(&buf, mico.Indent(-1)).Encode(doc)
		require.Error(t, err)
		require.ErrorIs(t, err, mico.ErrNegativeIndent)

		var optErr *mico.OptionError
		require.True(t, errors.As(err, &optErr))
		require.Equal(t, "Indent", optErr.Option)
		require.Equal(t, -1, optErr.Value)
		require.EqualError(t, err, "mico: invalid Indent option -1: indent must be a non-negative integer")
		require.Zero(t, buf.Len(), "nothing must be written when options are invalid")
	})

	t.Run("Nil writer", func(t *testing.T) {
		err := mico.NewEncoder(nil).Encode(doc)
		require.EqualError(t, err, "mico: Encode(nil writer)")
	})
}

func BenchmarkEncode(b *testing.B) {
	data, err := testutil.ReadTestData("services.mico")
	if err != nil {
		b.Fatal(err)
	}
	doc := mico.ParseString(string(data))

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var buf bytes.Buffer
	enc := mico.NewEncoder(&buf, mico.Indent(2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := enc.Encode(doc); err != nil {
			b.Fatalf("Encode failed during benchmark: %v", err)
		}
		buf.Reset()
	}
}

func BenchmarkDecode(b *testing.B) {
	data, err := testutil.ReadTestData("services.mico")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var doc mico.Document
		if err := mico.Unmarshal(data, &doc); err != nil {
			b.Fatalf("Unmarshal failed during benchmark: %v", err)
		}
	}
}
