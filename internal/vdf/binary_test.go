package vdf

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binWriter assembles binary KV1 fixtures.
type binWriter struct {
	bytes.Buffer
}

func (w *binWriter) name(typ byte, name string) *binWriter {
	w.WriteByte(typ)
	w.WriteString(name)
	w.WriteByte(0)

	return w
}

func (w *binWriter) section(name string) *binWriter { return w.name(binChild, name) }

func (w *binWriter) end() *binWriter {
	w.WriteByte(binEnd)
	return w
}

func (w *binWriter) str(name, value string) *binWriter {
	w.name(binString, name)
	w.WriteString(value)
	w.WriteByte(0)

	return w
}

func (w *binWriter) int32(name string, v int32) *binWriter {
	w.name(binInt32, name)
	_ = binary.Write(w, binary.LittleEndian, v)

	return w
}

func (w *binWriter) float32(name string, v float32) *binWriter {
	w.name(binFloat32, name)
	_ = binary.Write(w, binary.LittleEndian, math.Float32bits(v))

	return w
}

func (w *binWriter) uint64(name string, v uint64) *binWriter {
	w.name(binUInt64, name)
	_ = binary.Write(w, binary.LittleEndian, v)

	return w
}

func (w *binWriter) int64(name string, v int64) *binWriter {
	w.name(binInt64, name)
	_ = binary.Write(w, binary.LittleEndian, v)

	return w
}

func (w *binWriter) blob(name string, v []byte) *binWriter {
	w.name(binBlob, name)
	_ = binary.Write(w, binary.LittleEndian, int32(len(v)))
	w.Write(v)

	return w
}

func TestDecodeBinary(t *testing.T) {
	t.Parallel()

	var w binWriter
	w.section("480").
		section("stats").
		section("1").
		str("name", "NumGames").
		int32("type", 1).
		float32("default", 1.5).
		uint64("big", math.MaxUint64).
		int64("neg", -7).
		blob("raw", []byte{1, 2, 3}).
		end().
		end().
		end().
		end()

	doc, err := DecodeBinary(w.Bytes())
	require.NoError(t, err)
	require.Len(t, doc, 1)

	app := doc[0]
	assert.Equal(t, "480", app.Name)
	require.Len(t, app.Children, 1)

	stat := app.Children[0].Children[0]
	require.Len(t, stat.Children, 6)

	assert.Equal(t, Value{Kind: ValueString, Str: "NumGames"}, stat.Children[0].Value)
	assert.Equal(t, Value{Kind: ValueInt32, Int: 1}, stat.Children[1].Value)
	assert.Equal(t, Value{Kind: ValueFloat, Float: 1.5}, stat.Children[2].Value)
	assert.Equal(t, Value{Kind: ValueUInt64, UInt: math.MaxUint64}, stat.Children[3].Value)
	assert.Equal(t, Value{Kind: ValueInt64, Int: -7}, stat.Children[4].Value)
	assert.Equal(t, []byte{1, 2, 3}, stat.Children[5].Value.Blob)
}

func TestDecodeBinaryWithoutTrailingEnd(t *testing.T) {
	t.Parallel()

	var w binWriter
	w.section("root").int32("a", 1).end()

	doc, err := DecodeBinary(w.Bytes())
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Len(t, doc[0].Children, 1)
}

func TestDecodeBinaryMalformed(t *testing.T) {
	t.Parallel()

	truncated := func() []byte {
		var w binWriter
		w.section("root").int32("a", 1)
		b := w.Bytes()

		return b[:len(b)-2]
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unterminated name", []byte{binString, 'a', 'b'}},
		{"section never closed", func() []byte {
			var w binWriter
			w.section("root").str("a", "b")

			return w.Bytes()
		}()},
		{"truncated int", truncated()},
		{"unknown type", []byte{0x42, 'a', 0}},
		{"wide string", []byte{binWideString, 'a', 0}},
		{"blob longer than data", func() []byte {
			var w binWriter
			w.name(binBlob, "b")
			_ = binary.Write(&w, binary.LittleEndian, int32(100))

			return w.Bytes()
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeBinary(tt.data)
			require.ErrorIs(t, err, ErrMalformed)

			var mErr *MalformedInputError
			require.ErrorAs(t, err, &mErr)
			assert.Equal(t, FormatBinary, mErr.Format)
		})
	}
}
