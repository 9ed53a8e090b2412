package vdf

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Binary KV1 node type markers.
const (
	binChild      byte = 0
	binString     byte = 1
	binInt32      byte = 2
	binFloat32    byte = 3
	binPointer    byte = 4
	binWideString byte = 5
	binColor      byte = 6
	binUInt64     byte = 7
	binEnd        byte = 8
	binBlob       byte = 9
	binInt64      byte = 10
	binAltEnd     byte = 11
)

type binaryReader struct {
	data []byte
	pos  int
}

func (r *binaryReader) eof() bool {
	return r.pos >= len(r.data)
}

func (r *binaryReader) fail(reason string, args ...any) error {
	return malformed(FormatBinary, r.pos, reason, args...)
}

func (r *binaryReader) take(n int) ([]byte, error) {
	if n < 0 || len(r.data)-r.pos < n {
		return nil, r.fail("need %d bytes, %d left", n, len(r.data)-r.pos)
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

func (r *binaryReader) cstring() (string, error) {
	end := bytes.IndexByte(r.data[r.pos:], 0)
	if end < 0 {
		return "", r.fail("unterminated string")
	}

	s := string(r.data[r.pos : r.pos+end])
	r.pos += end + 1

	return s, nil
}

func (r *binaryReader) uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (r *binaryReader) uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b), nil
}

// DecodeBinary tokenizes a binary KV1 document. Top-level entries are read
// until an end marker or the end of data.
func DecodeBinary(data []byte) ([]*KeyValue, error) {
	if len(data) == 0 {
		return nil, malformed(FormatBinary, 0, "empty document")
	}

	r := &binaryReader{data: data}
	root := &KeyValue{}
	stack := []*KeyValue{root}

	for {
		if r.eof() {
			if len(stack) > 1 {
				return nil, r.fail("unexpected end of data inside section %q", stack[len(stack)-1].Name)
			}

			return root.Children, nil
		}

		typ := r.data[r.pos]
		r.pos++

		if typ == binEnd || typ == binAltEnd {
			if len(stack) == 1 {
				return root.Children, nil
			}

			stack = stack[:len(stack)-1]

			continue
		}

		name, err := r.cstring()
		if err != nil {
			return nil, err
		}

		kv := &KeyValue{Name: name}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, kv)

		if typ == binChild {
			kv.Value.Kind = ValueCollection
			stack = append(stack, kv)

			continue
		}

		kv.Value, err = r.value(typ, name)
		if err != nil {
			return nil, err
		}
	}
}

func (r *binaryReader) value(typ byte, name string) (Value, error) {
	switch typ {
	case binString:
		s, err := r.cstring()
		return Value{Kind: ValueString, Str: s}, err
	case binInt32, binColor:
		v, err := r.uint32()
		return Value{Kind: ValueInt32, Int: int64(int32(v))}, err
	case binPointer:
		v, err := r.uint32()
		return Value{Kind: ValuePointer, UInt: uint64(v)}, err
	case binFloat32:
		v, err := r.uint32()
		return Value{Kind: ValueFloat, Float: float64(math.Float32frombits(v))}, err
	case binUInt64:
		v, err := r.uint64()
		return Value{Kind: ValueUInt64, UInt: v}, err
	case binInt64:
		v, err := r.uint64()
		return Value{Kind: ValueInt64, Int: int64(v)}, err
	case binBlob:
		n, err := r.uint32()
		if err != nil {
			return Value{}, err
		}

		b, err := r.take(int(int32(n)))
		if err != nil {
			return Value{}, err
		}

		return Value{Kind: ValueBlob, Blob: append([]byte(nil), b...)}, nil
	case binWideString:
		return Value{}, r.fail("wide string value for key %q is not supported", name)
	default:
		return Value{}, r.fail("unknown node type 0x%02x for key %q", typ, name)
	}
}
