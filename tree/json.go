package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = errors.New("invalid JSON document")

// FromJSON builds a tree from a JSON document keeping object key order.
// Repeated object keys are promoted to arrays exactly like KeyValue keys.
func FromJSON(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(r gjson.Result) *Node {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.String:
		return String(r.Str)
	case gjson.Number:
		return numberFromRaw(r)
	}

	if r.IsArray() {
		items := []*Node{}
		r.ForEach(func(_, v gjson.Result) bool {
			items = append(items, fromResult(v))
			return true
		})

		return Array(items...)
	}

	obj := NewObject()
	r.ForEach(func(k, v gjson.Result) bool {
		obj.Insert(k.Str, fromResult(v))
		return true
	})

	return FromObject(obj)
}

// numberFromRaw keeps integers exact instead of going through float64.
func numberFromRaw(r gjson.Result) *Node {
	raw := r.Raw
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Int(i)
		}

		if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return Uint64(u)
		}
	}

	return Float(r.Num)
}

// MarshalJSON writes the node as JSON with object keys in insertion order.
// Non-finite floats are written as null, blobs as base64 strings.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	switch n.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(n.i, 10))
	case KindUint64:
		buf.WriteString(strconv.FormatUint(n.u, 10))
	case KindFloat:
		if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
			buf.WriteString("null")
			break
		}

		buf.WriteString(strconv.FormatFloat(n.f, 'g', -1, 64))
	case KindString:
		return writeJSONValue(buf, n.s)
	case KindBlob:
		return writeJSONValue(buf, n.raw)
	case KindArray:
		buf.WriteByte('[')

		for i, item := range n.arr {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')

		first := true
		for k, v := range n.obj.All() {
			if !first {
				buf.WriteByte(',')
			}

			first = false

			if err := writeJSONValue(buf, k); err != nil {
				return err
			}

			buf.WriteByte(':')

			if err := v.writeJSON(buf); err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	}

	return nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}
