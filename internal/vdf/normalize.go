package vdf

import (
	"fmt"

	"emucfg/tree"
)

// pending pairs a source entry with the object it is inserted into.
type pending struct {
	source *KeyValue
	target *tree.Object
}

// Normalize decodes data and converts it into a tree. Only decoding can fail;
// the result is always a complete tree.
func Normalize(data []byte, format Format) (*tree.Node, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s document: %w", format, err)
	}

	return NormalizeDocument(doc), nil
}

// NormalizeDocument converts decoded entries into an object tree, visiting
// entries breadth-first. Repeated names inside one section are promoted to
// arrays, for leaves and sections alike.
func NormalizeDocument(doc []*KeyValue) *tree.Node {
	root := tree.NewObject()

	queue := make([]pending, 0, len(doc))
	for _, kv := range doc {
		queue = append(queue, pending{source: kv, target: root})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue[0] = pending{}
		queue = queue[1:]

		kv := item.source
		if kv == nil {
			continue
		}

		if !kv.HasChildren() {
			item.target.Insert(kv.Name, leafNode(kv.Value))
			continue
		}

		section := tree.NewObject()
		item.target.Insert(kv.Name, tree.FromObject(section))

		for _, child := range kv.Children {
			queue = append(queue, pending{source: child, target: section})
		}
	}

	return tree.FromObject(root)
}

func leafNode(v Value) *tree.Node {
	switch v.Kind {
	case ValueNull:
		return tree.Null()
	case ValueBool:
		return tree.Bool(v.Bool)
	case ValueInt32, ValueInt64:
		return tree.Int(v.Int)
	case ValueUInt64, ValuePointer:
		return tree.Uint64(v.UInt)
	case ValueFloat:
		return tree.Float(v.Float)
	case ValueString:
		return tree.String(v.Str)
	case ValueBlob, ValueArray, ValueCollection:
		// no scalar representation; kept as an empty placeholder
		return tree.Array()
	default:
		return tree.String(v.Str)
	}
}
