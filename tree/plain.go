package tree

// Interface converts the node into plain Go values: nil, bool, int64,
// uint64, float64, string, []byte, []any and map[string]any.
// Object key order is lost.
func (n *Node) Interface() any {
	switch n.Kind() {
	case KindBool:
		return n.b
	case KindInt:
		return n.i
	case KindUint64:
		return n.u
	case KindFloat:
		return n.f
	case KindString:
		return n.s
	case KindBlob:
		return n.raw
	case KindArray:
		items := make([]any, len(n.arr))
		for i, item := range n.arr {
			items[i] = item.Interface()
		}

		return items
	case KindObject:
		m := make(map[string]any, n.obj.Len())
		for k, v := range n.obj.All() {
			m[k] = v.Interface()
		}

		return m
	default:
		return nil
	}
}

// MarshalYAML lets YAML encoders write trees as plain mappings.
func (n *Node) MarshalYAML() (any, error) {
	return n.Interface(), nil
}
