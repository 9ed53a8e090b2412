package tree

import "math"

// Node is a single value of a normalized document.
// A nil *Node stands for "absent"; all accessor methods accept it.
type Node struct {
	kind KindEnum

	b   bool
	i   int64
	u   uint64
	f   float64
	s   string
	raw []byte
	arr []*Node
	obj *Object
}

func Null() *Node { return &Node{kind: KindNull} }

func Bool(v bool) *Node { return &Node{kind: KindBool, b: v} }

func Int(v int64) *Node { return &Node{kind: KindInt, i: v} }

func Uint64(v uint64) *Node { return &Node{kind: KindUint64, u: v} }

func Float(v float64) *Node { return &Node{kind: KindFloat, f: v} }

func String(v string) *Node { return &Node{kind: KindString, s: v} }

// Blob keeps a copy of v.
func Blob(v []byte) *Node {
	return &Node{kind: KindBlob, raw: append([]byte(nil), v...)}
}

// Array builds an array node owning the given items.
func Array(items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}

	return &Node{kind: KindArray, arr: items}
}

// FromObject wraps o into a node. A nil o becomes an empty object.
func FromObject(o *Object) *Node {
	if o == nil {
		o = NewObject()
	}

	return &Node{kind: KindObject, obj: o}
}

// Kind returns the variant tag. A nil node reports KindNull.
func (n *Node) Kind() KindEnum {
	if n == nil {
		return KindNull
	}

	return n.kind
}

// Len returns the number of children of an array or object, 0 otherwise.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindArray:
		return len(n.arr)
	case KindObject:
		return n.obj.Len()
	default:
		return 0
	}
}

// append adds v to an array node; used only by Object.Insert during construction.
func (n *Node) append(v *Node) {
	n.arr = append(n.arr, v)
}

// Equal reports deep equality, including key order of objects.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	if n.kind != other.kind {
		return false
	}

	switch n.kind {
	case KindNull:
		return true
	case KindBool:
		return n.b == other.b
	case KindInt:
		return n.i == other.i
	case KindUint64:
		return n.u == other.u
	case KindFloat:
		return n.f == other.f || (math.IsNaN(n.f) && math.IsNaN(other.f))
	case KindString:
		return n.s == other.s
	case KindBlob:
		return string(n.raw) == string(other.raw)
	case KindArray:
		if len(n.arr) != len(other.arr) {
			return false
		}

		for i := range n.arr {
			if !n.arr[i].Equal(other.arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		return n.obj.Equal(other.obj)
	default:
		return false
	}
}
