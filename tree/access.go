package tree

import (
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

// zeroThreshold is the magnitude below which a number counts as false.
const zeroThreshold = 1e-10

// Get walks nested objects following keys. Each step matches
// case-insensitively, preferring an exact-case key when both exist.
// It returns nil when a step is not an object, a key is missing, or no keys
// are given.
func (n *Node) Get(keys ...string) *Node {
	if len(keys) == 0 {
		return nil
	}

	cur := n
	for _, key := range keys {
		if cur.Kind() != KindObject {
			return nil
		}

		next, ok := cur.obj.Lookup(key)
		if !ok {
			return nil
		}

		cur = next
	}

	return cur
}

// AsBool treats true, non-zero numbers and the strings "true"/"1" as true.
func (n *Node) AsBool() bool {
	k := n.Kind()
	switch {
	case k == KindBool:
		return n.b
	case k.IsNumber():
		num, ok := n.TryNumber()
		return ok && math.Abs(num) >= zeroThreshold
	case k == KindString:
		return strings.EqualFold(n.s, "true") || n.s == "1"
	default:
		return false
	}
}

// AsNumber converts numbers, numeric strings and booleans to float64.
// Anything else, including NaN, yields 0.
func (n *Node) AsNumber() float64 {
	if num, ok := n.TryNumber(); ok {
		return num
	}

	return 0
}

// TryNumber is AsNumber with an explicit success flag.
func (n *Node) TryNumber() (float64, bool) {
	switch n.Kind() {
	case KindInt:
		return float64(n.i), true
	case KindUint64:
		return float64(n.u), true
	case KindFloat:
		if math.IsNaN(n.f) {
			return 0, false
		}

		return n.f, true
	case KindBool:
		if n.b {
			return 1, true
		}

		return 0, true
	case KindString:
		num, err := strconv.ParseFloat(strings.TrimSpace(n.s), 64)
		if err != nil || math.IsNaN(num) {
			return 0, false
		}

		return num, true
	default:
		return 0, false
	}
}

// AsString returns the value of a string node, "" for anything else.
func (n *Node) AsString() string {
	if n.Kind() != KindString {
		return ""
	}

	return n.s
}

// AsArray returns a copy of the items of an array node, an empty slice
// otherwise.
func (n *Node) AsArray() []*Node {
	if n.Kind() != KindArray {
		return []*Node{}
	}

	return slices.Clone(n.arr)
}

// AsObject returns a shallow copy of the object of an object node, an empty
// object otherwise. Changes to it do not reach the tree.
func (n *Node) AsObject() *Object {
	if n.Kind() != KindObject {
		return NewObject()
	}

	return n.obj.Clone()
}

// Entries iterates over the key/value pairs of an object node in insertion
// order. Other kinds yield nothing.
func (n *Node) Entries() iter.Seq2[string, *Node] {
	if n.Kind() != KindObject {
		return func(func(string, *Node) bool) {}
	}

	return n.obj.All()
}

// Elements views n as a list the way repeated KeyValue keys are read:
// an array yields its items, null or absent yields nothing, and any other
// node yields itself as the single element.
func (n *Node) Elements() []*Node {
	switch n.Kind() {
	case KindArray:
		return slices.Clone(n.arr)
	case KindNull:
		return []*Node{}
	default:
		return []*Node{n}
	}
}

// StringValue returns the payload of a string node.
func (n *Node) StringValue() (string, bool) {
	if n.Kind() != KindString {
		return "", false
	}

	return n.s, true
}
