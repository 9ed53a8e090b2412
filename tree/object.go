package tree

import (
	"iter"
	"slices"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Object is an insertion-ordered string-keyed map of nodes.
type Object struct {
	m *sequencedmap.Map[string, *Node]
}

func NewObject() *Object {
	return &Object{m: sequencedmap.New[string, *Node]()}
}

// Len returns the number of distinct keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return o.m.Len()
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return slices.Collect(o.m.Keys())
}

// Value returns the value stored under exactly key.
func (o *Object) Value(key string) (*Node, bool) {
	if o == nil {
		return nil, false
	}

	return o.m.Get(key)
}

// Lookup finds key ignoring case. When several keys differ only by case,
// the one matching key exactly wins; otherwise the first in insertion order.
func (o *Object) Lookup(key string) (*Node, bool) {
	if o == nil {
		return nil, false
	}

	if v, ok := o.m.Get(key); ok {
		return v, true
	}

	for k, v := range o.m.All() {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}

	return nil, false
}

// Set stores v under key, replacing any previous value in place.
func (o *Object) Set(key string, v *Node) {
	if v == nil {
		v = Null()
	}

	o.m.Set(key, v)
}

// Insert stores v under key applying duplicate-key promotion: a repeated key
// turns the existing value into an array [old, v] at the same position, and
// further repetitions append to that array.
func (o *Object) Insert(key string, v *Node) {
	if v == nil {
		v = Null()
	}

	old, ok := o.m.Get(key)
	switch {
	case !ok:
		o.m.Set(key, v)
	case old.Kind() == KindArray:
		old.append(v)
	default:
		o.m.Set(key, Array(old, v))
	}
}

// All iterates over key/value pairs in insertion order.
func (o *Object) All() iter.Seq2[string, *Node] {
	if o == nil {
		return func(func(string, *Node) bool) {}
	}

	return o.m.All()
}

// Clone returns a shallow copy: new key order, same value nodes.
func (o *Object) Clone() *Object {
	c := NewObject()
	for k, v := range o.All() {
		c.m.Set(k, v)
	}

	return c
}

// Equal compares keys, their order and values.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}

	for i := range o.Len() {
		a, b := o.m.At(i), other.m.At(i)
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
	}

	return true
}
