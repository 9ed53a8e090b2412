package vdf

// ValueKind is the source type of a KeyValue leaf.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueCollection
	ValueArray
	ValueBlob
	ValueString
	ValueInt32
	ValueUInt64
	ValueFloat
	ValuePointer
	ValueInt64
	ValueBool
)

// Value is a decoded scalar. Only the field matching Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	UInt  uint64
	Float float64
	Bool  bool
	Blob  []byte
}

// KeyValue is one entry of a decoded document. Entries with children are
// sections; their Value is ValueCollection.
type KeyValue struct {
	Name     string
	Value    Value
	Children []*KeyValue
}

func (kv *KeyValue) HasChildren() bool {
	return len(kv.Children) > 0
}

// NewString builds a string leaf.
func NewString(name, value string) *KeyValue {
	return &KeyValue{Name: name, Value: Value{Kind: ValueString, Str: value}}
}

// NewSection builds a section holding children.
func NewSection(name string, children ...*KeyValue) *KeyValue {
	return &KeyValue{Name: name, Value: Value{Kind: ValueCollection}, Children: children}
}
