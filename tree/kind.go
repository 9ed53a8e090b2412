package tree

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum tags the variant held by a Node.
type KindEnum int

const (
	KindNull KindEnum = iota // zero value, a zero Node is null
	KindBool
	KindInt
	KindUint64
	KindFloat
	KindString
	KindBlob
	KindArray
	KindObject
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindUint64, KindFloat:
		return true
	}
}
