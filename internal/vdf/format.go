package vdf

import (
	"fmt"
	"strings"
)

// Format selects the KeyValue encoding of a document.
type Format int

const (
	FormatBinary Format = iota + 1
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "binary"/"bin" and "text"/"txt"/"vdf".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin":
		return FormatBinary, nil
	case "text", "txt", "vdf":
		return FormatText, nil
	default:
		return 0, fmt.Errorf("unknown KeyValue format %q", s)
	}
}

// Decode tokenizes data with the decoder selected by format.
func Decode(data []byte, format Format) ([]*KeyValue, error) {
	switch format {
	case FormatBinary:
		return DecodeBinary(data)
	case FormatText:
		return DecodeText(data)
	default:
		return nil, fmt.Errorf("unsupported KeyValue format %s", format)
	}
}
