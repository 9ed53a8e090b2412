package vdf

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokString
	tokOpen
	tokClose
	tokCondition
	tokDirective
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

type textLexer struct {
	data []byte
	pos  int
}

func (l *textLexer) fail(offset int, reason string, args ...any) error {
	return malformed(FormatText, offset, reason, args...)
}

// skipSpace skips whitespace and // comments.
func (l *textLexer) skipSpace() {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.pos++
		case c == '/' && l.pos+1 < len(l.data) && l.data[l.pos+1] == '/':
			end := bytes.IndexByte(l.data[l.pos:], '\n')
			if end < 0 {
				l.pos = len(l.data)
			} else {
				l.pos += end + 1
			}
		default:
			return
		}
	}
}

func (l *textLexer) next() (token, error) {
	l.skipSpace()

	start := l.pos
	if l.pos >= len(l.data) {
		return token{kind: tokEOF, offset: start}, nil
	}

	switch c := l.data[l.pos]; c {
	case '{':
		l.pos++
		return token{kind: tokOpen, offset: start}, nil
	case '}':
		l.pos++
		return token{kind: tokClose, offset: start}, nil
	case '"':
		s, err := l.quoted()
		return token{kind: tokString, text: s, offset: start}, err
	case '[':
		end := bytes.IndexByte(l.data[l.pos:], ']')
		if end < 0 {
			return token{}, l.fail(start, "unterminated conditional")
		}

		text := string(l.data[l.pos+1 : l.pos+end])
		l.pos += end + 1

		return token{kind: tokCondition, text: text, offset: start}, nil
	}

	s := l.bare()
	if strings.HasPrefix(s, "#") {
		return token{kind: tokDirective, text: s, offset: start}, nil
	}

	return token{kind: tokString, text: s, offset: start}, nil
}

func (l *textLexer) quoted() (string, error) {
	start := l.pos
	l.pos++ // opening quote

	var sb strings.Builder
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch c {
		case '"':
			l.pos++
			return sb.String(), nil
		case '\\':
			if l.pos+1 >= len(l.data) {
				return "", l.fail(start, "unterminated string")
			}

			switch esc := l.data[l.pos+1]; esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '"':
				sb.WriteByte(esc)
			default:
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}

			l.pos += 2
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}

	return "", l.fail(start, "unterminated string")
}

func (l *textLexer) bare() string {
	start := l.pos
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '{' || c == '}' || c == '"' {
			break
		}

		if c == '/' && l.pos+1 < len(l.data) && l.data[l.pos+1] == '/' {
			break
		}

		l.pos++
	}

	return string(l.data[start:l.pos])
}

// DecodeText tokenizes a text KV1 document. Every leaf is a string value.
// Conditionals ([$WIN32] ...) are ignored and #base / #include directives
// are skipped since included files are not available here.
func DecodeText(data []byte) ([]*KeyValue, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	l := &textLexer{data: data}

	root := &KeyValue{}
	stack := []*KeyValue{root}

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		switch tok.kind {
		case tokEOF:
			if len(stack) > 1 {
				return nil, l.fail(tok.offset, "unexpected end of data inside section %q", stack[len(stack)-1].Name)
			}

			if len(root.Children) == 0 {
				return nil, l.fail(tok.offset, "empty document")
			}

			return root.Children, nil
		case tokClose:
			if len(stack) == 1 {
				return nil, l.fail(tok.offset, "unbalanced '}'")
			}

			stack = stack[:len(stack)-1]
		case tokOpen:
			return nil, l.fail(tok.offset, "section without a name")
		case tokCondition:
			// applies to the previous entry; evaluated by the game, not by us
		case tokDirective:
			arg, err := l.next()
			if err != nil {
				return nil, err
			}

			if arg.kind != tokString {
				return nil, l.fail(arg.offset, "directive %s needs a file name", tok.text)
			}
		case tokString:
			value, err := l.valueToken()
			if err != nil {
				return nil, err
			}

			parent := stack[len(stack)-1]

			switch value.kind {
			case tokString:
				parent.Children = append(parent.Children, NewString(tok.text, value.text))
			case tokOpen:
				section := NewSection(tok.text)
				parent.Children = append(parent.Children, section)
				stack = append(stack, section)
			default:
				return nil, l.fail(value.offset, "key %q has no value", tok.text)
			}
		}
	}
}

// valueToken returns the token following a key, skipping conditionals.
// Directives only exist in key position, so a bare #word here is a value.
func (l *textLexer) valueToken() (token, error) {
	for {
		tok, err := l.next()
		if err != nil {
			return tok, err
		}

		switch tok.kind {
		case tokCondition:
			continue
		case tokDirective:
			tok.kind = tokString
		}

		return tok, nil
	}
}
