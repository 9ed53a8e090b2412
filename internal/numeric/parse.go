// Package numeric resolves the hand-edited numeric literals found in stat
// schemas: plain numbers, named sentinels such as INT_MAX, signed hex and
// typo'd strings with full-width digits or the letter O in place of zero.
package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"emucfg/tree"
)

// MinNormalFloat32 is the smallest positive normal float32 (C's FLT_MIN).
var MinNormalFloat32 = float64(math.Float32frombits(0x00800000))

// sentinels maps upper-cased tokens, after O->0 substitution, to magnitudes.
var sentinels = map[string]float64{
	"INT_MIN": math.MinInt32,
	"MIN_INT": math.MinInt32,
	"INT_MAX": math.MaxInt32,
	"MAX_INT": math.MaxInt32,

	"FL0AT_MIN": MinNormalFloat32,
	"FLT_MIN":   MinNormalFloat32,
	"MIN_FL0AT": MinNormalFloat32,
	"MIN_FLT":   MinNormalFloat32,

	"FL0AT_MAX": math.MaxFloat32,
	"FLT_MAX":   math.MaxFloat32,
	"MAX_FL0AT": math.MaxFloat32,
	"MAX_FLT":   math.MaxFloat32,

	"INF": math.Inf(1),
}

// ParseStatNumeric resolves a stat bound or default. The second result is
// false when nothing could be resolved; callers treat that as "absent",
// never as zero.
func ParseStatNumeric(n *tree.Node) (float64, bool) {
	switch n.Kind() {
	case tree.KindInt, tree.KindUint64, tree.KindFloat, tree.KindBool:
		return n.TryNumber()
	case tree.KindString:
		return ParseLiteral(n.AsString())
	default:
		return 0, false
	}
}

// ParseLiteral applies the string rules of ParseStatNumeric.
func ParseLiteral(s string) (float64, bool) {
	token := strings.ToUpper(strings.TrimSpace(norm.NFKC.String(s)))
	token = strings.ReplaceAll(token, "O", "0")

	sign := 1.0
	if rest, ok := strings.CutPrefix(token, "-"); ok {
		sign = -1
		token = rest
	}

	if token == "" {
		return 0, false
	}

	if v, ok := sentinels[token]; ok {
		return sign * v, true
	}

	// out of range decimals come back as ±Inf or 0 with ErrRange
	if v, err := strconv.ParseFloat(token, 64); (err == nil || errors.Is(err, strconv.ErrRange)) && !math.IsNaN(v) {
		return sign * v, true
	}

	if v, ok := parseHex(token); ok {
		return sign * v, true
	}

	return 0, false
}

func parseHex(token string) (float64, bool) {
	digits := token
	if len(digits) > 2 && digits[:2] == "0X" {
		digits = digits[2:]
	}

	if digits == "" || strings.TrimLeft(digits, "0123456789ABCDEF") != "" {
		return 0, false
	}

	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, false
	}

	return float64(v), true
}
