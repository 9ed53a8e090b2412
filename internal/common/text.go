package common

import "strings"

const UnknownStr = "unknown"

// invalidFilenameChars is the Windows set, the strictest of the platforms
// emulator files end up on.
const invalidFilenameChars = "\"<>|:*?\\/"

// SanitizeFilename drops characters that are not allowed in file names,
// including all control characters below 32.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || strings.ContainsRune(invalidFilenameChars, r) {
			return -1
		}

		return r
	}, name)
}

// SplitList splits s on sep, trims every element and drops empty ones.
func SplitList(s string, sep string) []string {
	var out []string

	for part := range strings.SplitSeq(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

// DedupFold removes case-insensitive duplicates keeping the first spelling.
func DedupFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		key := strings.ToUpper(v)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, v)
	}

	return out
}
