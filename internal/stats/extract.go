// Package stats extracts stat and achievement definitions from a user-stats
// schema tree.
package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"emucfg/internal/common"
	"emucfg/internal/diagnostic"
	"emucfg/internal/numeric"
	"emucfg/tree"
)

// Diagnostic codes reported by Extract.
const (
	CodeUnknownStatType = "unknown-stat-type"
	CodeBoundsSwapped   = "bounds-swapped"
	CodeMissingName     = "missing-name"
)

// schemaType is the type code used by the schema itself.
type schemaType int

const (
	schemaInt     schemaType = 1
	schemaFloat   schemaType = 2
	schemaAvgRate schemaType = 3
	schemaMap     schemaType = 4 // achievements container
)

var schemaTypeAliases = map[string]schemaType{
	"INT":          schemaInt,
	"FLOAT":        schemaFloat,
	"AVGRATE":      schemaAvgRate,
	"ACHIEVEMENTS": schemaMap,
}

// entry is one child of a "stats" object.
type entry struct {
	key  string
	node *tree.Node
}

// Extract reads the children of a schema's "stats" object.
func Extract(statsObject *tree.Node) Result {
	var entries []entry
	for k, v := range statsObject.Entries() {
		entries = append(entries, entry{key: k, node: v})
	}

	return extract(entries)
}

// ExtractSchema reads a whole user-stats schema document, shaped as
// {"<appid>": {"stats": {...}}}, merging the stats of every top-level entry.
func ExtractSchema(root *tree.Node) Result {
	var entries []entry
	for _, app := range root.Entries() {
		for k, v := range app.Get("stats").Entries() {
			entries = append(entries, entry{key: k, node: v})
		}
	}

	return extract(entries)
}

func extract(entries []entry) Result {
	var res Result

	res.Stats = extractStats(entries, &res.Diagnostics)
	res.Achievements = extractAchievements(entries, &res.Diagnostics)

	return res
}

func resolveType(n *tree.Node) (schemaType, bool) {
	if s, ok := n.StringValue(); ok {
		if t, ok := schemaTypeAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
			return t, true
		}
	}

	num, ok := n.TryNumber()
	if !ok || num != math.Trunc(num) {
		return 0, false
	}

	switch t := schemaType(num); t {
	case schemaInt, schemaFloat, schemaAvgRate, schemaMap:
		return t, true
	default:
		return 0, false
	}
}

// entryID prefers an explicit id field, then an integer schema key, else -1.
func entryID(explicit *tree.Node, key string) int {
	if explicit != nil {
		return int(explicit.AsNumber())
	}

	if id, err := strconv.Atoi(strings.TrimSpace(key)); err == nil {
		return id
	}

	return -1
}

func extractStats(entries []entry, diags *diagnostic.Diagnostics) []Stat {
	var out []Stat

	for _, e := range entries {
		obj := e.node
		name := obj.Get("name").AsString()
		if name == "" {
			continue
		}

		typ, ok := resolveType(obj.Get("type"))
		if !ok {
			diags.AddWarning(CodeUnknownStatType,
				fmt.Sprintf("unknown stat type %q, entry ignored", rawText(obj.Get("type"))),
				name, e.key)

			continue
		}

		stat := Stat{
			ID:                  entryID(obj.Get("id"), e.key),
			Name:                name,
			DisplayName:         obj.Get("display", "name").AsString(),
			MaxChangesPerUpdate: -1,
			Permission:          -1,
			IncrementOnly:       obj.Get("incrementonly").AsBool(),
			Aggregated:          obj.Get("aggregated").AsBool(),
		}

		switch typ {
		case schemaInt:
			stat.Type = StatInt
		case schemaFloat:
			stat.Type = StatFloat
		case schemaAvgRate:
			stat.Type = StatAverageRate
		case schemaMap:
			continue
		}

		if mc := obj.Get("maxchange"); mc != nil {
			stat.MaxChangesPerUpdate = int(mc.AsNumber())
		}

		if perm := obj.Get("permission"); perm != nil {
			stat.Permission = int(perm.AsNumber())
		}

		resolveBounds(&stat, obj, e.key, diags)
		out = append(out, stat)
	}

	return out
}

// resolveBounds fills min, max and default, keeping MinValue <= MaxValue.
func resolveBounds(stat *Stat, obj *tree.Node, key string, diags *diagnostic.Diagnostics) {
	stat.MinValue, stat.HasMin = numeric.ParseStatNumeric(obj.Get("min"))
	stat.MaxValue, stat.HasMax = numeric.ParseStatNumeric(obj.Get("max"))

	if !stat.HasMax {
		if change, ok := numeric.ParseStatNumeric(obj.Get("maxchange")); ok && change > 0 {
			stat.MaxValue = stat.MinValue + change
			stat.HasMax = true
		}
	}

	if !stat.HasMin {
		stat.MinValue = math.Inf(-1)
	}

	if !stat.HasMax {
		stat.MaxValue = math.Inf(1)
	}

	if stat.MinValue > stat.MaxValue {
		diags.AddWarning(CodeBoundsSwapped,
			fmt.Sprintf("min %v is greater than max %v, swapped", stat.MinValue, stat.MaxValue),
			stat.Name, key)

		stat.MinValue, stat.MaxValue = stat.MaxValue, stat.MinValue
		stat.HasMin, stat.HasMax = stat.HasMax, stat.HasMin
	}

	def, ok := numeric.ParseStatNumeric(obj.Get("default"))
	if !ok {
		def = 0
		if stat.HasMin {
			def = stat.MinValue
		}
	}

	if stat.HasMax {
		def = math.Min(def, stat.MaxValue)
	}

	if stat.HasMin {
		def = math.Max(def, stat.MinValue)
	}

	stat.DefaultValue = def
}

func extractAchievements(entries []entry, diags *diagnostic.Diagnostics) []Achievement {
	var out []Achievement

	for _, e := range entries {
		if typ, ok := resolveType(e.node.Get("type")); !ok || typ != schemaMap {
			continue
		}

		for key, bit := range e.node.Get("bits").Entries() {
			name := bit.Get("name").AsString()
			if name == "" {
				diags.AddInfo(CodeMissingName, "achievement without a name ignored", "", e.key+"/bits/"+key)
				continue
			}

			iconName := bit.Get("display", "icon").AsString()
			grayName := bit.Get("display", "icon_gray").AsString()

			out = append(out, Achievement{
				ID:           entryID(bit.Get("bit"), key),
				Name:         name,
				Hidden:       bit.Get("display", "hidden").AsBool(),
				DisplayName:  translations(bit.Get("display", "name")),
				Description:  translations(bit.Get("display", "desc")),
				IconUnlocked: Icon{Name: iconName, NameOnDisk: common.SanitizeFilename(iconName)},
				IconLocked:   Icon{Name: grayName, NameOnDisk: common.SanitizeFilename(grayName)},
				Progress:     bit.Get("progress"),
			})
		}
	}

	return out
}

// translations accepts {"english": "...", "german": "..."} and, for older
// schemas, a bare string which is taken as English.
func translations(n *tree.Node) Translations {
	t := Translations{}

	if s, ok := n.StringValue(); ok {
		if s != "" {
			t["english"] = s
		}

		return t
	}

	for lang, text := range n.Entries() {
		if s, ok := text.StringValue(); ok {
			t[lang] = s
		}
	}

	return t
}

func rawText(n *tree.Node) string {
	if s, ok := n.StringValue(); ok {
		return s
	}

	if num, ok := n.TryNumber(); ok {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}

	return n.Kind().String()
}
