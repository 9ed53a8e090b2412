package stats

import (
	"fmt"
	"sort"

	"emucfg/internal/diagnostic"
	"emucfg/tree"
)

// StatType is the value type of a stat.
type StatType int

const (
	StatInt StatType = iota + 1
	StatFloat
	StatAverageRate
)

func (t StatType) String() string {
	switch t {
	case StatInt:
		return "int"
	case StatFloat:
		return "float"
	case StatAverageRate:
		return "avgrate"
	default:
		return fmt.Sprintf("StatType(%d)", int(t))
	}
}

func (t StatType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Stat is a single stat definition.
// Absent bounds are reported as -Inf/+Inf with HasMin/HasMax unset.
type Stat struct {
	ID                  int      `yaml:"id"`
	Name                string   `yaml:"name"`
	DisplayName         string   `yaml:"display_name,omitempty"`
	Type                StatType `yaml:"type"`
	MinValue            float64  `yaml:"min"`
	MaxValue            float64  `yaml:"max"`
	DefaultValue        float64  `yaml:"default"`
	HasMin              bool     `yaml:"has_min"`
	HasMax              bool     `yaml:"has_max"`
	MaxChangesPerUpdate int      `yaml:"max_changes"`
	// Permission is the raw read/write permission code, -1 when absent.
	Permission    int     `yaml:"permission"`
	IncrementOnly bool    `yaml:"increment_only"`
	Aggregated    bool    `yaml:"aggregated"`
	GlobalTotal   float64 `yaml:"global_total"`
}

// Translations maps a language name to text.
type Translations map[string]string

// Languages returns the languages in sorted order.
func (t Translations) Languages() []string {
	langs := make([]string, 0, len(t))
	for lang := range t {
		langs = append(langs, lang)
	}

	sort.Strings(langs)

	return langs
}

// Icon references an achievement image by its name in the schema.
type Icon struct {
	Name       string `yaml:"name"`
	NameOnDisk string `yaml:"name_on_disk"`
}

// Achievement is a single achievement definition.
type Achievement struct {
	ID           int          `yaml:"id"`
	Name         string       `yaml:"name"`
	Hidden       bool         `yaml:"hidden"`
	DisplayName  Translations `yaml:"display_name"`
	Description  Translations `yaml:"description"`
	IconUnlocked Icon         `yaml:"icon"`
	IconLocked   Icon         `yaml:"icon_gray"`
	// Progress is the schema's progress block, kept as is.
	Progress *tree.Node `yaml:"progress,omitempty"`
}

// Result is the outcome of one extraction.
type Result struct {
	Stats        []Stat
	Achievements []Achievement
	Diagnostics  diagnostic.Diagnostics
}
