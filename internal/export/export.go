// Package export writes extraction results to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"emucfg/internal/appinfo"
	"emucfg/internal/common"
	"emucfg/internal/controller"
	"emucfg/internal/diagnostic"
	"emucfg/internal/stats"
	"emucfg/tree"
)

// PresetFileName returns the file name used for a preset.
func PresetFileName(preset string) string {
	name := common.SanitizeFilename(preset)
	if name == "" {
		name = common.UnknownStr
	}

	return name + ".txt"
}

// FormatPreset renders one preset as "action=code1,code2" lines, sorted by
// action with sorted codes.
func FormatPreset(actions controller.Actions) []byte {
	var sb strings.Builder

	for _, action := range actions.Names() {
		sb.WriteString(action)
		sb.WriteByte('=')
		sb.WriteString(strings.Join(actions[action].Codes(), ","))
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}

// WritePresets writes one <preset>.txt file per preset into dir and returns
// the written paths. Nothing is created when presets is empty.
func WritePresets(dir string, presets controller.Presets) ([]string, error) {
	if len(presets) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preset dir %s: %w", dir, err)
	}

	paths := make([]string, 0, len(presets))

	for _, name := range presets.Names() {
		path := filepath.Join(dir, PresetFileName(name))
		if err := os.WriteFile(path, FormatPreset(presets[name]), 0o644); err != nil {
			return paths, fmt.Errorf("failed to write preset file %s: %w", path, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}

// WriteTreeJSON writes a normalized tree as compact JSON, keys in order.
func WriteTreeJSON(path string, n *tree.Node) error {
	data, err := n.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dir for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write tree file %s: %w", path, err)
	}

	return nil
}

// Report is the YAML summary of one input file.
type Report struct {
	Source        string                 `yaml:"source"`
	Name          string                 `yaml:"name,omitempty"`
	Languages     []string               `yaml:"languages,omitempty"`
	Depots        []uint32               `yaml:"depots,omitempty"`
	Branches      []appinfo.Branch       `yaml:"branches,omitempty"`
	DLCs          []appinfo.Entitlement  `yaml:"dlcs,omitempty"`
	Demos         []appinfo.Entitlement  `yaml:"demos,omitempty"`
	SaveFiles     []appinfo.SaveFile     `yaml:"save_files,omitempty"`
	RootOverrides []appinfo.RootOverride `yaml:"root_overrides,omitempty"`
	Stats         []stats.Stat           `yaml:"stats,omitempty"`
	Achievements  []stats.Achievement    `yaml:"achievements,omitempty"`
	Presets       map[string][]string    `yaml:"presets,omitempty"`
	Diagnostics   []string               `yaml:"diagnostics,omitempty"`
}

// AddPresets records the action names of every preset.
func (r *Report) AddPresets(presets controller.Presets) {
	if len(presets) == 0 {
		return
	}

	if r.Presets == nil {
		r.Presets = make(map[string][]string, len(presets))
	}

	for name, actions := range presets {
		r.Presets[name] = actions.Names()
	}
}

// AddDiagnostics records diagnostics in their printed form.
func (r *Report) AddDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		r.Diagnostics = append(r.Diagnostics, d.String())
	}
}

// WriteReport writes r as YAML.
func WriteReport(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dir for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
