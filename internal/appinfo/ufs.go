package appinfo

import (
	"fmt"
	"strings"

	"emucfg/internal/diagnostic"
	"emucfg/tree"
)

const (
	codeOverrideIncomplete = "ufs-override-incomplete"
	codeOverrideOSCompare  = "ufs-unknown-oscompare"
)

// SaveFile is one entry of ufs.savefiles: a location the game keeps save
// data in, relative to a named root.
type SaveFile struct {
	Root      string   `yaml:"root"`
	Path      string   `yaml:"path,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty"`
	Siblings  string   `yaml:"siblings,omitempty"`
	Recursive bool     `yaml:"recursive,omitempty"`
	Platforms []string `yaml:"platforms,omitempty"`
}

// PathTransform rewrites part of a save path under an overridden root.
type PathTransform struct {
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
}

// RootOverride replaces a save file root on one OS.
type RootOverride struct {
	Root           string          `yaml:"root"`
	UseInstead     string          `yaml:"use_instead"`
	OS             string          `yaml:"os"`
	AddPath        string          `yaml:"add_path,omitempty"`
	PathTransforms []PathTransform `yaml:"path_transforms,omitempty"`
}

// SaveFiles reads ufs.savefiles. Entries without a root are skipped.
func SaveFiles(info *tree.Node) []SaveFile {
	var out []SaveFile

	for _, item := range info.Get("ufs", "savefiles").Entries() {
		root := item.Get("root").AsString()
		if isBlank(root) {
			continue
		}

		out = append(out, SaveFile{
			Root:      root,
			Path:      item.Get("path").AsString(),
			Pattern:   item.Get("pattern").AsString(),
			Siblings:  item.Get("siblings").AsString(),
			Recursive: item.Get("recursive").AsBool(),
			Platforms: platforms(item.Get("platforms")),
		})
	}

	return out
}

func platforms(n *tree.Node) []string {
	var out []string

	seen := make(map[string]bool)
	for _, p := range n.Entries() {
		name := p.AsString()
		if isBlank(name) || seen[name] {
			continue
		}

		seen[name] = true
		out = append(out, name)
	}

	return out
}

// RootOverrides reads ufs.rootoverrides. Overrides only apply to save files,
// so there are none when SaveFiles is empty. Entries missing the root, the
// replacement or the OS are skipped with a warning; an oscompare other than
// "=" is reported but the entry is kept.
func RootOverrides(info *tree.Node) ([]RootOverride, diagnostic.Diagnostics) {
	var (
		out   []RootOverride
		diags diagnostic.Diagnostics
	)

	if len(SaveFiles(info)) == 0 {
		return nil, diags
	}

	for key, item := range info.Get("ufs", "rootoverrides").Entries() {
		path := "ufs/rootoverrides/" + key

		o := RootOverride{
			Root:       item.Get("root").AsString(),
			UseInstead: item.Get("useinstead").AsString(),
			OS:         item.Get("os").AsString(),
			AddPath:    item.Get("addpath").AsString(),
		}

		if isBlank(o.Root) || isBlank(o.UseInstead) || isBlank(o.OS) {
			diags.AddWarning(codeOverrideIncomplete, "override has an empty root, useinstead or os", key, path)
			continue
		}

		if cmp := item.Get("oscompare").AsString(); cmp != "=" {
			diags.AddWarning(codeOverrideOSCompare,
				fmt.Sprintf("override %s@%s >> %s has unknown OS comparison %q", o.Root, o.OS, o.UseInstead, cmp),
				key, path)
		}

		for _, t := range item.Get("pathtransforms").Entries() {
			o.PathTransforms = append(o.PathTransforms, PathTransform{
				Find:    t.Get("find").AsString(),
				Replace: t.Get("replace").AsString(),
			})
		}

		out = append(out, o)
	}

	return out, diags
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
