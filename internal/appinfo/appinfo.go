// Package appinfo reads product metadata from normalized product-info and
// store app-details trees.
package appinfo

import (
	"math"
	"strconv"
	"strings"

	"emucfg/internal/common"
	"emucfg/tree"
)

// Entitlement is a DLC or demo owned through the product.
type Entitlement struct {
	AppID       uint32 `yaml:"appid"`
	NameInStore string `yaml:"name"`
	NameOnDisk  string `yaml:"name_on_disk"`
}

// placeholder names an entitlement until its own product info is known.
func placeholder(id uint32, name string) Entitlement {
	return Entitlement{AppID: id, NameInStore: name, NameOnDisk: common.SanitizeFilename(name)}
}

// Name returns the store name and its file-system safe form.
func Name(info *tree.Node) (inStore, onDisk string) {
	inStore = info.Get("common", "name").AsString()

	return inStore, common.SanitizeFilename(inStore)
}

// SupportedLanguages merges common.languages, common.supported_languages and
// depots.baselanguages. Duplicates differing only in case keep the first
// spelling.
func SupportedLanguages(info *tree.Node) []string {
	var langs []string

	for lang, enabled := range info.Get("common", "languages").Entries() {
		if enabled.AsBool() {
			langs = append(langs, lang)
		}
	}

	for lang, entry := range info.Get("common", "supported_languages").Entries() {
		if entry.Get("supported").AsBool() {
			langs = append(langs, lang)
		}
	}

	langs = append(langs, common.SplitList(info.Get("depots", "baselanguages").AsString(), ",")...)

	trimmed := make([]string, 0, len(langs))
	for _, lang := range langs {
		if lang = strings.TrimSpace(lang); lang != "" {
			trimmed = append(trimmed, lang)
		}
	}

	return common.DedupFold(trimmed)
}

// LaunchConfig returns config.launch, an object keyed by launch entry index.
func LaunchConfig(info *tree.Node) *tree.Object {
	return info.Get("config", "launch").AsObject()
}

// Depots returns the numeric keys of the depots object in order.
func Depots(info *tree.Node) []uint32 {
	var ids []uint32

	seen := make(map[uint32]bool)

	for key := range info.Get("depots").Entries() {
		id, err := strconv.ParseUint(strings.TrimSpace(key), 10, 32)
		if err != nil || id == 0 || seen[uint32(id)] {
			continue
		}

		seen[uint32(id)] = true
		ids = append(ids, uint32(id))
	}

	return ids
}

// appID reads an app id the lenient way ids are stored: numbers or numeric
// strings. Anything unusable is 0.
func appID(n *tree.Node) uint32 {
	num := n.AsNumber()
	if num <= 0 || num > math.MaxUint32 {
		return 0
	}

	return uint32(num)
}
