package appinfo

import (
	"strconv"
	"strings"

	"emucfg/internal/common"
	"emucfg/internal/controller"
	"emucfg/tree"
)

// ControllerConfigs lists the controller configurations published for the
// product and then for each demo. Touch configurations come before regular
// ones; the first occurrence of an id wins.
func ControllerConfigs(info *tree.Node, demos ...*tree.Node) []controller.Config {
	var out []controller.Config

	seen := make(map[uint64]bool)

	sources := []*tree.Node{
		info.Get("config", "steamcontrollertouchconfigdetails"),
		info.Get("config", "steamcontrollerconfigdetails"),
	}
	for _, demo := range demos {
		sources = append(sources, demo.Get("config", "steamcontrollertouchconfigdetails"))
	}
	for _, demo := range demos {
		sources = append(sources, demo.Get("config", "steamcontrollerconfigdetails"))
	}

	for _, src := range sources {
		for key, details := range src.Entries() {
			id, err := strconv.ParseUint(strings.TrimSpace(key), 10, 64)
			if err != nil || id == 0 || seen[id] {
				continue
			}

			seen[id] = true
			out = append(out, controller.Config{
				ID:              id,
				Type:            details.Get("controller_type").AsString(),
				EnabledBranches: common.SplitList(details.Get("enabled_branches").AsString(), ","),
				UseActionBlock:  details.Get("use_action_block").AsBool(),
			})
		}
	}

	return out
}
