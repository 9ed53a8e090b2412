package controller

import (
	"slices"
	"strings"
)

// DefaultSupportedTypes lists the controller types emulators can consume.
var DefaultSupportedTypes = []string{
	"controller_xbox360",
	"controller_xboxone",
	"controller_steamcontroller_gordon",
	"controller_ps5",
	"controller_ps4",
	"controller_switch_pro",
	"controller_neptune",
}

// SelectConfig returns the first config of a supported type that is enabled
// on the "default" branch. An empty supportedTypes means DefaultSupportedTypes.
func SelectConfig(configs []Config, supportedTypes []string) (Config, bool) {
	if len(supportedTypes) == 0 {
		supportedTypes = DefaultSupportedTypes
	}

	for _, cfg := range configs {
		supported := slices.ContainsFunc(supportedTypes, func(t string) bool {
			return strings.EqualFold(t, cfg.Type)
		})
		if !supported {
			continue
		}

		if slices.ContainsFunc(cfg.EnabledBranches, func(br string) bool {
			return strings.EqualFold(br, defaultPreset)
		}) {
			return cfg, true
		}
	}

	return Config{}, false
}
