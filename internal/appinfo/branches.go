package appinfo

import (
	"time"

	"emucfg/tree"
)

// Branch is one entry of depots.branches.
type Branch struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Protected   bool   `yaml:"protected"`
	BuildID     uint32 `yaml:"build_id"`
	TimeUpdated uint64 `yaml:"time_updated"`
}

// Branches reads depots.branches. A missing timeupdated becomes now.
func Branches(depots *tree.Node, now time.Time) []Branch {
	var out []Branch

	for name, b := range depots.Get("branches").Entries() {
		updated := b.Get("timeupdated").AsNumber()
		if updated <= 0 {
			updated = float64(now.Unix())
		}

		out = append(out, Branch{
			Name:        name,
			Description: b.Get("description").AsString(),
			Protected:   b.Get("pwdrequired").AsBool(),
			BuildID:     appID(b.Get("buildid")),
			TimeUpdated: uint64(updated),
		})
	}

	return out
}
