package appinfo

import (
	"fmt"
	"strconv"

	"emucfg/internal/common"
	"emucfg/tree"
)

// entitlements keeps entitlements in first-seen order. Adding an id again
// replaces the stored entry.
type entitlements struct {
	index map[uint32]int
	items []Entitlement
}

func (e *entitlements) add(ent Entitlement) {
	if ent.AppID == 0 {
		return
	}

	if e.index == nil {
		e.index = make(map[uint32]int)
	}

	if i, ok := e.index[ent.AppID]; ok {
		e.items[i] = ent
		return
	}

	e.index[ent.AppID] = len(e.items)
	e.items = append(e.items, ent)
}

func (e *entitlements) addDLC(id uint32, source string) {
	e.add(placeholder(id, fmt.Sprintf("Unknown DLC (%s - appid %d)", source, id)))
}

// DLCs collects DLC ids from the app details dlc list, extended.listofdlc,
// the launch entries' config.ownsdlc and the depots' dlcappid and
// config.optionaldlc. A later source relabels ids found earlier.
// details may be nil when no store details are available.
func DLCs(details, info *tree.Node) []Entitlement {
	var dlcs entitlements

	for _, id := range details.Get("dlc").AsArray() {
		dlcs.addDLC(appID(id), "common")
	}

	for _, s := range common.SplitList(info.Get("extended", "listofdlc").AsString(), ",") {
		if id, err := strconv.ParseUint(s, 10, 32); err == nil {
			dlcs.addDLC(uint32(id), "extended")
		}
	}

	for _, launch := range LaunchConfig(info).All() {
		dlcs.addDLC(appID(launch.Get("config", "ownsdlc")), "launch config")
	}

	depots := info.Get("depots").AsObject()

	for _, depot := range depots.All() {
		dlcs.addDLC(appID(depot.Get("dlcappid")), "depot")
	}

	for _, depot := range depots.All() {
		dlcs.addDLC(appID(depot.Get("config", "optionaldlc")), "depot optional")
	}

	return dlcs.items
}

// Demos reads the demos list of the app details.
func Demos(details *tree.Node) []Entitlement {
	var demos entitlements

	for _, demo := range details.Get("demos").AsArray() {
		id := appID(demo.Get("appid"))
		demos.add(placeholder(id, fmt.Sprintf("Unknown demo (appid %d)", id)))
	}

	return demos.items
}
