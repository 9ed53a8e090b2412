package controller

import (
	"fmt"
	"strconv"
	"strings"

	"emucfg/internal/diagnostic"
	"emucfg/tree"
)

// Diagnostic codes reported by Extract.
const (
	CodeBadGroupID          = "bad-group-id"
	CodeDuplicateGroupID    = "duplicate-group-id"
	CodeUnknownTriggerMode  = "unknown-trigger-mode"
	CodeUnknownJoystickMode = "unknown-joystick-mode"
	CodeUnsupportedBinding  = "unsupported-binding"
	CodeShortBinding        = "short-binding"
	CodeUnmappedButton      = "unmapped-button"
	CodeMissingGameAction   = "missing-game-action"
)

const defaultPreset = "default"

// extractor holds the state of a single Extract call.
type extractor struct {
	groups  map[uint32]*tree.Node
	filter  map[string]bool
	diags   diagnostic.Diagnostics
	presets Presets
}

// Extract reads the presets of a controller configuration. root is either
// a document holding "controller_mappings" or the mappings object itself.
func Extract(root *tree.Node) Result {
	mappings := root
	if m := root.Get("controller_mappings"); m != nil {
		mappings = m
	}

	e := &extractor{
		groups:  make(map[uint32]*tree.Node),
		filter:  make(map[string]bool),
		presets: Presets{},
	}

	e.indexGroups(mappings.Get("group"))

	for _, category := range mappings.Get("actions").Elements() {
		for name := range category.Entries() {
			e.filter[strings.ToUpper(name)] = true
		}
	}

	for _, preset := range mappings.Get("preset").Elements() {
		e.readPreset(preset)
	}

	return Result{Presets: e.presets, Diagnostics: e.diags}
}

func (e *extractor) indexGroups(groups *tree.Node) {
	for i, group := range groups.Elements() {
		path := fmt.Sprintf("group[%d]", i)

		num, ok := group.Get("id").TryNumber()
		if !ok || num < 0 || num > float64(^uint32(0)) || num != float64(uint32(num)) {
			e.diags.AddWarning(CodeBadGroupID, "group without a valid id ignored", "", path)
			continue
		}

		id := uint32(num)
		if _, dup := e.groups[id]; dup {
			e.diags.AddWarning(CodeDuplicateGroupID,
				fmt.Sprintf("group id %d defined again, first definition kept", id), "", path)

			continue
		}

		e.groups[id] = group
	}
}

func (e *extractor) accepts(preset string) bool {
	if len(e.filter) == 0 || strings.EqualFold(preset, defaultPreset) {
		return true
	}

	return e.filter[strings.ToUpper(preset)]
}

func (e *extractor) readPreset(preset *tree.Node) {
	name := preset.Get("name").AsString()
	if !e.accepts(name) {
		return
	}

	actions := Actions{}

	for key, source := range preset.Get("group_source_bindings").Entries() {
		fields := strings.Fields(source.AsString())
		if len(fields) < 2 || !strings.EqualFold(fields[1], "active") {
			continue
		}

		id, err := strconv.ParseUint(strings.TrimSpace(key), 10, 32)
		group, ok := e.groups[uint32(id)]
		if err != nil || !ok {
			e.diags.AddWarning(CodeBadGroupID,
				fmt.Sprintf("group source binding %q has no matching group", key),
				name, "group_source_bindings/"+key)

			continue
		}

		b := &binder{
			extractor: e,
			preset:    name,
			control:   strings.ToLower(fields[0]),
			groupID:   uint32(id),
			group:     group,
			actions:   actions,
		}

		if digitalControls[b.control] {
			b.walkInputs(digitalKeymap, "")
		}

		if triggerControls[b.control] {
			b.trigger()
		}

		if joystickControls[b.control] {
			b.joystick()
		}
	}

	e.presets[name] = actions
}

// binder applies one active group to the actions of a preset.
type binder struct {
	*extractor

	preset  string
	control string
	groupID uint32
	group   *tree.Node
	actions Actions
}

func (b *binder) trigger() {
	mode := b.group.Get("mode").AsString()
	if !strings.EqualFold(mode, "trigger") {
		b.diags.AddInfo(CodeUnknownTriggerMode,
			fmt.Sprintf("group %d has unknown trigger mode %q", b.groupID, mode), b.preset, b.path())

		return
	}

	coarse, fine := "RTRIGGER", "DRTRIGGER"
	if b.control == "left_trigger" {
		coarse, fine = "LTRIGGER", "DLTRIGGER"
	}

	b.coarseAndFine(coarse, "trigger", fine)
}

func (b *binder) joystick() {
	mode := b.group.Get("mode").AsString()

	switch strings.ToLower(mode) {
	case "joystick_move":
		var coarse, fine string

		switch b.control {
		case "joystick":
			coarse, fine = "LJOY", "LSTICK"
		case "right_joystick":
			coarse, fine = "RJOY", "RSTICK"
		default:
			coarse, fine = "DPAD", "RSTICK"
		}

		b.coarseAndFine(coarse, "joystick_move", fine)
	case "dpad":
		switch b.control {
		case "joystick":
			b.walkInputs(leftJoystickKeymap, "")
		case "right_joystick":
			b.walkInputs(rightJoystickKeymap, "")
		}
	default:
		b.diags.AddInfo(CodeUnknownJoystickMode,
			fmt.Sprintf("group %d has unknown joystick mode %q", b.groupID, mode), b.preset, b.path())
	}
}

// coarseAndFine visits the group's children in order: "gameactions" names
// the action getting the coarse code, "inputs" is walked with the fine code
// forced on every binding.
func (b *binder) coarseAndFine(coarse, mode, fine string) {
	for key, value := range b.group.Entries() {
		switch {
		case strings.EqualFold(key, "gameactions"):
			action := value.Get(b.preset).AsString()
			if action == "" {
				b.diags.AddInfo(CodeMissingGameAction,
					fmt.Sprintf("no game action for preset %q", b.preset), b.preset, b.path()+"/gameactions")

				continue
			}

			set := b.actions.set(action)
			if !set.Has(coarse) && !set.Has(coarse+"="+mode) {
				set.Add(coarse)
			}
		case strings.EqualFold(key, "inputs"):
			b.walkInputs(digitalKeymap, fine)
		}
	}
}

func (b *binder) path() string {
	return fmt.Sprintf("group/%d", b.groupID)
}
