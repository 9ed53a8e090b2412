package controller

import (
	"maps"
	"slices"
)

type keymap map[string]string

func (km keymap) buttons() []string {
	return slices.Sorted(maps.Keys(km))
}

var digitalKeymap = keymap{
	"button_a":                "A",
	"button_b":                "B",
	"button_x":                "X",
	"button_y":                "Y",
	"dpad_north":              "DUP",
	"dpad_south":              "DDOWN",
	"dpad_east":               "DRIGHT",
	"dpad_west":               "DLEFT",
	"button_escape":           "START",
	"button_menu":             "BACK",
	"left_bumper":             "LBUMPER",
	"right_bumper":            "RBUMPER",
	"button_back_left":        "Y",
	"button_back_right":       "A",
	"button_back_left_upper":  "X",
	"button_back_right_upper": "B",
}

var leftJoystickKeymap = keymap{
	"dpad_north": "DLJOYUP",
	"dpad_south": "DLJOYDOWN",
	"dpad_west":  "DLJOYLEFT",
	"dpad_east":  "DLJOYRIGHT",
	"click":      "LSTICK",
}

var rightJoystickKeymap = keymap{
	"dpad_north": "DRJOYUP",
	"dpad_south": "DRJOYDOWN",
	"dpad_west":  "DRJOYLEFT",
	"dpad_east":  "DRJOYRIGHT",
	"click":      "RSTICK",
}

// Control types found in group_source_bindings. "dpad" is both a digital
// and a joystick control.
var (
	digitalControls  = map[string]bool{"switch": true, "button_diamond": true, "dpad": true}
	triggerControls  = map[string]bool{"left_trigger": true, "right_trigger": true}
	joystickControls = map[string]bool{"joystick": true, "right_joystick": true, "dpad": true}
)
