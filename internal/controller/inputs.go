package controller

import (
	"fmt"
	"strings"

	"emucfg/internal/common"
	"emucfg/tree"
)

// walkInputs collects the binding strings under the group's inputs:
//
//	inputs/<button>/activators/<press type>/bindings/binding
//
// Every level may be an array of objects. Each binding registers its action
// with forced, or with the button's code in km when forced is empty.
func (b *binder) walkInputs(km keymap, forced string) {
	for _, inputs := range b.group.Get("inputs").Elements() {
		for button, buttonValue := range inputs.Entries() {
			for _, binding := range collectBindings(buttonValue) {
				b.bind(button, binding, km, forced)
			}
		}
	}
}

// collectBindings returns the strings found four object levels below n
// under keys named "binding".
func collectBindings(n *tree.Node) []string {
	var out []string

	level := []*tree.Node{n}
	for depth := 0; depth < 3; depth++ {
		var next []*tree.Node

		for _, node := range level {
			for _, obj := range node.Elements() {
				for _, child := range obj.Entries() {
					next = append(next, child)
				}
			}
		}

		level = next
	}

	for _, node := range level {
		for _, obj := range node.Elements() {
			for key, value := range obj.Entries() {
				if !strings.EqualFold(key, "binding") {
					continue
				}

				for _, s := range value.Elements() {
					out = append(out, s.AsString())
				}
			}
		}
	}

	return out
}

// bind parses one binding instruction such as
// "game_action ui ui_advpage0, Route Advisor" or
// "xinput_button TRIGGER_LEFT, Brake".
func (b *binder) bind(button, instruction string, km keymap, forced string) {
	path := b.path() + "/inputs/" + button
	fields := strings.Fields(instruction)

	if len(fields) < 2 {
		b.diags.AddInfo(CodeShortBinding,
			fmt.Sprintf("binding %q has no action", instruction), b.preset, path)

		return
	}

	var action string

	switch kind := fields[0]; {
	case strings.EqualFold(kind, "game_action"):
		if len(fields) < 3 {
			b.diags.AddInfo(CodeShortBinding,
				fmt.Sprintf("binding %q has no action", instruction), b.preset, path)

			return
		}

		action = fields[2]
	case strings.EqualFold(kind, "xinput_button"):
		action = fields[1]
	default:
		b.diags.AddInfo(CodeUnsupportedBinding,
			fmt.Sprintf("unsupported binding type %q", kind), b.preset, path)

		return
	}

	action = strings.TrimSuffix(action, ",")
	if action == "" {
		b.diags.AddInfo(CodeShortBinding,
			fmt.Sprintf("binding %q has no action", instruction), b.preset, path)

		return
	}

	code := forced
	if code == "" {
		mapped, ok := km[strings.ToLower(button)]
		if !ok {
			msg := fmt.Sprintf("no binding code for button %q", button)
			if guess, ok := common.Closest(button, km.buttons()); ok {
				msg += fmt.Sprintf(", did you mean %q?", guess)
			}

			b.diags.AddInfo(CodeUnmappedButton, msg, b.preset, path)

			return
		}

		code = mapped
	}

	b.actions.set(action).Add(code)
}
