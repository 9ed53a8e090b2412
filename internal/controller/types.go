// Package controller turns a controller configuration tree into per-preset
// action bindings.
package controller

import (
	"slices"

	"emucfg/internal/diagnostic"
)

// BindingSet is a set of binding codes such as "A" or "RTRIGGER".
type BindingSet map[string]struct{}

func (s BindingSet) Add(code string) {
	s[code] = struct{}{}
}

func (s BindingSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Codes returns the codes in sorted order.
func (s BindingSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}

	slices.Sort(codes)

	return codes
}

// Actions maps an action name to its binding codes.
type Actions map[string]BindingSet

// Names returns the action names in sorted order.
func (a Actions) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (a Actions) set(action string) BindingSet {
	set, ok := a[action]
	if !ok {
		set = BindingSet{}
		a[action] = set
	}

	return set
}

// Presets maps a preset name to its actions.
type Presets map[string]Actions

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Result is the outcome of one extraction.
type Result struct {
	Presets     Presets
	Diagnostics diagnostic.Diagnostics
}

// Config describes one controller configuration published for a product.
type Config struct {
	ID              uint64
	Type            string
	EnabledBranches []string
	UseActionBlock  bool
}
