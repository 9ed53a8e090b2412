package stats

import "sort"

// IconRef is one distinct icon and the achievements that use it.
type IconRef struct {
	Icon  Icon
	Users []string
}

// UniqueIcons lists every distinct icon name once, in first-seen order,
// so each image is fetched a single time.
func UniqueIcons(achievements []Achievement) []IconRef {
	var refs []IconRef

	index := make(map[string]int)

	add := func(icon Icon, user string) {
		if icon.Name == "" {
			return
		}

		if i, ok := index[icon.Name]; ok {
			refs[i].Users = append(refs[i].Users, user)
			return
		}

		index[icon.Name] = len(refs)
		refs = append(refs, IconRef{Icon: icon, Users: []string{user}})
	}

	for _, ach := range achievements {
		add(ach.IconUnlocked, ach.Name)
		add(ach.IconLocked, ach.Name)
	}

	return refs
}

// Languages lists, sorted, every language any achievement has a display name
// or description in.
func Languages(achievements []Achievement) []string {
	seen := make(map[string]struct{})

	var langs []string
	for _, ach := range achievements {
		for _, lang := range append(ach.DisplayName.Languages(), ach.Description.Languages()...) {
			if _, ok := seen[lang]; ok {
				continue
			}

			seen[lang] = struct{}{}
			langs = append(langs, lang)
		}
	}

	sort.Strings(langs)

	return langs
}
