package subset

import (
	"array-subset/container"
)

// Overlay returns a copy of base with overlay applied on top of it.
//
// For every key of overlay, the value replaces the one in base unless both
// are containers, in which case they are overlaid recursively. Keys only in
// base keep their position; keys only in overlay are appended. Neither
// argument is modified and the result shares no container with them.
func Overlay(base, overlay *container.Container) *container.Container {
	out := base.Clone()
	overlayInto(out, overlay)

	return out
}

func overlayInto(dst, overlay *container.Container) {
	for k, v := range overlay.All() {
		if nested, ok := v.(*container.Container); ok {
			if current, found := dst.Get(k); found {
				if target, isContainer := current.(*container.Container); isContainer {
					overlayInto(target, nested)
					continue
				}
			}

			v = nested.Clone()
		}

		dst.Set(k, v)
	}
}
