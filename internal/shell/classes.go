package shell

import twmerge "github.com/Oudwins/tailwind-merge-go"

const navBase = "fixed top-0 w-full z-50 transition-all duration-300 bg-transparent py-6"

// NavClasses returns the navigation bar classes: transparent at the top of
// the page, opaque and blurred once scrolled past ScrollThreshold.
func NavClasses(scrolled bool) string {
	if !scrolled {
		return twmerge.Merge(navBase)
	}
	return twmerge.Merge(navBase, "bg-black/95 backdrop-blur-md py-3 shadow-lg")
}

// NavClassesAt is NavClasses for a scroll offset.
func NavClassesAt(y int) string {
	return NavClasses(y >= ScrollThreshold)
}

// NavItemClasses styles a navigation button depending on whether it targets
// the active panel.
func NavItemClasses(active bool) string {
	const base = "uppercase transition-colors text-gray-400 hover:text-white"
	if active {
		return twmerge.Merge(base, "text-blue-400 hover:text-blue-400")
	}
	return twmerge.Merge(base)
}
