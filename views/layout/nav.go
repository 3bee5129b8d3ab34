package layout

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/shell"
	h "github.com/eclipse-robotics/vexu-site/views/helpers"
)

// Navigation renders the fixed bar. Both class sets are carried as data
// attributes so the scroll listener can switch at shell.ScrollThreshold.
func Navigation(site *content.Site, st shell.State) templ.Component {
	return h.Component(func(w *h.Writer) {
		w.Rawf(`<nav id="site-nav" class="%s" data-class-top="%s" data-class-scrolled="%s" data-scroll-threshold="%s">`,
			h.Esc(shell.NavClasses(st.Scrolled)),
			h.Esc(shell.NavClasses(false)),
			h.Esc(shell.NavClasses(true)),
			strconv.Itoa(shell.ScrollThreshold),
		)
		w.Raw(`<div class="max-w-7xl mx-auto px-6 flex justify-between items-center">`)

		w.Rawf(`<button type="button" class="flex items-center space-x-2 cursor-pointer group" %s>`, PanelTarget(shell.PanelHome))
		w.Render(Logo("h-10 w-auto text-white group-hover:text-blue-400 transition-colors"))
		w.Raw(`<span class="hidden sm:block text-xl font-black tracking-tighter ml-2 italic text-white uppercase">VEX <span class="text-blue-500">U</span></span>`)
		w.Raw(`</button>`)

		w.Render(NavLinks(st.Active, false))

		w.Raw(`<div class="flex items-center gap-4">`)
		w.Rawf(`<a href="%s" target="_blank" rel="noopener noreferrer" class="text-gray-400 hover:text-pink-500 transition-colors" aria-label="Instagram">%s</a>`,
			h.Href(site.Contact.InstagramURL), h.Icon("instagram", 20, ""))
		w.Rawf(`<button type="button" %s class="bg-blue-600 hover:bg-blue-500 text-white px-5 py-2 rounded font-black text-[10px] uppercase tracking-wider transition-all active:scale-95 shadow-lg shadow-blue-900/20">Sponsor</button>`,
			PanelTarget(shell.PanelSponsorship))
		w.Raw(`</div></div></nav>`)
	})
}

// NavLinks renders the four panel buttons with the active one highlighted.
// With oob set, the block replaces the existing links when returned
// alongside a panel fragment.
func NavLinks(active shell.Panel, oob bool) templ.Component {
	return h.Component(func(w *h.Writer) {
		swap := ""
		if oob {
			swap = ` hx-swap-oob="true"`
		}
		w.Rawf(`<div id="nav-links" class="hidden md:flex space-x-8 text-xs font-bold tracking-widest uppercase"%s>`, swap)
		for _, p := range shell.Panels() {
			current := ""
			if p == active {
				current = ` aria-current="page"`
			}
			w.Rawf(`<button type="button" %s class="%s"%s>%s</button>`,
				PanelTarget(p), h.Esc(shell.NavItemClasses(p == active)), current, h.Esc(p.String()))
		}
		w.Raw(`</div>`)
	})
}
