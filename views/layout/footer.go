package layout

import (
	"github.com/a-h/templ"
	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/shell"
	h "github.com/eclipse-robotics/vexu-site/views/helpers"
)

const logoSVG = `<svg viewBox="0 0 400 200" class="%s" fill="currentColor" role="img" aria-label="Eclipse Robotics">` +
	`<path d="M115,75 C115,30 160,10 230,10 C185,25 155,50 155,75 L115,75 Z"/>` +
	`<path d="M115,125 C115,170 160,190 230,190 C185,175 155,150 155,125 L115,125 Z"/>` +
	`<circle cx="130" cy="45" r="1.5" fill="white"/><circle cx="140" cy="30" r="1.2" fill="white"/><circle cx="125" cy="60" r="1" fill="white"/>` +
	`<circle cx="135" cy="140" r="1.5" fill="white"/><circle cx="148" cy="160" r="1.2" fill="white"/><circle cx="128" cy="130" r="1" fill="white"/>` +
	`<text x="60" y="112" font-family="Arial Black, sans-serif" font-weight="900" font-size="56" letter-spacing="-3" font-style="italic">ECLIPSE</text>` +
	`</svg>`

// Logo renders the Eclipse wordmark.
func Logo(class string) templ.Component {
	return h.Component(func(w *h.Writer) {
		w.Rawf(logoSVG, h.Esc(class))
	})
}

func Footer(site *content.Site) templ.Component {
	return h.Component(func(w *h.Writer) {
		w.Raw(`<footer class="py-20 bg-zinc-950 border-t border-white/5 mt-20">`)
		w.Raw(`<div class="max-w-7xl mx-auto px-6 flex flex-col md:flex-row justify-between items-center gap-12">`)

		w.Raw(`<div class="flex flex-col items-center md:items-start gap-4">`)
		w.Render(Logo("h-10 w-auto text-white"))
		w.Rawf(`<p class="text-zinc-600 text-[9px] font-black tracking-[0.5em] uppercase text-center md:text-left italic">%s</p>`, h.Esc(site.Team.Footer))
		w.Raw(`</div>`)

		w.Raw(`<div class="flex flex-wrap justify-center gap-x-12 gap-y-4 text-zinc-500 text-[10px] font-black uppercase tracking-widest italic">`)
		for _, p := range shell.Panels() {
			w.Rawf(`<button type="button" %s class="hover:text-blue-500 transition-colors">%s</button>`, PanelTarget(p), h.Esc(p.Label()))
		}
		w.Raw(`</div>`)

		w.Raw(`<div class="flex gap-6 text-zinc-400">`)
		w.Rawf(`<a href="%s" target="_blank" rel="noopener noreferrer" class="hover:text-pink-500 transition-colors" aria-label="Instagram">%s</a>`,
			h.Href(site.Contact.InstagramURL), h.Icon("instagram", 24, ""))
		w.Rawf(`<button type="button" %s class="hover:text-white transition-colors" aria-label="The Team">%s</button>`,
			PanelTarget(shell.PanelTeam), h.Icon("trophy", 24, ""))
		w.Raw(`</div>`)

		w.Raw(`</div></footer>`)
	})
}
