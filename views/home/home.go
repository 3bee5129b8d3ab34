package home

import (
	"github.com/a-h/templ"
	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/shell"
	feedview "github.com/eclipse-robotics/vexu-site/views/feed"
	h "github.com/eclipse-robotics/vexu-site/views/helpers"
	"github.com/eclipse-robotics/vexu-site/views/layout"
)

// Index renders the full page with st.Active in #main.
func Index(meta layout.PageMeta, site *content.Site, st shell.State) templ.Component {
	return layout.Base(meta, site, st, Panel(site, st.Active), feedview.Section(site))
}

// Fragment is the htmx response for a panel switch: the panel itself plus
// an out-of-band refresh of the nav highlight.
func Fragment(site *content.Site, p shell.Panel) templ.Component {
	return h.Component(func(w *h.Writer) {
		w.Render(Panel(site, p))
		w.Render(layout.NavLinks(p, true))
	})
}

// Panel renders the content for one panel.
func Panel(site *content.Site, p shell.Panel) templ.Component {
	switch p {
	case shell.PanelTeam:
		return Team(site)
	case shell.PanelSponsorship:
		return Sponsorship(site)
	case shell.PanelContact:
		return Contact(site)
	default:
		return Home(site)
	}
}

func panelOpen(w *h.Writer, p shell.Panel, class string) {
	w.Rawf(`<div data-panel="%s" class="%s">`, h.Esc(p.String()), h.Esc(class))
}

func heading(w *h.Writer, hd content.Heading, accent string) {
	w.Raw(`<div class="text-center mb-20">`)
	w.Rawf(`<h2 class="text-5xl md:text-7xl font-black mb-6 uppercase italic tracking-tighter">%s <span class="%s">%s</span></h2>`,
		h.Esc(hd.Title), h.Esc(accent), h.Esc(hd.Highlight))
	w.Rawf(`<p class="text-gray-400 max-w-2xl mx-auto text-lg italic font-light">%s</p>`, h.Esc(hd.Lead))
	w.Raw(`</div>`)
}

func Home(site *content.Site) templ.Component {
	return h.Component(func(w *h.Writer) {
		panelOpen(w, shell.PanelHome, "")

		w.Raw(`<section class="relative h-screen flex items-center justify-center overflow-hidden">`)
		w.Raw(`<div class="absolute inset-0 z-0 bg-gradient-to-b from-blue-900/30 via-black/60 to-black"></div>`)
		w.Raw(`<div class="relative z-10 text-center px-6 max-w-5xl">`)
		w.Rawf(`<div class="inline-flex items-center gap-2 px-3 py-1 rounded-full bg-blue-500/10 border border-blue-500/20 text-blue-400 text-[10px] font-black tracking-[0.2em] uppercase mb-8">%s</div>`,
			h.Esc(site.Team.Tagline))
		w.Render(layout.Logo("w-72 md:w-96 h-auto text-white mx-auto mb-8"))
		w.Rawf(`<h1 class="text-5xl md:text-8xl font-black mb-6 tracking-tighter uppercase italic leading-tight text-white">%s <span class="text-blue-500">%s</span></h1>`,
			h.Esc(site.Hero.Headline), h.Esc(site.Hero.Highlight))
		w.Rawf(`<p class="text-lg md:text-xl text-gray-400 mb-10 max-w-2xl mx-auto font-light leading-relaxed italic">%s</p>`, h.Esc(site.Hero.Lead))
		w.Raw(`<div class="flex flex-col sm:flex-row gap-4 justify-center">`)
		w.Rawf(`<button type="button" %s class="px-10 py-4 bg-white text-black font-black rounded-lg hover:bg-gray-200 transition-all active:scale-95 flex items-center justify-center gap-2">The Team %s</button>`,
			layout.PanelTarget(shell.PanelTeam), h.Icon("chevron-right", 20, ""))
		w.Rawf(`<button type="button" %s class="px-10 py-4 bg-white/5 border border-white/10 text-white font-bold rounded-lg hover:bg-white/10 transition-all active:scale-95">Sponsorship Packet</button>`,
			layout.PanelTarget(shell.PanelSponsorship))
		w.Raw(`</div></div></section>`)

		perf := site.Performance
		w.Raw(`<section class="py-24 bg-zinc-950"><div class="max-w-7xl mx-auto px-6"><div class="grid md:grid-cols-2 gap-16 items-center">`)
		w.Raw(`<div>`)
		w.Rawf(`<h2 class="text-4xl font-black mb-6 uppercase italic">%s</h2>`, h.Esc(perf.Title))
		w.Rawf(`<p class="text-gray-400 mb-8 leading-relaxed text-lg">%s</p>`, h.Esc(perf.Lead))
		w.Raw(`<div class="grid grid-cols-2 gap-4">`)
		for _, s := range perf.Stats {
			w.Rawf(`<div class="p-6 bg-white/5 rounded-2xl border border-white/10"><div class="text-3xl font-black text-blue-500 mb-1">%s</div><div class="text-[10px] text-gray-500 uppercase tracking-widest font-bold">%s</div></div>`,
				h.Esc(s.Value), h.Esc(s.Label))
		}
		w.Raw(`</div></div>`)
		w.Raw(`<div class="space-y-6">`)
		for _, f := range perf.Features {
			w.Rawf(`<div class="flex gap-4 p-6 bg-white/5 rounded-2xl border border-white/10"><div class="text-blue-400 shrink-0">%s</div><div><h3 class="font-black uppercase italic mb-2">%s</h3><p class="text-gray-400 text-sm leading-relaxed">%s</p></div></div>`,
				h.Icon(f.Icon, 28, ""), h.Esc(f.Title), h.Esc(f.Text))
		}
		w.Raw(`</div>`)
		w.Raw(`</div></div></section>`)

		w.Raw(`</div>`)
	})
}

func Team(site *content.Site) templ.Component {
	return h.Component(func(w *h.Writer) {
		panelOpen(w, shell.PanelTeam, "pt-32 pb-20 px-6 max-w-7xl mx-auto")
		heading(w, site.TeamPanel.Heading, "text-blue-500")
		w.Raw(`<div class="grid md:grid-cols-2 gap-8">`)
		for _, d := range site.TeamPanel.Disciplines {
			accent := "text-blue-400 border-blue-500/20"
			if d.Accent == "purple" {
				accent = "text-purple-400 border-purple-500/20"
			}
			w.Rawf(`<div class="%s">`, h.Esc(h.Classes("p-10 bg-zinc-900/50 rounded-3xl border", accent)))
			w.Rawf(`<div class="mb-6">%s</div>`, h.Icon(d.Icon, 40, ""))
			w.Rawf(`<h3 class="text-3xl font-black mb-4 uppercase italic text-white">%s</h3>`, h.Esc(d.Title))
			w.Rawf(`<p class="text-gray-400 leading-relaxed">%s</p>`, h.Esc(d.Text))
			w.Raw(`</div>`)
		}
		w.Raw(`</div></div>`)
	})
}

func Sponsorship(site *content.Site) templ.Component {
	return h.Component(func(w *h.Writer) {
		sp := site.Sponsorship
		panelOpen(w, shell.PanelSponsorship, "pt-32 pb-20 px-6 max-w-7xl mx-auto")
		heading(w, sp.Heading, "text-blue-500")

		// Packet download and quick view
		w.Raw(`<div class="mb-20 p-10 bg-gradient-to-br from-blue-600/20 to-purple-600/20 rounded-3xl border border-white/10">`)
		w.Raw(`<div class="flex flex-col md:flex-row justify-between items-start md:items-center gap-6 mb-10">`)
		w.Rawf(`<div><div class="text-[10px] font-black uppercase tracking-[0.3em] text-blue-400 mb-2">%s</div>`, h.Esc(sp.Goal))
		w.Rawf(`<h3 class="text-3xl font-black uppercase italic">Official Packet %s</h3></div>`, h.Icon("file-text", 28, "inline text-blue-400"))
		w.Rawf(`<a href="%s" download="%s" class="px-8 py-4 bg-white text-black font-black rounded-lg hover:bg-blue-500 hover:text-white transition-all flex items-center gap-2 uppercase tracking-widest text-xs">%s Download PDF</a>`,
			h.Href(site.Packet.Path), h.Esc(site.Packet.Filename), h.Icon("download", 18, ""))
		w.Raw(`</div>`)
		w.Raw(`<div class="grid sm:grid-cols-2 lg:grid-cols-4 gap-4">`)
		for i, pg := range sp.Pages {
			w.Raw(`<div class="p-6 bg-black/40 rounded-2xl border border-white/5">`)
			w.Rawf(`<div class="text-[10px] font-black text-zinc-600 mb-3">PAGE %s</div>`, h.FormatPageNumber(i+1))
			w.Rawf(`<h4 class="font-black uppercase italic mb-4">%s</h4><ul class="space-y-2">`, h.Esc(pg.Title))
			for _, item := range pg.Items {
				w.Rawf(`<li class="text-xs text-gray-400 flex items-center gap-2">%s %s</li>`, h.Icon("check", 12, "text-blue-500 shrink-0"), h.Esc(item))
			}
			w.Raw(`</ul></div>`)
		}
		w.Raw(`</div></div>`)

		// Budget
		w.Raw(`<div class="grid lg:grid-cols-2 gap-12 mb-20">`)
		w.Raw(`<div class="p-10 bg-zinc-900/50 rounded-3xl border border-white/10">`)
		w.Rawf(`<h3 class="text-2xl font-black uppercase italic mb-8 flex items-center gap-3">%s Budget Allocation</h3>`, h.Icon("target", 24, "text-blue-500"))
		w.Raw(`<div class="space-y-6">`)
		for _, b := range sp.Budget {
			w.Raw(`<div>`)
			w.Rawf(`<div class="flex justify-between items-center mb-2 text-sm"><span class="flex items-center gap-2 text-gray-300">%s %s</span><span class="font-black text-blue-400">%s</span></div>`,
				h.Icon(b.Icon, 16, "text-zinc-500"), h.Esc(b.Label), h.FormatPercentage(b.Share))
			w.Rawf(`<div class="h-2 bg-white/5 rounded-full overflow-hidden"><div class="h-full bg-gradient-to-r from-blue-600 to-purple-600 rounded-full" style="width: %s"></div></div>`,
				h.FormatPercentage(b.Share))
			w.Raw(`</div>`)
		}
		w.Raw(`</div></div>`)

		// Recognition channels
		w.Raw(`<div class="grid sm:grid-cols-2 gap-4">`)
		for _, ch := range sp.Channels {
			w.Rawf(`<div class="p-6 bg-white/5 rounded-2xl border border-white/10"><div class="text-blue-400 mb-4">%s</div><h4 class="font-black uppercase italic mb-2">%s</h4><p class="text-xs text-gray-400 leading-relaxed">%s</p></div>`,
				h.Icon(ch.Icon, 24, ""), h.Esc(ch.Title), h.Esc(ch.Text))
		}
		w.Raw(`</div></div>`)

		// In-kind and how to give
		w.Raw(`<div class="grid md:grid-cols-2 gap-8">`)
		w.Raw(`<div class="p-10 bg-zinc-900/50 rounded-3xl border border-white/10">`)
		w.Rawf(`<h3 class="text-2xl font-black uppercase italic mb-4 flex items-center gap-3">%s In-Kind Donations</h3>`, h.Icon("heart", 24, "text-pink-500"))
		w.Rawf(`<p class="text-gray-400 mb-6">%s</p><div class="flex flex-wrap gap-2">`, h.Esc(sp.InKind.Lead))
		for _, item := range sp.InKind.Items {
			w.Rawf(`<span class="px-4 py-2 bg-white/5 border border-white/10 rounded-full text-xs font-bold uppercase tracking-wider">%s</span>`, h.Esc(item))
		}
		w.Raw(`</div></div>`)
		w.Raw(`<div class="p-10 bg-zinc-900/50 rounded-3xl border border-white/10">`)
		w.Rawf(`<h3 class="text-2xl font-black uppercase italic mb-4 flex items-center gap-3">%s How To Support</h3><ul class="space-y-4">`, h.Icon("shield-check", 24, "text-blue-500"))
		for _, s := range sp.Support {
			w.Rawf(`<li class="flex items-start gap-3 text-gray-400">%s <span>%s</span></li>`, h.Icon("check-circle", 18, "text-blue-500 shrink-0 mt-0.5"), h.Esc(s))
		}
		w.Raw(`</ul>`)
		w.Rawf(`<button type="button" %s class="mt-8 px-8 py-4 bg-blue-600 hover:bg-blue-500 text-white font-black rounded-lg transition-all uppercase tracking-widest text-xs">Become A Sponsor</button>`,
			layout.PanelTarget(shell.PanelContact))
		w.Raw(`</div></div>`)

		w.Raw(`</div>`)
	})
}

func Contact(site *content.Site) templ.Component {
	return h.Component(func(w *h.Writer) {
		c := site.Contact
		panelOpen(w, shell.PanelContact, "pt-32 pb-20 px-6 max-w-5xl mx-auto")
		heading(w, site.ContactPage, "text-blue-500")

		w.Raw(`<div class="grid md:grid-cols-2 gap-8">`)
		w.Raw(`<div class="p-10 bg-zinc-900/50 rounded-3xl border border-white/10 space-y-6">`)
		w.Rawf(`<div class="flex items-center gap-3 text-blue-400">%s<span class="text-[10px] font-black uppercase tracking-[0.3em]">Email</span></div>`, h.Icon("mail", 20, ""))
		w.Rawf(`<a href="%s" class="block text-xl md:text-2xl font-black break-all hover:text-blue-400 transition-colors">%s</a>`, h.Href(c.Mailto()), h.Esc(c.Email))
		w.Rawf(`<div class="flex items-center gap-3 text-gray-400">%s<span>%s</span></div>`, h.Icon("users", 18, ""), h.Esc(c.Person))
		w.Rawf(`<div class="flex items-center gap-3 text-gray-400">%s<span>%s</span></div>`, h.Icon("phone", 18, ""), h.Esc(c.Phone))
		w.Raw(`<div class="flex flex-col sm:flex-row gap-3 pt-4">`)
		w.Rawf(`<a href="%s" class="px-6 py-3 bg-blue-600 hover:bg-blue-500 text-white font-black rounded-lg transition-all flex items-center justify-center gap-2 uppercase tracking-widest text-xs">%s Send Email</a>`,
			h.Href(c.Mailto()), h.Icon("mail", 16, ""))
		w.Rawf(`<button type="button" %s class="group px-6 py-3 bg-white/5 border border-white/10 hover:bg-white/10 text-white font-black rounded-lg transition-all flex items-center justify-center gap-2 uppercase tracking-widest text-xs">`,
			layout.CopyButtonAttrs(c.Email))
		w.Rawf(`<span class="flex items-center gap-2 group-data-[copied=true]:hidden">%s Copy Email</span>`, h.Icon("copy", 16, ""))
		w.Rawf(`<span class="hidden items-center gap-2 text-green-400 group-data-[copied=true]:flex">%s Copied!</span>`, h.Icon("check", 16, ""))
		w.Raw(`</button></div></div>`)

		w.Rawf(`<a href="%s" target="_blank" rel="noopener noreferrer" class="p-10 bg-gradient-to-br from-pink-600/20 to-purple-600/20 rounded-3xl border border-white/10 flex flex-col justify-between group hover:border-pink-500/40 transition-all">`,
			h.Href(c.InstagramURL))
		w.Rawf(`<div class="text-pink-500 mb-6">%s</div>`, h.Icon("instagram", 40, ""))
		w.Rawf(`<div><div class="text-[10px] font-black uppercase tracking-[0.3em] text-pink-400 mb-2">Follow The Build</div><div class="text-2xl font-black">%s</div></div>`,
			h.Esc(h.Handle(c.InstagramHandle)))
		w.Raw(`</a></div>`)

		w.Raw(`</div>`)
	})
}
