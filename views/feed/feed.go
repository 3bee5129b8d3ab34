package feed

import (
	"github.com/a-h/templ"
	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/feed"
	h "github.com/eclipse-robotics/vexu-site/views/helpers"
)

// UnavailableText is shown for both an empty and a failed feed.
const UnavailableText = "Feed temporarily unavailable"

// Section renders the feed panel in its loading state. The grid asks for
// /feed once when it is mounted and is replaced by the result.
func Section(site *content.Site) templ.Component {
	return h.Component(func(w *h.Writer) {
		w.Raw(`<section class="py-24 bg-zinc-950 border-t border-white/5"><div class="max-w-7xl mx-auto px-6">`)
		w.Raw(`<div class="flex justify-between items-end mb-12"><div>`)
		w.Rawf(`<h2 class="text-3xl font-bold flex items-center gap-3 italic uppercase text-white">%s Live Feed</h2>`, h.Icon("instagram", 24, "text-pink-500"))
		w.Rawf(`<p class="text-gray-500 mt-2">Latest from %s</p>`, h.Esc(h.Handle(site.Contact.InstagramHandle)))
		w.Raw(`</div>`)
		w.Rawf(`<a href="%s" target="_blank" rel="noopener noreferrer" class="text-blue-400 flex items-center gap-1 font-bold text-sm hover:underline">View All %s</a>`,
			h.Href(site.Contact.InstagramURL), h.Icon("external-link", 14, ""))
		w.Raw(`</div>`)
		w.Render(Loading())
		w.Raw(`</div></section>`)
	})
}

// Loading renders the skeleton grid that triggers the single feed request.
func Loading() templ.Component {
	return h.Component(func(w *h.Writer) {
		w.Rawf(`<div id="feed-grid" class="grid grid-cols-2 md:grid-cols-4 gap-4" data-feed-state="%s" hx-get="/feed" hx-trigger="load" hx-swap="outerHTML">`, feed.StateLoading)
		for i := 0; i < feed.MaxPosts; i++ {
			w.Rawf(`<div class="aspect-square bg-white/5 rounded-xl animate-pulse flex items-center justify-center">%s</div>`, h.Icon("camera", 32, "text-white/10"))
		}
		w.Raw(`</div>`)
	})
}

// Grid renders the outcome of a load: the tiles, or the unavailable
// placeholder for empty and failed loads.
func Grid(state feed.LoadState, tiles []feed.Tile) templ.Component {
	return h.Component(func(w *h.Writer) {
		w.Rawf(`<div id="feed-grid" class="grid grid-cols-2 md:grid-cols-4 gap-4" data-feed-state="%s">`, h.Esc(string(state)))
		if state.Unavailable() || len(tiles) == 0 {
			w.Rawf(`<div class="col-span-full py-20 text-center text-zinc-600 border border-dashed border-zinc-800 rounded-2xl">%s</div>`, UnavailableText)
		} else {
			for _, t := range tiles {
				w.Render(Tile(t))
			}
		}
		w.Raw(`</div>`)
	})
}

// Tile renders one post. The image swaps to the fallback if it fails to
// load in the browser.
func Tile(t feed.Tile) templ.Component {
	return h.Component(func(w *h.Writer) {
		w.Rawf(`<a href="%s" target="_blank" rel="noopener noreferrer" data-post-id="%s" class="feed-tile aspect-square bg-white/5 rounded-xl border border-white/10 overflow-hidden relative group cursor-pointer block">`,
			h.Href(t.Link), h.Esc(t.ID))
		w.Rawf(`<img src="%s" alt="VEX U robotics" loading="lazy" class="w-full h-full object-cover group-hover:scale-110 transition-transform duration-700" onerror="%s">`,
			h.Href(t.ImageURL), h.Esc(onErrorJS()))
		if t.IsVideo {
			w.Rawf(`<div class="absolute top-3 right-3 bg-black/50 backdrop-blur-sm p-1.5 rounded-lg z-10 border border-white/10" data-video="true">%s</div>`,
				h.Icon("play", 14, "text-white fill-white"))
		}
		w.Raw(`<div class="absolute inset-0 bg-gradient-to-t from-black/80 via-transparent to-transparent opacity-0 group-hover:opacity-100 transition-opacity flex flex-col justify-end p-4">`)
		w.Rawf(`<div class="flex items-center gap-4 text-sm font-bold text-white"><span class="flex items-center gap-1">%s %s</span></div>`,
			h.Icon("heart", 16, "fill-current"), h.Esc(t.Likes))
		w.Raw(`</div></a>`)
	})
}

// onErrorJS replaces a broken image once; clearing the handler keeps a
// broken fallback from looping.
func onErrorJS() string {
	return "this.onerror=null;this.src='" + feed.FallbackImageURL + "';"
}
