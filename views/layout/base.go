package layout

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/eclipse-robotics/vexu-site/internal/content"
	"github.com/eclipse-robotics/vexu-site/internal/shell"
	h "github.com/eclipse-robotics/vexu-site/views/helpers"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base renders the full document around the active panel. feedSlot is the
// feed section, kept outside #main so it loads once per page and is only
// hidden when another panel is active.
func Base(meta PageMeta, site *content.Site, st shell.State, main templ.Component, feedSlot templ.Component) templ.Component {
	return h.Component(func(w *h.Writer) {
		w.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Rawf(`<title>%s</title>`, h.Esc(meta.Title))
		w.Rawf(`<meta name="description" content="%s">`, h.Esc(meta.Description))
		w.Rawf(`<meta name="keywords" content="%s">`, h.Esc(meta.KeywordsString()))
		w.Rawf(`<link rel="canonical" href="%s">`, h.Href(meta.CanonicalURL))
		w.Rawf(`<meta property="og:type" content="%s">`, h.Esc(meta.OGType))
		w.Rawf(`<meta property="og:title" content="%s">`, h.Esc(meta.OGTitle))
		w.Rawf(`<meta property="og:description" content="%s">`, h.Esc(meta.OGDescription))
		w.Rawf(`<meta property="og:image" content="%s">`, h.Href(meta.OGImageURL))
		w.Rawf(`<meta property="og:url" content="%s">`, h.Href(meta.OGURL))
		w.Rawf(`<meta property="og:site_name" content="%s">`, h.Esc(meta.OGSiteName))
		w.Rawf(`<meta name="twitter:card" content="%s">`, h.Esc(meta.TwitterCard))
		w.Rawf(`<meta name="twitter:image" content="%s">`, h.Href(meta.TwitterImageURL))
		w.Rawf(`<script type="application/ld+json">%s</script>`, meta.OrganizationSchemaJSON())
		w.Raw(`<link rel="stylesheet" href="/public/css/styles.css">`)
		w.Rawf(`<script src="%s" defer></script>`, htmxSrc)
		w.Raw(`</head>`)

		w.Raw(`<body class="min-h-screen bg-black text-white selection:bg-blue-500 selection:text-white font-sans overflow-x-hidden">`)
		w.Render(Navigation(site, st))
		w.Raw(`<main id="main">`)
		w.Render(main)
		w.Raw(`</main>`)
		feedHidden := ""
		if st.Active != shell.PanelHome {
			feedHidden = " hidden"
		}
		w.Rawf(`<div id="feed-slot"%s>`, feedHidden)
		w.Render(feedSlot)
		w.Raw(`</div>`)
		w.Render(Footer(site))
		w.Render(pageScript())
		w.Raw(`</body></html>`)
	})
}

// PanelTarget returns the htmx attributes that select panel p in place:
// the fragment replaces #main, the window scrolls to the top, and the URL is
// left untouched.
func PanelTarget(p shell.Panel) string {
	return `hx-get="/panel/` + h.Esc(p.String()) + `" hx-target="#main" hx-swap="innerHTML show:window:top"`
}

// CopyButtonAttrs wires a button to the clipboard script.
func CopyButtonAttrs(text string) string {
	return `data-copy-text="` + h.Esc(text) + `" data-copied="false" data-copy-ms="` +
		strconv.FormatInt(shell.CopyConfirmation.Milliseconds(), 10) + `"`
}

func pageScript() templ.Component {
	return templ.Raw(`<script>
(function () {
  var nav = document.getElementById('site-nav');
  if (nav) {
    var threshold = parseInt(nav.dataset.scrollThreshold, 10);
    var onScroll = function () {
      nav.className = window.scrollY >= threshold ? nav.dataset.classScrolled : nav.dataset.classTop;
    };
    window.addEventListener('scroll', onScroll, { passive: true });
    onScroll();
  }

  document.addEventListener('click', function (e) {
    var btn = e.target.closest('[data-copy-text]');
    if (!btn) return;
    var ta = document.createElement('textarea');
    ta.value = btn.dataset.copyText;
    document.body.appendChild(ta);
    ta.select();
    try {
      document.execCommand('copy');
    } catch (err) {
      console.error('Copy failed', err);
    }
    document.body.removeChild(ta);
    btn.dataset.copied = 'true';
    clearTimeout(btn._copyTimer);
    btn._copyTimer = setTimeout(function () { btn.dataset.copied = 'false'; }, parseInt(btn.dataset.copyMs, 10));
  });

  document.body.addEventListener('htmx:afterSwap', function (e) {
    if (!e.detail.target || e.detail.target.id !== 'main') return;
    var panel = e.detail.target.querySelector('[data-panel]');
    var slot = document.getElementById('feed-slot');
    if (panel && slot) slot.hidden = panel.dataset.panel !== 'home';
  });
})();
</script>`)
}
