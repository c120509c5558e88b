package components

import (
	"pulseboard_app_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Layout wraps a page body in the shared HTML shell: head metadata, nav,
// toast region, modal mount and footer.
func Layout(seo *models.SEO, body ...g.Node) g.Node {
	if seo == nil {
		seo = models.DefaultSEO("Pulseboard", "Analytics for teams that move fast.")
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(headNodes(seo)...),
			Body(
				Nav(Class("site-nav"),
					A(Href("/"), Class("brand"), g.Text("Pulseboard")),
					Div(Class("nav-links"),
						A(Href("/#features"), g.Text("Features")),
						A(Href("/#testimonials"), g.Text("Customers")),
						Button(Class("btn btn-primary"),
							g.Attr("hx-get", "/demo"),
							g.Attr("hx-target", "#modal"),
							g.Attr("hx-swap", "innerHTML"),
							g.Text("Book a demo"),
						),
					),
				),
				g.Group(body),
				Div(ID("modal")),
				Div(ID("toast-region"),
					g.Attr("hx-get", "/htmx/toast"),
					g.Attr("hx-trigger", "load, every 2s"),
					g.Attr("hx-swap", "innerHTML"),
				),
				Footer(Class("site-footer"),
					P(g.Text("© Pulseboard. All rights reserved.")),
					Div(Class("footer-links"),
						A(Href("/sitemap.xml"), g.Text("Sitemap")),
						A(Href("/login"), g.Text("Admin")),
					),
				),
				Script(Src("https://unpkg.com/htmx.org@1.9.12")),
				Script(g.Raw(revealScript)),
			),
		),
	})
}

func headNodes(seo *models.SEO) []g.Node {
	nodes := []g.Node{
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
		TitleEl(g.Text(seo.Title)),
		Meta(Name("description"), Content(seo.Description)),
		StyleEl(g.Raw(siteCSS)),
	}

	if seo.Keywords != "" {
		nodes = append(nodes, Meta(Name("keywords"), Content(seo.Keywords)))
	}
	if seo.Canonical != "" {
		nodes = append(nodes, Link(Rel("canonical"), Href(seo.Canonical)))
	}
	if seo.NoIndex {
		nodes = append(nodes, Meta(Name("robots"), Content("noindex")))
	}

	ogTitle := seo.OGTitle
	if ogTitle == "" {
		ogTitle = seo.Title
	}
	ogDesc := seo.OGDesc
	if ogDesc == "" {
		ogDesc = seo.Description
	}
	nodes = append(nodes,
		Meta(g.Attr("property", "og:title"), Content(ogTitle)),
		Meta(g.Attr("property", "og:description"), Content(ogDesc)),
	)
	if seo.OGType != "" {
		nodes = append(nodes, Meta(g.Attr("property", "og:type"), Content(seo.OGType)))
	}
	if seo.OGImage != "" {
		nodes = append(nodes, Meta(g.Attr("property", "og:image"), Content(seo.OGImage)))
	}
	if seo.TwitterCard != "" {
		nodes = append(nodes, Meta(Name("twitter:card"), Content(seo.TwitterCard)))
	}
	return nodes
}

// revealScript drives the scroll-reveal effect. Each reveal section carries a
// token handed out by the server; the first time the section's visible
// fraction reaches its threshold the transition is reported once and
// observation stops. Browsers without IntersectionObserver fail open.
const revealScript = `
(function () {
  var sections = document.querySelectorAll("[data-reveal-token]");
  if (!("IntersectionObserver" in window)) {
    sections.forEach(function (el) { el.classList.add("revealed"); });
    return;
  }
  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      var el = entry.target;
      var threshold = parseFloat(el.dataset.revealThreshold || "0.1");
      if (entry.intersectionRatio >= threshold) {
        el.classList.add("revealed");
        observer.unobserve(el);
        fetch("/htmx/reveal", {
          method: "POST",
          headers: { "Content-Type": "application/x-www-form-urlencoded" },
          body: new URLSearchParams({
            token: el.dataset.revealToken,
            fraction: String(entry.intersectionRatio)
          })
        });
      }
    });
  }, { threshold: [0, 0.1, 0.25, 0.5, 1] });
  sections.forEach(function (el) {
    if (!el.classList.contains("revealed")) observer.observe(el);
  });

  document.body.addEventListener("demo-modal-close", function () {
    var modal = document.getElementById("modal");
    if (modal) modal.innerHTML = "";
  });
})();
`

const siteCSS = `
:root { --ink: #101828; --muted: #475467; --accent: #4f46e5; --bg: #f8fafc; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, sans-serif; color: var(--ink); background: var(--bg); }
a { color: inherit; text-decoration: none; }
.site-nav { display: flex; justify-content: space-between; align-items: center; padding: 1rem 2rem; background: #fff; border-bottom: 1px solid #e2e8f0; }
.brand { font-weight: 700; font-size: 1.25rem; color: var(--accent); }
.nav-links { display: flex; gap: 1.5rem; align-items: center; }
.btn { border: none; border-radius: 0.5rem; padding: 0.6rem 1.2rem; font-size: 1rem; cursor: pointer; }
.btn-primary { background: var(--accent); color: #fff; }
.btn-primary[disabled] { opacity: 0.6; cursor: wait; }
.hero { text-align: center; padding: 6rem 2rem 5rem; }
.hero h1 { font-size: 2.75rem; margin: 0 0 1rem; }
.hero p { color: var(--muted); font-size: 1.2rem; max-width: 40rem; margin: 0 auto 2rem; }
.section { padding: 4rem 2rem; max-width: 72rem; margin: 0 auto; }
.section h2 { text-align: center; font-size: 2rem; }
.grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(16rem, 1fr)); gap: 1.5rem; margin-top: 2rem; }
.card { background: #fff; border: 1px solid #e2e8f0; border-radius: 0.75rem; padding: 1.5rem; }
.card h3 { margin-top: 0; }
.card p { color: var(--muted); }
.stat .value { font-size: 2rem; font-weight: 700; color: var(--accent); }
.stat .label { color: var(--muted); }
.quote { font-style: italic; }
.attribution { margin-top: 1rem; color: var(--muted); font-style: normal; }
.reveal { opacity: 0; transform: translateY(1.25rem); transition: opacity 0.6s ease, transform 0.6s ease; }
.reveal.revealed { opacity: 1; transform: none; }
.site-footer { display: flex; justify-content: space-between; padding: 2rem; border-top: 1px solid #e2e8f0; color: var(--muted); }
.footer-links { display: flex; gap: 1rem; }
#toast-region { position: fixed; bottom: 1.5rem; right: 1.5rem; z-index: 50; }
.toast { display: flex; align-items: center; gap: 0.75rem; padding: 0.9rem 1.2rem; border-radius: 0.5rem; color: #fff; box-shadow: 0 10px 20px rgba(16, 24, 40, 0.15); }
.toast-success { background: #079455; }
.toast-error { background: #d92d20; }
.toast button { background: transparent; border: none; color: inherit; font-size: 1.1rem; cursor: pointer; }
.modal-backdrop { position: fixed; inset: 0; background: rgba(16, 24, 40, 0.5); display: flex; align-items: center; justify-content: center; z-index: 40; }
.modal-card { background: #fff; border-radius: 0.75rem; padding: 2rem; width: min(28rem, 90vw); }
.modal-card h2 { margin-top: 0; }
.field { margin-bottom: 1rem; }
.field label { display: block; margin-bottom: 0.3rem; font-weight: 500; }
.field input, .field textarea { width: 100%; padding: 0.6rem; border: 1px solid #cbd5e1; border-radius: 0.5rem; font: inherit; }
.form-error { color: #d92d20; margin-bottom: 1rem; }
.form-actions { display: flex; justify-content: flex-end; gap: 0.75rem; }
.admin-table { width: 100%; border-collapse: collapse; background: #fff; }
.admin-table th, .admin-table td { text-align: left; padding: 0.6rem 0.8rem; border-bottom: 1px solid #e2e8f0; }
.login-card { max-width: 24rem; margin: 6rem auto; background: #fff; border: 1px solid #e2e8f0; border-radius: 0.75rem; padding: 2rem; }
`
