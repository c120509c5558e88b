package pages

import (
	"pulseboard_app_go/models"
	"pulseboard_app_go/templates/components"
	"pulseboard_app_go/templates/partials"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Section ids used for scroll-reveal subscriptions. The hero is above the
// fold and never animated.
const (
	SectionFeatures     = "features"
	SectionStats        = "stats"
	SectionTestimonials = "testimonials"
	SectionCTA          = "cta"
)

// RevealSections lists the landing sections that participate in scroll
// reveal, in page order.
func RevealSections() []string {
	return []string{SectionFeatures, SectionStats, SectionTestimonials, SectionCTA}
}

// Landing renders the full marketing page. reveals maps section ids to the
// visitor's reveal state; missing entries render without animation.
func Landing(seo *models.SEO, content LandingContent, reveals map[string]partials.Reveal) g.Node {
	return components.Layout(seo,
		Section(Class("hero"),
			H1(g.Text(content.HeroTitle)),
			P(g.Text(content.HeroSubtitle)),
			Button(Class("btn btn-primary"),
				g.Attr("hx-get", "/demo"),
				g.Attr("hx-target", "#modal"),
				g.Attr("hx-swap", "innerHTML"),
				g.Text("Book a demo"),
			),
		),
		partials.RevealSection(SectionFeatures, reveals[SectionFeatures],
			H2(g.Text("Everything your team needs to stay on pulse")),
			Div(Class("grid"),
				g.Map(content.Features, func(f Feature) g.Node {
					return Div(Class("card"),
						H3(g.Text(f.Title)),
						P(g.Text(f.Description)),
					)
				}),
			),
		),
		partials.RevealSection(SectionStats, reveals[SectionStats],
			H2(g.Text("Trusted at scale")),
			Div(Class("grid"),
				g.Map(content.Stats, func(s Stat) g.Node {
					return Div(Class("card stat"),
						Div(Class("value"), g.Text(s.Value)),
						Div(Class("label"), g.Text(s.Label)),
					)
				}),
			),
		),
		partials.RevealSection(SectionTestimonials, reveals[SectionTestimonials],
			H2(g.Text("What customers say")),
			Div(Class("grid"),
				g.Map(content.Testimonials, func(t Testimonial) g.Node {
					return Div(Class("card"),
						BlockQuote(Class("quote"), g.Text(t.Quote)),
						P(Class("attribution"), g.Textf("%s, %s", t.Name, t.Company)),
					)
				}),
			),
		),
		partials.RevealSection(SectionCTA, reveals[SectionCTA],
			H2(g.Text(content.CTATitle)),
			P(g.Text(content.CTASubtitle)),
			Div(Class("form-actions"),
				Button(Class("btn btn-primary"),
					g.Attr("hx-get", "/demo"),
					g.Attr("hx-target", "#modal"),
					g.Attr("hx-swap", "innerHTML"),
					g.Text("Book a demo"),
				),
			),
		),
	)
}
