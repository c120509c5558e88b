package partials

import (
	"strconv"

	"pulseboard_app_go/ui"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Reveal carries the per-visitor state for one scroll-reveal section.
type Reveal struct {
	Token    string
	Revealed bool
}

// RevealSection renders a section that fades in when scrolled into view.
// Sections the visitor has already revealed render visible immediately so a
// reload does not replay the animation.
func RevealSection(id string, rv Reveal, children ...g.Node) g.Node {
	class := "section reveal"
	if rv.Revealed {
		class += " revealed"
	}
	return Section(
		ID(id),
		Class(class),
		g.If(rv.Token != "",
			g.Group([]g.Node{
				Data("reveal-token", rv.Token),
				Data("reveal-threshold", strconv.FormatFloat(ui.DefaultRevealThreshold, 'f', -1, 64)),
			}),
		),
		g.Group(children),
	)
}
