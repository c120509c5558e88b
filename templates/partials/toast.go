package partials

import (
	"pulseboard_app_go/ui"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Toast renders the visitor's current notification, or nothing when there is
// none. The region is polled over HTMX, so an expired notification simply
// disappears on the next poll.
func Toast(n *ui.Notification) g.Node {
	if n == nil {
		return g.Text("")
	}

	class := "toast toast-success"
	if n.Kind == ui.KindError {
		class = "toast toast-error"
	}
	return Div(Class(class), Role("status"),
		Span(g.Text(n.Text)),
		Button(
			g.Attr("hx-post", "/htmx/toast/dismiss"),
			g.Attr("hx-target", "#toast-region"),
			g.Attr("hx-swap", "innerHTML"),
			Aria("label", "Dismiss"),
			g.Text("×"),
		),
	)
}
