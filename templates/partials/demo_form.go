package partials

import (
	"pulseboard_app_go/ui"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// DemoModal renders the request-a-demo dialog. On a failed submission the
// handler re-renders it with the visitor's values intact and the failure
// message on top, so nothing typed is lost.
func DemoModal(fields ui.Fields, errMsg string) g.Node {
	return Div(Class("modal-backdrop"),
		Div(Class("modal-card"),
			H2(g.Text("Book a demo")),
			P(g.Text("Tell us a little about your team and we'll set up a walkthrough.")),
			g.If(errMsg != "",
				Div(Class("form-error"), Role("alert"), g.Text(errMsg)),
			),
			Form(
				g.Attr("hx-post", "/demo"),
				g.Attr("hx-target", "#modal"),
				g.Attr("hx-swap", "innerHTML"),
				g.Attr("hx-disabled-elt", "find button[type='submit']"),
				field("name", "Name", Input(Type("text"), ID("name"), Name("name"), Value(fields.Name), AutoComplete("name"))),
				field("email", "Work email", Input(Type("text"), ID("email"), Name("email"), Value(fields.Email), AutoComplete("email"))),
				field("organization", "Organization", Input(Type("text"), ID("organization"), Name("organization"), Value(fields.Organization), AutoComplete("organization"))),
				field("message", "What would you like to see?", Textarea(ID("message"), Name("message"), Rows("4"), g.Text(fields.Message))),
				Div(Class("form-actions"),
					Button(Type("button"), Class("btn"),
						g.Attr("hx-post", "/demo/cancel"),
						g.Attr("hx-target", "#modal"),
						g.Attr("hx-swap", "innerHTML"),
						g.Text("Cancel"),
					),
					Button(Type("submit"), Class("btn btn-primary"), g.Text("Request demo")),
				),
			),
		),
	)
}

func field(id, labelText string, control g.Node) g.Node {
	return Div(Class("field"),
		Label(For(id), g.Text(labelText)),
		control,
	)
}
