package pages

import (
	"pulseboard_app_go/models"
	"pulseboard_app_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Login renders the admin sign-in page. errMsg is shown above the form when
// a previous attempt failed.
func Login(errMsg string) g.Node {
	seo := models.DefaultSEO("Sign in | Pulseboard", "Pulseboard admin sign-in.")
	seo.NoIndex = true

	return components.Layout(seo,
		Div(Class("login-card"),
			H2(g.Text("Admin sign-in")),
			g.If(errMsg != "",
				Div(Class("form-error"), Role("alert"), g.Text(errMsg)),
			),
			Form(Method("post"), Action("/login"),
				Div(Class("field"),
					Label(For("email"), g.Text("Email")),
					Input(Type("email"), ID("email"), Name("email"), Required()),
				),
				Div(Class("field"),
					Label(For("password"), g.Text("Password")),
					Input(Type("password"), ID("password"), Name("password"), Required()),
				),
				Div(Class("form-actions"),
					Button(Type("submit"), Class("btn btn-primary"), g.Text("Sign in")),
				),
			),
		),
	)
}
