package pages

import (
	"fmt"

	"pulseboard_app_go/models"
	"pulseboard_app_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AdminDashboard renders the demo request queue with per-status counts and
// inline status controls.
func AdminDashboard(adminEmail string, requests []models.DemoRequest, counts map[string]int64) g.Node {
	seo := models.DefaultSEO("Dashboard | Pulseboard", "Pulseboard admin dashboard.")
	seo.NoIndex = true

	return components.Layout(seo,
		Div(Class("section"),
			Div(Class("form-actions"),
				Span(g.Textf("Signed in as %s", adminEmail)),
				A(Href("/admin/demo-requests/export"), Class("btn"), g.Text("Export .xlsx")),
				Form(Method("post"), Action("/logout"),
					Button(Type("submit"), Class("btn"), g.Text("Sign out")),
				),
			),
			H2(g.Text("Demo requests")),
			Div(Class("grid"),
				statCard("New", counts[models.StatusNew]),
				statCard("Contacted", counts[models.StatusContacted]),
				statCard("Closed", counts[models.StatusClosed]),
			),
			Table(Class("admin-table"),
				THead(Tr(
					Th(g.Text("Received")),
					Th(g.Text("Name")),
					Th(g.Text("Email")),
					Th(g.Text("Organization")),
					Th(g.Text("Message")),
					Th(g.Text("Status")),
				)),
				TBody(
					g.Map(requests, func(r models.DemoRequest) g.Node {
						return AdminRequestRow(r)
					}),
				),
			),
		),
	)
}

// AdminRequestRow renders one queue row. Status changes swap the row in
// place over HTMX.
func AdminRequestRow(r models.DemoRequest) g.Node {
	return Tr(ID("request-"+r.ID),
		Td(g.Text(r.CreatedAt.Format("2006-01-02 15:04"))),
		Td(g.Text(r.Name)),
		Td(g.Text(r.Email)),
		Td(g.Text(r.Organization)),
		Td(g.Text(r.Message)),
		Td(
			Select(
				Name("status"),
				g.Attr("hx-put", fmt.Sprintf("/api/demo-requests/%s/status", r.ID)),
				g.Attr("hx-target", "closest tr"),
				g.Attr("hx-swap", "outerHTML"),
				statusOption(models.StatusNew, r.Status),
				statusOption(models.StatusContacted, r.Status),
				statusOption(models.StatusClosed, r.Status),
			),
		),
	)
}

func statCard(label string, count int64) g.Node {
	return Div(Class("card stat"),
		Div(Class("value"), g.Textf("%d", count)),
		Div(Class("label"), g.Text(label)),
	)
}

func statusOption(value, current string) g.Node {
	return Option(Value(value), g.If(value == current, Selected()), g.Text(value))
}
