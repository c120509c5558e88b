package pages

// Feature is one entry in the landing page feature grid.
type Feature struct {
	Title       string
	Description string
}

// Stat is a headline metric shown in the numbers band.
type Stat struct {
	Value string
	Label string
}

// Testimonial is a customer quote with its attribution.
type Testimonial struct {
	Quote   string
	Name    string
	Company string
}

// LandingContent holds all copy for the marketing page in one place.
type LandingContent struct {
	HeroTitle    string
	HeroSubtitle string
	Features     []Feature
	Stats        []Stat
	Testimonials []Testimonial
	CTATitle     string
	CTASubtitle  string
}

// DefaultLandingContent returns the Pulseboard marketing copy.
func DefaultLandingContent() LandingContent {
	return LandingContent{
		HeroTitle:    "See what your data is telling you",
		HeroSubtitle: "Pulseboard turns raw product and revenue data into live dashboards your whole team actually reads. No pipelines to babysit, no SQL required.",
		Features: []Feature{
			{
				Title:       "Live dashboards",
				Description: "Metrics refresh in seconds, not nightly. Watch launches, campaigns and incidents unfold as they happen.",
			},
			{
				Title:       "Answers without SQL",
				Description: "Ask questions in plain language and get charts back. Analysts keep full query access when they want it.",
			},
			{
				Title:       "Alerts that matter",
				Description: "Set thresholds on any metric and get pinged in Slack or email the moment something drifts.",
			},
			{
				Title:       "Every source, one place",
				Description: "Warehouse tables, product events and billing data side by side, joined without an ETL project.",
			},
			{
				Title:       "Share anywhere",
				Description: "Embed charts in docs, schedule email digests, or hand stakeholders a read-only board.",
			},
			{
				Title:       "Governed by default",
				Description: "Row-level permissions and a full audit trail, so the numbers people see are the numbers they should.",
			},
		},
		Stats: []Stat{
			{Value: "2,400+", Label: "teams on Pulseboard"},
			{Value: "1.2B", Label: "events processed daily"},
			{Value: "99.95%", Label: "uptime last 12 months"},
			{Value: "< 3s", Label: "median query time"},
		},
		Testimonials: []Testimonial{
			{
				Quote:   "We replaced three BI tools and a weekly reporting ritual with one Pulseboard workspace. The whole company looks at the same numbers now.",
				Name:    "Maya Okafor",
				Company: "Brightline Logistics",
			},
			{
				Quote:   "Setup took an afternoon. By the end of the week our on-call rotation had alerting on every business metric we care about.",
				Name:    "Daniel Reyes",
				Company: "Forgeline",
			},
			{
				Quote:   "Our analysts stopped being a reporting queue and started doing actual analysis. That alone paid for it.",
				Name:    "Ingrid Sørensen",
				Company: "Nordvik Health",
			},
		},
		CTATitle:    "Ready to see it on your data?",
		CTASubtitle: "Book a 30-minute demo and we'll wire up a dashboard from your own sources while you watch.",
	}
}
