package webapp

import (
	"context"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/nuvance/showcase/portfolio"
)

// HomePage displays the portfolio projects fetched from the backend
type HomePage struct {
	app.Compo
	Source ProjectSource // nil means the backend configured in /config.js

	state     pageState
	requested bool
}

// OnMount is called when the component is mounted
func (h *HomePage) OnMount(ctx app.Context) {
	if !app.IsClient {
		h.reset()
		return
	}
	h.mount(ctx, ctx.Async, func(fn func()) {
		ctx.Dispatch(func(app.Context) { fn() })
	})
}

// mount starts a fresh loading cycle. async runs the request off the UI
// goroutine and dispatch applies its result on it.
func (h *HomePage) mount(ctx context.Context, async, dispatch func(func())) {
	h.reset()
	h.load(ctx, async, dispatch)
}

func (h *HomePage) reset() {
	h.state = newPageState()
	h.requested = false
}

// load fetches the projects once per mount
func (h *HomePage) load(ctx context.Context, async, dispatch func(func())) {
	if h.requested {
		return
	}
	h.requested = true

	source := h.Source
	if source == nil {
		source = defaultSource()
	}

	async(func() {
		// the request outlives the component; a late dispatch to a dismounted page is dropped
		projects, err := fetchProjects(context.WithoutCancel(ctx), source)
		dispatch(func() {
			h.state.resolve(projects, err)
		})
	})
}

// fetchProjects runs the request and logs the failure detail, which is never shown to visitors
func fetchProjects(ctx context.Context, source ProjectSource) ([]portfolio.Project, error) {
	projects, err := source.FetchProjects(ctx)
	if err != nil {
		Logger.Error("Error fetching projects", "error", err)
		return nil, err
	}
	Logger.Debug("Projects fetched", "count", len(projects))
	return projects, nil
}

// Render renders the home page.
// The spinner, the error and the list are independent blocks.
func (h *HomePage) Render() app.UI {
	var loading app.UI
	if h.state.showsLoading() {
		loading = app.Div().Class("loading").Body(
			app.Div().Class("spinner"),
		)
	}

	var failure app.UI
	if h.state.showsError() {
		failure = app.Div().Class("error").Text(h.state.err)
	}

	return app.Div().
		Class("home-page").
		Body(
			&Background{},
			app.Div().Class("home-content").Body(
				&Header{},
				app.Div().Class("tagline").Body(
					app.Span().Text(Tagline),
				),
				loading,
				failure,
				&ProjectList{Projects: h.state.projects},
			),
		)
}
