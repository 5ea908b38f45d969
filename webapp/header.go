package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

const (
	CompanyName = "Nuvance Technologies"
	LogoPath    = "/web/logo.svg"
	Tagline     = "Turning Ideas into Impact: Explore Our Innovative Creations"
)

// Header shows the company logo and name, both linking home
type Header struct {
	app.Compo
	hovering bool
}

// Render renders the header
func (h *Header) Render() app.UI {
	return app.Div().
		Class("site-header").
		Body(
			app.Div().
				Class("site-logo").
				OnClick(navigateHome).
				Body(
					app.Img().
						Src(LogoPath).
						Alt("CompanyLogo").
						Width(42).
						Height(52),
				),
			app.Div().
				Class("site-title").
				OnMouseEnter(h.onHover(true)).
				OnMouseLeave(h.onHover(false)).
				OnClick(navigateHome).
				Body(
					app.Text(CompanyName),
					app.Span().Class(h.underlineClass()),
				),
		)
}

func (h *Header) onHover(hovering bool) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		h.hovering = hovering
	}
}

func (h *Header) underlineClass() string {
	if h.hovering {
		return "title-underline title-underline-active"
	}
	return "title-underline"
}

// Background draws the blurred glows behind the page
type Background struct {
	app.Compo
}

// Render renders the background
func (b *Background) Render() app.UI {
	return app.Div().
		Class("background").
		Body(
			app.Div().Class("glow glow-cyan"),
			app.Div().Class("glow glow-blue"),
			app.Div().Class("glow glow-red"),
		)
}
