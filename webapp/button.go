package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ButtonVariant selects the button colour scheme
type ButtonVariant string

const ButtonBlue ButtonVariant = "blue_variant"

func (v ButtonVariant) class() string {
	if v == ButtonBlue {
		return "button button-blue"
	}
	return "button"
}

// button renders a labelled button with an optional trailing icon
func button(text string, variant ButtonVariant, endIcon app.UI, onClick app.EventHandler) app.HTMLButton {
	var icon app.UI
	if endIcon != nil {
		icon = app.Span().Class("button-icon").Body(endIcon)
	}

	return app.Button().
		Class(variant.class()).
		OnClick(onClick).
		Body(
			app.Span().Class("button-text").Text(text),
			icon,
		)
}

// redirectIcon is the arrow-out-of-box icon shown on the home button
func redirectIcon() app.UI {
	return app.Raw(`<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" class="icon">` +
		`<path stroke-linecap="round" stroke-linejoin="round" d="M13.5 6H5.25A2.25 2.25 0 0 0 3 8.25v10.5A2.25 2.25 0 0 0 5.25 21h10.5A2.25 2.25 0 0 0 18 18.75V10.5m-10.5 6L21 3m0 0h-5.25M21 3v5.25"/>` +
		`</svg>`)
}
