package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// NotFoundIllustrationPath is the image shown on unknown routes
const NotFoundIllustrationPath = "/web/not-found.svg"

// NotFoundPage displays the not found illustration and a way back home
type NotFoundPage struct {
	app.Compo
}

// Render renders the not found page
func (p *NotFoundPage) Render() app.UI {
	return app.Div().
		Class("not-found-page").
		Body(
			app.Div().
				Class("not-found-illustration").
				Body(
					app.Img().
						Src(NotFoundIllustrationPath).
						Alt("Page not found"),
				),
			app.Div().
				Class("not-found-actions").
				Body(
					button("HOME", ButtonBlue, redirectIcon(), navigateHome),
				),
		)
}
