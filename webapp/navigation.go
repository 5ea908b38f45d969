package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HomePath is the route of the landing page
const HomePath = "/"

// navigator is the part of app.Context used to change route
type navigator interface {
	Navigate(rawURL string)
}

// goHome navigates to the home route unless the visitor is already there.
// It reports whether a navigation happened.
func goHome(currentPath string, nav navigator) bool {
	if currentPath == HomePath {
		return false
	}
	nav.Navigate(HomePath)
	return true
}

// navigateHome is the click handler shared by the logo, the title and the not found button
func navigateHome(ctx app.Context, e app.Event) {
	e.PreventDefault()
	goHome(app.Window().URL().Path, ctx)
}
