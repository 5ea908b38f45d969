package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// App is the root component of the application
type App struct {
	app.Compo
	path string
}

// OnMount is called when the component is mounted
func (a *App) OnMount(ctx app.Context) {
	a.path = app.Window().URL().Path
}

// OnNav is called when navigation occurs
func (a *App) OnNav(ctx app.Context) {
	a.path = app.Window().URL().Path
}

// Render renders the app
func (a *App) Render() app.UI {
	return app.Main().
		Class("app-container").
		Body(
			pageFor(a.currentPath()),
		)
}

func (a *App) currentPath() string {
	if a.path == "" {
		return app.Window().URL().Path
	}
	return a.path
}

// pageFor picks the page for a route; everything except home is not found
func pageFor(path string) app.UI {
	switch path {
	case HomePath:
		return &HomePage{}
	default:
		return &NotFoundPage{}
	}
}
