package webapp

import (
	"net/http"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// StylesheetPath is where the server exposes the embedded stylesheet
const StylesheetPath = "/webapp/webapp.css"

// RegisterRoutes routes the home path and every other path to the App component.
// It must run in both the server and the WASM binary.
func RegisterRoutes() {
	app.Route(HomePath, func() app.Composer { return &App{} })
	app.RouteWithRegexp("^/.*", func() app.Composer { return &App{} })
}

// Handler returns an HTTP handler for the web app
func Handler() http.Handler {
	RegisterRoutes()
	app.RunWhenOnBrowser()

	// wasm_exec.js is served at /wasm_exec.js by Echo
	// app.wasm is served from /web/app.wasm by Echo
	return &app.Handler{
		Name:        CompanyName,
		ShortName:   "Nuvance",
		Title:       CompanyName,
		Description: Tagline,
		Icon: app.Icon{
			Default: LogoPath,
		},
		Styles: []string{
			StylesheetPath,
		},
		Scripts: []string{
			"/config.js", // Load backend API configuration
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
	}
}
