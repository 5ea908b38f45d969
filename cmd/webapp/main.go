//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/nuvance/showcase/webapp"
)

func main() {
	// Register routes for the client-side app - home plus a catch-all for not found
	webapp.RegisterRoutes()

	// This main function is for the WASM build only
	// It initializes the go-app when running in the browser
	app.RunWhenOnBrowser()
}
