package webapp

import (
	"context"
	"log/slog"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/nuvance/showcase/portfolio"
)

// Logger receives diagnostics from the browser app; in WASM the default handler writes to the console
var Logger = slog.Default()

// ProjectSource loads the portfolio projects shown on the home page
type ProjectSource interface {
	FetchProjects(ctx context.Context) ([]portfolio.Project, error)
}

// BackendURL returns the configured backend base URL
// It reads from window.nuvanceConfig.backendURL (set by /config.js) if available,
// otherwise falls back to empty string (relative URLs)
func BackendURL() string {
	if !app.IsClient {
		return "" // Server-side rendering - use relative URLs
	}

	config := app.Window().Get("nuvanceConfig")
	if config.Truthy() {
		backendURL := config.Get("backendURL")
		if backendURL.Truthy() {
			return strings.TrimRight(backendURL.String(), "/")
		}
	}

	// Fallback to relative URLs (same origin)
	return ""
}

// defaultSource builds the HTTP client used when a page is not given a source
func defaultSource() ProjectSource {
	return portfolio.NewClient(BackendURL())
}
