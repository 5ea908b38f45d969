package main

import (
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"

	config "github.com/nuvance/showcase/config"
	"github.com/nuvance/showcase/webapp"
)

//go:embed webapp/webapp.css
var webappFS embed.FS

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	config.Logger = Logger
	webapp.Logger = Logger
}

func main() {
	// Parse command-line flags
	port := flag.String("port", "", "Port to run frontend server on (overrides SERVER_PORT)")
	backendURL := flag.String("backend", "", "Backend API URL (overrides BACKEND_URL)")
	flag.Parse()

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("   Nuvance Technologies - Portfolio")
	fmt.Println(strings.Repeat("=", 50))

	frontendConfig, logger := config.SetupFrontend()
	injectGlobals(logger)

	if *port != "" {
		frontendConfig.ListenAddrPort = *port
	}
	if *backendURL != "" {
		frontendConfig.BackendURL = config.NormalizeBackendURL(*backendURL)
	}

	e, err := newServer(frontendConfig)
	if err != nil {
		Logger.Error("Failed to set up server", "error", err)
		os.Exit(1)
	}

	if frontendConfig.ListenAddrIP == "" {
		Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	// Try to start server with automatic port increment if port is in use
	maxRetries := 5
	startPort := frontendConfig.ListenAddrPort
	var startErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		addr := fmt.Sprintf("%s:%s", frontendConfig.ListenAddrIP, frontendConfig.ListenAddrPort)
		Logger.Info("Attempting to start server", "address", addr, "attempt", attempt+1)
		fmt.Printf("Server will start on: %s (backend: %s)\n", addr, frontendConfig.BackendURL)

		startErr = e.Start(addr)

		if startErr != nil && isAddressInUse(startErr) {
			Logger.Warn("Port already in use, trying next port",
				"port", frontendConfig.ListenAddrPort,
				"attempt", attempt+1,
				"max_attempts", maxRetries)

			portNum := 0
			fmt.Sscanf(frontendConfig.ListenAddrPort, "%d", &portNum)
			portNum++
			frontendConfig.ListenAddrPort = fmt.Sprintf("%d", portNum)

			if attempt == maxRetries-1 {
				Logger.Error("Failed to find available port after maximum retries",
					"start_port", startPort,
					"end_port", frontendConfig.ListenAddrPort,
					"max_retries", maxRetries)
				os.Exit(1)
			}
		} else if startErr != nil && startErr != http.ErrServerClosed {
			Logger.Error("Failed to start server", "error", startErr)
			os.Exit(1)
		} else {
			break
		}
	}
}

// newServer wires the echo routes for the portfolio frontend
func newServer(frontendConfig config.FrontendConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}

		// API clients get JSON; pages are handled by the WASM app's NotFoundPage
		if code == http.StatusNotFound && strings.HasPrefix(c.Request().URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, map[string]string{
				"error":   "Not Found",
				"message": "The requested API endpoint does not exist",
				"path":    c.Request().URL.Path,
			})
			return
		}

		e.DefaultHTTPErrorHandler(err, c)
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: newRequestID,
	}))
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "id=${id}, method=${method}, uri=${uri}, status=${status}, latency=${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Inject backend API URL into the page
	e.GET("/config.js", func(c echo.Context) error {
		c.Response().Header().Set("Content-Type", "application/javascript")
		return c.String(http.StatusOK, configJS(frontendConfig.ClientBackendURL()))
	})

	e.GET(webapp.StylesheetPath, func(c echo.Context) error {
		data, err := webappFS.ReadFile("webapp/webapp.css")
		if err != nil {
			return c.String(http.StatusNotFound, "webapp.css not found")
		}
		return c.Blob(http.StatusOK, "text/css", data)
	})

	// app.wasm, wasm_exec.js and images live in the web directory, built by `make wasm`
	e.GET("/wasm_exec.js", func(c echo.Context) error {
		return c.File(filepath.Join(frontendConfig.WebDir, "wasm_exec.js"))
	})
	e.Static("/web", frontendConfig.WebDir)

	if frontendConfig.ProxyAPI {
		backendURL, err := url.Parse(frontendConfig.BackendURL)
		if err != nil || backendURL.Scheme == "" || backendURL.Host == "" {
			return nil, fmt.Errorf("invalid backend URL %q for API proxy: %v", frontendConfig.BackendURL, err)
		}
		e.Group("/api", middleware.ProxyWithConfig(middleware.ProxyConfig{
			Balancer: middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{
				{
					URL: backendURL,
				},
			}),
		}))
	} else {
		e.Any("/api/*", func(c echo.Context) error {
			return echo.ErrNotFound
		})
	}

	Logger.Info("Setting up go-app WASM UI")
	appHandler := webapp.Handler()

	// Register go-app specific resources
	e.GET("/app.js", echo.WrapHandler(appHandler))
	e.GET("/app.css", echo.WrapHandler(appHandler))
	e.GET("/manifest.webmanifest", echo.WrapHandler(appHandler))

	// Serve go-app handler for all other routes (must be last)
	// The WASM app handles home and not found pages itself
	e.Any("/*", echo.WrapHandler(appHandler))

	return e, nil
}

// configJS renders the script that hands the backend URL to the WASM app
func configJS(backendURL string) string {
	quoted, _ := json.Marshal(backendURL) // marshalling a string cannot fail
	return fmt.Sprintf(`
// Nuvance Frontend Configuration
window.nuvanceConfig = {
    backendURL: %s
};
`, quoted)
}

// newRequestID returns a sortable id for request logs
func newRequestID() string {
	return ulid.Make().String()
}

// isAddressInUse checks if the error is due to address already in use
func isAddressInUse(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "address already in use")
}
