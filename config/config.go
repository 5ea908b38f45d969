package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// FrontendConfig contains all of the frontend server settings
type FrontendConfig struct {
	ListenAddrIP   string
	ListenAddrPort string
	BackendURL     string // base URL of the portfolio API, no trailing slash
	ProxyAPI       bool   // forward /api/* to BackendURL and let the browser use relative URLs
	WebDir         string // directory holding app.wasm, wasm_exec.js and static images
}

// ClientBackendURL returns the backend URL handed to the browser.
// With the proxy enabled the browser talks to its own origin.
func (c FrontendConfig) ClientBackendURL() string {
	if c.ProxyAPI {
		return ""
	}
	return c.BackendURL
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

// NormalizeBackendURL trims whitespace and trailing slashes so paths can be appended directly
func NormalizeBackendURL(rawURL string) string {
	return strings.TrimRight(strings.TrimSpace(rawURL), "/")
}

// SetupFrontend loads configuration for the frontend server
func SetupFrontend() (FrontendConfig, *slog.Logger) {
	// Load .env file (silently ignore if doesn't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")
	_ = godotenv.Load("frontend.env")

	logger := setupLogging()
	Logger = logger

	frontendConfig := FrontendConfig{}

	frontendConfig.ListenAddrIP = getEnv("SERVER_ADDR", "")
	frontendConfig.ListenAddrPort = getEnv("SERVER_PORT", "3000")
	frontendConfig.BackendURL = NormalizeBackendURL(getEnv("BACKEND_URL", "http://localhost:8000"))
	frontendConfig.ProxyAPI = getEnvBool("PROXY_API", false)
	frontendConfig.WebDir = filepath.ToSlash(getEnv("WEB_DIR", "web"))

	if frontendConfig.ProxyAPI {
		logger.Info("Proxying API calls to backend", "backendURL", frontendConfig.BackendURL)
	} else {
		logger.Info("Browser will call backend directly", "backendURL", frontendConfig.BackendURL)
	}

	logger.Info("Frontend configuration loaded",
		"addr", frontendConfig.ListenAddrIP,
		"port", frontendConfig.ListenAddrPort,
		"webDir", frontendConfig.WebDir)

	return frontendConfig, logger
}

// parseLevel maps LOG_LEVEL values onto slog levels, defaulting to debug
func parseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// setupLogging configures the application logger from LOG_LEVEL, LOG_FORMAT,
// LOG_OUTPUT and LOG_FILE. A log file that cannot be opened falls back to stdout.
func setupLogging() *slog.Logger {
	w, path, err := openLogOutput(getEnv("LOG_OUTPUT", "file"), getEnv("LOG_FILE", "nuvance.log"))
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Logging to stdout: %v\n", err)
		w = os.Stdout
	case path != "":
		fmt.Println("Logging to file:", path)
	}

	level := parseLevel(getEnv("LOG_LEVEL", "debug"))
	return slog.New(newLogHandler(w, getEnv("LOG_FORMAT", "text"), level))
}

// openLogOutput resolves the log destination. path is set only when a file was opened.
func openLogOutput(output, file string) (w io.Writer, path string, err error) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, "", nil
	case "stderr":
		return os.Stderr, "", nil
	}

	path, err = filepath.Abs(filepath.FromSlash(file))
	if err != nil {
		return nil, "", fmt.Errorf("resolve log file %q: %w", file, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, "", fmt.Errorf("open log file: %w", err)
	}
	return f, path, nil
}

// newLogHandler picks the slog handler for LOG_FORMAT; anything but json is text
func newLogHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
