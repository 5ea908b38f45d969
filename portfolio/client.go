package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ProjectsPath is the backend endpoint listing portfolio projects
const ProjectsPath = "/api/v1/portfolio"

// FailureMessage is the only text a visitor sees when the projects cannot be loaded
const FailureMessage = "Something is Up with the Server! Please try again later."

// FetchFailure covers every way loading the project list can go wrong:
// transport errors, non-2xx responses and undecodable bodies.
type FetchFailure struct {
	URL        string
	StatusCode int // 0 when no HTTP response was received or the body was bad
	Err        error
}

func (f *FetchFailure) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", f.URL, f.StatusCode, f.Err)
	}
	return fmt.Sprintf("fetch %s: %v", f.URL, f.Err)
}

func (f *FetchFailure) Unwrap() error {
	return f.Err
}

// Client reads projects from the backend API
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given backend base URL.
// The HTTP client has no timeout: a request runs until the backend answers or the
// connection fails.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// ProjectsURL returns the full URL of the project list endpoint.
// An empty base URL yields a relative path, resolved against the page origin.
func (c *Client) ProjectsURL() string {
	return c.BaseURL + ProjectsPath
}

// FetchProjects issues a single GET for the project list. Any failure is returned as
// a *FetchFailure; the returned slice keeps the backend's order.
func (c *Client) FetchProjects(ctx context.Context) ([]Project, error) {
	url := c.ProjectsURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchFailure{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &FetchFailure{URL: url, Err: fmt.Errorf("failed to call portfolio API: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &FetchFailure{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(bodyBytes))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchFailure{URL: url, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	// Unmarshal rejects anything after the array
	var projects []Project
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, &FetchFailure{URL: url, Err: fmt.Errorf("failed to decode projects: %w", err)}
	}
	if projects == nil {
		// a literal null is not a list
		return nil, &FetchFailure{URL: url, Err: fmt.Errorf("failed to decode projects: response is not an array")}
	}

	return projects, nil
}
