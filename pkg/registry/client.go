// Package registry looks up the latest published version of npm packages.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ajxudir/ncu/pkg/constants"
	"github.com/ajxudir/ncu/pkg/errors"
	"github.com/ajxudir/ncu/pkg/verbose"
)

// maxBodySize bounds how much of a registry response is read.
const maxBodySize = 4 << 20

// Fetcher retrieves the latest published version of a package.
// It is the only registry operation the update check needs, which keeps it
// easy to replace in tests.
type Fetcher interface {
	LatestVersion(ctx context.Context, name string) (string, error)
}

// Client queries an npm-compatible registry over HTTP.
//
// Fields:
//   - BaseURL: Registry root, e.g. "https://registry.npmjs.org"
//   - HTTPClient: Client used for requests; no timeout is applied beyond the context
//   - UserAgent: Value of the User-Agent header
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient creates a Client for the given registry.
//
// Parameters:
//   - baseURL: Registry root; empty selects the public npm registry
//   - version: Build version, reported in the User-Agent header
//
// Returns:
//   - *Client: A client using http.DefaultClient
func NewClient(baseURL, version string) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultRegistryURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
		UserAgent:  "ncu/" + version,
	}
}

// latestResponse is the subset of the /{name}/latest document the client reads.
type latestResponse struct {
	Version string `json:"version"`
}

// LatestURL returns the lookup URL for a package.
//
// Scoped names keep their "@" and have the scope separator escaped,
// e.g. "@types/node" becomes "@types%2Fnode".
//
// Parameters:
//   - name: The package name
//
// Returns:
//   - string: "{BaseURL}/{escaped name}/latest"
func (c *Client) LatestURL(name string) string {
	return c.BaseURL + "/" + url.PathEscape(name) + "/latest"
}

// LatestVersion fetches the version tagged latest for a package.
//
// It performs the following operations:
//   - Step 1: GET {BaseURL}/{name}/latest with Accept: application/json
//   - Step 2: Reject any non-2xx status
//   - Step 3: Decode the body and require a non-empty "version" field
//
// Parameters:
//   - ctx: Context for cancellation; no other timeout is applied
//   - name: The package name
//
// Returns:
//   - string: The latest version, e.g. "4.17.21"
//   - error: *errors.RegistryFetchError on any transport, status, or decode failure
func (c *Client) LatestVersion(ctx context.Context, name string) (string, error) {
	target := c.LatestURL(name)
	verbose.RegistryRequest(name, target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &errors.RegistryFetchError{Package: name, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", &errors.RegistryFetchError{Package: name, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", &errors.RegistryFetchError{Package: name, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		verbose.RegistryResponse(name, resp.StatusCode, "")
		return "", &errors.RegistryFetchError{Package: name, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", statusDetail(resp.StatusCode, body))}
	}

	var latest latestResponse
	if err := json.Unmarshal(body, &latest); err != nil {
		return "", &errors.RegistryFetchError{Package: name, StatusCode: resp.StatusCode, Err: fmt.Errorf("invalid response body: %w", err)}
	}
	version := strings.TrimSpace(latest.Version)
	if version == "" {
		return "", &errors.RegistryFetchError{Package: name, StatusCode: resp.StatusCode, Err: fmt.Errorf("response has no version field")}
	}

	verbose.RegistryResponse(name, resp.StatusCode, version)
	return version, nil
}

// statusDetail describes a failed response, preferring the registry's own
// JSON error message over the status text.
func statusDetail(status int, body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(status)
}
