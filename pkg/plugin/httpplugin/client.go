// Package httpplugin provides a plugin.Validator that talks to package
// material plugins over HTTP.
package httpplugin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"pkgadmin/pkg/domain"
	"pkgadmin/pkg/plugin"
	"pkgadmin/pkg/serrors"
	"strings"
)

// Client posts package configuration to the plugin endpoint and decodes the
// reported validation errors. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the plugin host
	baseURL    string       // baseURL is the plugin host, without a trailing slash
}

type property struct {
	Value  string `json:"value,omitempty"`
	Secure bool   `json:"secure,omitempty"`
}

type validateReq struct {
	RepositoryConfiguration map[string]property `json:"repository-configuration"`
	PackageConfiguration    map[string]property `json:"package-configuration"`
}

func toProperties(props []domain.ConfigurationProperty) map[string]property {
	out := make(map[string]property, len(props))
	for _, p := range props {
		// encrypted values never leave the server
		if p.IsSecure() {
			out[p.Key] = property{Secure: true}

			continue
		}
		out[p.Key] = property{Value: p.Value}
	}

	return out
}

// ValidatePackage asks the repository's plugin to validate the package
// configuration. An unknown plugin is reported as an unprocessable entity and
// any other non-2xx answer as unavailable.
func (c *Client) ValidatePackage(ctx context.Context,
	repo domain.PackageRepository,
	pkg domain.PackageDefinition) ([]plugin.ValidationError, error) {
	body, err := json.Marshal(validateReq{
		RepositoryConfiguration: toProperties(repo.Configuration),
		PackageConfiguration:    toProperties(pkg.Configuration),
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	endpoint := c.baseURL + "/plugins/" + url.PathEscape(repo.PluginID) + "/validate-package-configuration"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach plugin '%s'", repo.PluginID)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, serrors.With(serrors.ErrUnprocessable, "plugin '%s' is not installed", repo.PluginID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable,
			"plugin '%s' validation failed: %s", repo.PluginID, strings.TrimSpace(string(b)))
	}

	// an empty body means no errors
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}

	var errs []plugin.ValidationError
	if err := json.Unmarshal(b, &errs); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return errs, nil
}

var _ plugin.Validator = (*Client)(nil)

// New constructs a Client sending requests through httpClient to the plugin
// host at baseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}
