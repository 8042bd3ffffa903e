// Package client provides the concrete forge.Client implementation.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgekit-io/forgekit/internal/constants"
	"github.com/forgekit-io/forgekit/internal/http"
	"github.com/forgekit-io/forgekit/pkg/forge"
)

// Client implements the forge.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authorizer forge.Authorizer
	logger     forge.Logger
	tag        interface{}

	users        forge.UsersClient
	repositories forge.RepositoriesClient
}

// New creates a forge API client. It is the canonical constructor: every
// convenience path in pkg/forgeclient converges here, so the port-range and
// base-URL invariants hold for all of them.
func New(config *forge.Config) (*Client, error) {
	if config == nil {
		return nil, forge.ErrConfigRequired
	}

	host := config.Host
	if host == "" {
		host = constants.DefaultHost
	}

	port := config.Port
	if port == 0 {
		port = constants.DefaultPort
	}

	if port < constants.MinPort || port > constants.MaxPort {
		return nil, fmt.Errorf("%w: got %d", forge.ErrPortOutOfRange, port)
	}

	scheme := "http"
	if config.Secure {
		scheme = "https"
	}

	baseURL := fmt.Sprintf("%s://%s:%d%s", scheme, host, port, constants.APIBasePath)
	authorizer := selectAuthorizer(config)
	httpClient := http.NewClient(baseURL, authorizer, buildHTTPOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		authorizer: authorizer,
		logger:     config.Logger,
	}

	client.users = NewUsersClient(client)
	client.repositories = NewRepositoriesClient(client)

	return client, nil
}

// selectAuthorizer picks the strategy for the configured credentials. An
// explicit Authorizer wins; otherwise token, then basic, then none.
func selectAuthorizer(config *forge.Config) forge.Authorizer {
	if config.Authorizer != nil {
		return config.Authorizer
	}

	if config.Token != "" {
		return &forge.TokenAuthorizer{Token: config.Token}
	}

	if config.Username != "" || config.Password != "" {
		return &forge.BasicAuthorizer{Username: config.Username, Password: config.Password}
	}

	return forge.NoneAuthorizer{}
}

// buildHTTPOptions builds transport options from config.
func buildHTTPOptions(config *forge.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClientFactory != nil {
		opts = append(opts, http.WithClientFactory(config.HTTPClientFactory))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

// GetVersion implements forge.Client.GetVersion.
func (c *Client) GetVersion(ctx context.Context) (*forge.Version, error) {
	resp, err := c.httpClient.Get(ctx, "version", nil)
	if err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	var version forge.Version

	err = json.Unmarshal(resp.Body, &version)
	if err != nil {
		return nil, fmt.Errorf("parsing version response: %w", err)
	}

	version.SetClient(c)

	return &version, nil
}

// Users implements forge.Client.Users.
func (c *Client) Users() forge.UsersClient {
	return c.users
}

// Repositories implements forge.Client.Repositories.
func (c *Client) Repositories() forge.RepositoriesClient {
	return c.repositories
}

// BaseURL implements forge.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Tag implements forge.Client.Tag.
func (c *Client) Tag() interface{} {
	return c.tag
}

// SetTag implements forge.Client.SetTag.
func (c *Client) SetTag(tag interface{}) {
	c.tag = tag
}
