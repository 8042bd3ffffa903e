package forgeclient

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/forgekit-io/forgekit/internal/client"
	"github.com/forgekit-io/forgekit/internal/constants"
	"github.com/forgekit-io/forgekit/pkg/forge"
)

// New creates a forge API client from config.
func New(config *forge.Config) (forge.Client, error) {
	if config == nil {
		return nil, forge.ErrConfigRequired
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewAnonymous creates a client that sends unauthenticated requests.
func NewAnonymous(host string, port int, secure bool) (forge.Client, error) {
	return New(&forge.Config{
		Host:   host,
		Port:   port,
		Secure: secure,
	})
}

// NewWithBasicAuth creates a client using username/password authentication.
func NewWithBasicAuth(host string, port int, secure bool, username, password string) (forge.Client, error) {
	return New(&forge.Config{
		Host:     host,
		Port:     port,
		Secure:   secure,
		Username: username,
		Password: password,
	})
}

// NewWithToken creates a client using API token authentication.
func NewWithToken(host string, port int, secure bool, token string) (forge.Client, error) {
	return New(&forge.Config{
		Host:   host,
		Port:   port,
		Secure: secure,
		Token:  token,
	})
}

// NewFromURL creates a client with basic authentication against an absolute
// URL. Host, port, and scheme are resolved from the URL; a missing port
// defaults by scheme and is then range-validated like any other.
func NewFromURL(rawURL, username, password string) (forge.Client, error) {
	host, port, secure, err := resolveURL(rawURL)
	if err != nil {
		return nil, err
	}

	return New(&forge.Config{
		Host:     host,
		Port:     port,
		Secure:   secure,
		Username: username,
		Password: password,
	})
}

// resolveURL extracts host, port, and scheme from rawURL. A schemeless URL
// is treated as http.
func resolveURL(rawURL string) (string, int, bool, error) {
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", 0, false, fmt.Errorf("parsing URL: %w", err)
	}

	if parsed.Hostname() == "" {
		return "", 0, false, forge.ErrNoHostInURL
	}

	secure := parsed.Scheme == "https"

	port := constants.DefaultHTTPPort
	if secure {
		port = constants.DefaultHTTPSPort
	}

	if rawPort := parsed.Port(); rawPort != "" {
		port, err = strconv.Atoi(rawPort)
		if err != nil {
			return "", 0, false, fmt.Errorf("parsing port: %w", err)
		}
	}

	return parsed.Hostname(), port, secure, nil
}
