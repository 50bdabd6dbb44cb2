package connector

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// csrfHeader must be present on every z/OSMF REST request
	csrfHeader = "X-CSRF-ZOSMF-HEADER"
)

// Config of the HTTP connector
type Config struct {
	BaseURL            string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

type httpConnector struct {
	baseURL       *url.URL
	client        *http.Client
	authenticator Authenticator
	logger        zerolog.Logger
}

// NewHTTPConnector Constructor for a connector calling the upstream service over HTTP(S)
func NewHTTPConnector(config Config, authenticator Authenticator) (Connector, error) {
	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %s: %w", config.BaseURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("base URL %s must include scheme and host", config.BaseURL)
	}
	if authenticator == nil {
		authenticator = NoAuth{}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if config.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &httpConnector{
		baseURL:       baseURL,
		client:        &http.Client{Transport: transport, Timeout: config.Timeout},
		authenticator: authenticator,
		logger:        log.Logger.With().Str("pkg", "connector").Logger(),
	}, nil
}

func (c *httpConnector) URL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	u.RawQuery = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *httpConnector) Do(ctx context.Context, request *Request) (*Response, error) {
	var body io.Reader
	if request.Body != nil {
		body = bytes.NewReader(request.Body)
	}
	req, err := http.NewRequestWithContext(ctx, request.Method, c.URL(request.Path, request.Query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range request.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set(csrfHeader, "true")
	if err := c.authenticator.Authenticate(req); err != nil {
		return nil, fmt.Errorf("failed to authenticate request: %w", err)
	}

	c.logger.Debug().Msgf("%s %s", req.Method, req.URL.Redacted())
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}
