// Package connector sends prepared requests to the upstream z/OSMF REST service
// and hands back the raw status and body.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Request describes one upstream call. Path is relative to the connector's base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response holds the status code and the complete body of an upstream response
type Response struct {
	StatusCode int
	Body       []byte
}

// HasBody reports whether the response carries any non-blank content
func (r *Response) HasBody() bool {
	return len(bytes.TrimSpace(r.Body)) > 0
}

// AsObject returns the body as a JSON object, ok is false when the body is not structured
func (r *Response) AsObject() (obj map[string]interface{}, ok bool) {
	if err := json.Unmarshal(r.Body, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// Connector sends requests to the upstream service. Implementations must be safe for concurrent use.
type Connector interface {
	// Do sends the request and returns the response, or a transport error
	Do(ctx context.Context, request *Request) (*Response, error)
	// URL builds the absolute URL for a relative path and optional query
	URL(path string, query url.Values) string
}
