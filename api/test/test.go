package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/zosjobs/jobs-gateway/api/v1/controllers"
	"github.com/zosjobs/jobs-gateway/router"
)

type ControllerTestUtils struct {
	controllers []controllers.Controller
}

func New(controllers ...controllers.Controller) ControllerTestUtils {
	return ControllerTestUtils{
		controllers: controllers,
	}
}

// ExecuteRequest Helper method to issue a http request
func (ctrl *ControllerTestUtils) ExecuteRequest(ctx context.Context, method, path string) <-chan *http.Response {
	return ctrl.ExecuteRequestWithBody(ctx, method, path, nil)
}

// ExecuteRequestWithBody Helper method to issue a http request with payload. A []byte body is sent as it is, other values as JSON
func (ctrl *ControllerTestUtils) ExecuteRequestWithBody(ctx context.Context, method, path string, body interface{}) <-chan *http.Response {
	responseChan := make(chan *http.Response)

	go func() {
		defer close(responseChan)
		var reader io.Reader

		switch payload := body.(type) {
		case nil:
		case []byte:
			reader = bytes.NewReader(payload)
		default:
			marshalled, _ := json.Marshal(payload)
			reader = bytes.NewReader(marshalled)
		}

		server := httptest.NewServer(router.NewServer(ctrl.controllers...))
		defer server.Close()
		request, err := http.NewRequestWithContext(ctx, method, buildURLFromServer(server, path), reader)
		if err != nil {
			return
		}
		if reader != nil {
			request.Header.Set("Content-Type", "application/json")
		}
		response, err := http.DefaultClient.Do(request)
		if err != nil {
			return
		}
		// the body is read before the server is closed
		payload, _ := io.ReadAll(response.Body)
		_ = response.Body.Close()
		response.Body = io.NopCloser(bytes.NewReader(payload))
		responseChan <- response
	}()

	return responseChan
}

// GetResponseBody Gets response payload as type
func GetResponseBody(response *http.Response, target interface{}) error {
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}

// RequestContextMatcher matches the context of an incoming request
type RequestContextMatcher struct {
}

func (m RequestContextMatcher) Matches(x interface{}) bool {
	_, ok := x.(context.Context)
	return ok
}

func (m RequestContextMatcher) String() string {
	return fmt.Sprintf("is %T", (*context.Context)(nil))
}

func buildURLFromServer(server *httptest.Server, path string) string {
	serverURL, _ := url.Parse(server.URL)
	parsedPath, _ := url.Parse(path)
	serverURL.Path = parsedPath.Path
	serverURL.RawQuery = parsedPath.RawQuery
	return serverURL.String()
}
