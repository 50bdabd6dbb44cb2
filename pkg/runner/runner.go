// Package runner executes a single upstream operation: build the request, send it once,
// judge the outcome by status code, then parse the result or classify the failure.
package runner

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	apierrors "github.com/zosjobs/jobs-gateway/api/errors"
	"github.com/zosjobs/jobs-gateway/pkg/connector"
)

// Operation describes one upstream operation returning T
type Operation[T any] struct {
	// Name used in log entries
	Name string
	// Request builds the upstream request
	Request func() *connector.Request
	// SuccessCodes are the statuses treated as success
	SuccessCodes []int
	// Parse converts a successful response. A nil Parse returns the zero value of T.
	Parse func(response *connector.Response) (T, error)
	// Classify maps failure messages to local errors
	Classify Classifier
}

// Run executes the operation with exactly one call to the connector
func Run[T any](ctx context.Context, conn connector.Connector, op Operation[T]) (T, error) {
	var result T
	request := op.Request()
	logger := log.Ctx(ctx)

	response, err := conn.Do(ctx, request)
	if err != nil {
		logger.Debug().Err(err).Msgf("%s: %s %s failed", op.Name, request.Method, request.Path)
		return result, apierrors.NewTransport(err)
	}
	logger.Debug().Msgf("%s: %s %s returned status %d", op.Name, request.Method, request.Path, response.StatusCode)

	if !slices.Contains(op.SuccessCodes, response.StatusCode) {
		return result, classifyFailure(request, response, op.Classify)
	}
	if op.Parse == nil {
		return result, nil
	}
	result, err = op.Parse(response)
	if err != nil {
		return result, apierrors.NewUpstreamGeneric(response.StatusCode, fmt.Sprintf("failed to parse response: %v", err))
	}
	return result, nil
}

func classifyFailure(request *connector.Request, response *connector.Response, classifier Classifier) error {
	if !response.HasBody() {
		return apierrors.NewUpstreamUnavailable(response.StatusCode, request.Path)
	}
	obj, ok := response.AsObject()
	if !ok {
		return apierrors.NewUpstreamGeneric(response.StatusCode, string(response.Body))
	}
	message, ok := obj["message"].(string)
	if !ok {
		return apierrors.NewUpstreamGeneric(response.StatusCode, string(response.Body))
	}
	if err := classifier.Classify(response.StatusCode, message); err != nil {
		return err
	}
	return apierrors.NewUpstreamGeneric(response.StatusCode, message)
}
