package lambda

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// Proxy forwards one API Gateway event to the wrapped web application and
// returns its HTTP-shaped response.
type Proxy interface {
	ProxyWithContext(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)
}

// Gateway bridges Lambda invocations to the wrapped web application.
// Availability is decided once at construction and never re-evaluated: a
// failed build leaves the gateway permanently degraded for this process
// instance, answering every invocation with a 500 envelope that carries the
// captured error text.
type Gateway struct {
	proxy   Proxy
	initErr error
}

// NewGateway runs build exactly once. A build failure degrades the gateway
// instead of crashing the process.
func NewGateway(build func() (Proxy, error)) *Gateway {
	proxy, err := build()
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize backend application")
		return &Gateway{initErr: err}
	}
	return &Gateway{proxy: proxy}
}

// Available reports whether the wrapped application loaded at construction.
func (g *Gateway) Available() bool {
	return g.initErr == nil
}

// Handle forwards one invocation through the proxy. It always returns a
// well-formed response and a nil error: failures are encoded into the 500
// envelope rather than surfaced as invocation errors, so the platform never
// retries and callers always receive the JSON shape.
func (g *Gateway) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	if g.initErr != nil {
		return errorResponse(http.StatusInternalServerError, "Backend initialization failed", g.initErr.Error()), nil
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"method": event.HTTPMethod,
				"path":   event.Path,
				"panic":  r,
				"stack":  string(debug.Stack()),
			}).Error("Panic while forwarding request")
			resp = errorResponse(http.StatusInternalServerError, "Internal server error", fmt.Sprintf("%v", r))
			err = nil
		}
	}()

	var proxyErr error
	resp, proxyErr = g.proxy.ProxyWithContext(ctx, event)
	if proxyErr != nil {
		logrus.WithFields(logrus.Fields{
			"method": event.HTTPMethod,
			"path":   event.Path,
			"error":  proxyErr.Error(),
		}).Error("Request handling error")
		return errorResponse(http.StatusInternalServerError, "Internal server error", proxyErr.Error()), nil
	}
	return resp, nil
}
