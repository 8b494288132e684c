package server

import (
	"context"
	"net"
	"strings"

	"shipcatalog/internal/ratelimit"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

type requestIDKey struct{}

var writeOperations = map[string]bool{
	OperationShipServiceCreateShip: true,
	OperationShipServiceUpdateShip: true,
	OperationShipServiceDeleteShip: true,
}

// RequestIDMiddleware propagates an incoming X-Request-Id or generates one,
// echoing it in the reply header and storing it in the context.
func RequestIDMiddleware() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return handler(ctx, req)
			}
			id := strings.TrimSpace(tr.RequestHeader().Get(requestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			tr.ReplyHeader().Set(requestIDHeader, id)
			return handler(context.WithValue(ctx, requestIDKey{}, id), req)
		}
	}
}

// RequestID returns a log valuer yielding the request id of the context.
func RequestID() log.Valuer {
	return func(ctx context.Context) interface{} {
		if ctx == nil {
			return ""
		}
		id, _ := ctx.Value(requestIDKey{}).(string)
		return id
	}
}

// AuthMiddleware validates Bearer token for write operations.
// An empty token leaves every operation open.
func AuthMiddleware(token string) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if token == "" {
				return handler(ctx, req)
			}
			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return nil, errors.Unauthorized("UNAUTHORIZED", "missing transport info")
			}
			if !writeOperations[tr.Operation()] {
				return handler(ctx, req)
			}

			authHeader := tr.RequestHeader().Get("Authorization")
			if authHeader == "" {
				return nil, errors.Unauthorized("UNAUTHORIZED", "missing Authorization header")
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, errors.Unauthorized("UNAUTHORIZED", "invalid Authorization header format")
			}
			if parts[1] != token {
				return nil, errors.Unauthorized("UNAUTHORIZED", "invalid token")
			}
			return handler(ctx, req)
		}
	}
}

// RateLimitMiddleware rejects write operations of a client over its quota.
func RateLimitMiddleware(limiter ratelimit.Limiter) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			tr, ok := transport.FromServerContext(ctx)
			if !ok || limiter == nil || !writeOperations[tr.Operation()] {
				return handler(ctx, req)
			}
			if !limiter.Allow(ctx, clientKey(tr)) {
				return nil, errors.New(429, "RATE_LIMITED", "too many write requests")
			}
			return handler(ctx, req)
		}
	}
}

// clientKey identifies the caller by X-Real-IP or the remote host.
func clientKey(tr transport.Transporter) string {
	if ip := strings.TrimSpace(tr.RequestHeader().Get("X-Real-IP")); ip != "" {
		return ip
	}
	ht, ok := tr.(khttp.Transporter)
	if !ok {
		return ""
	}
	addr := ht.Request().RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
