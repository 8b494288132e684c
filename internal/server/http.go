package server

import (
	"shipcatalog/internal/conf"
	"shipcatalog/internal/ratelimit"
	"shipcatalog/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, auth *conf.Auth, limiter ratelimit.Limiter, shipSvc *service.ShipService, logger log.Logger) *khttp.Server {
	token := ""
	if auth != nil {
		token = auth.Token
	}
	var opts = []khttp.ServerOption{
		khttp.Middleware(
			recovery.Recovery(),
			RequestIDMiddleware(),
			logging.Server(logger),
			AuthMiddleware(token),
			RateLimitMiddleware(limiter),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Network != "" {
			opts = append(opts, khttp.Network(c.Http.Network))
		}
		if c.Http.Addr != "" {
			opts = append(opts, khttp.Address(c.Http.Addr))
		}
		if c.Http.Timeout != nil {
			opts = append(opts, khttp.Timeout(c.Http.Timeout.AsDuration()))
		}
	}
	srv := khttp.NewServer(opts...)
	RegisterShipHTTPServer(srv, shipSvc)
	return srv
}
