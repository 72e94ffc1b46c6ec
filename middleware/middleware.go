package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/base/metrics"
)

// HeaderSessionId carries the listing session of a client
const HeaderSessionId = "X-Session-Id"

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	// another stuff , may be needed by middleware
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Expose-Headers", HeaderSessionId)
		return next(c)
	}
}

// AddContext adds custom context into echo, tagged with the request and session ids
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.Background(), ctx.KeyRequestId, c.Response().Header().Get(echo.HeaderXRequestID))
			if sid := c.Request().Header.Get(HeaderSessionId); sid != "" {
				cont = ctx.WithValue(cont, ctx.KeySessionId, sid)
			}
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":             time.Since(start).Seconds() * 1000,
				"httpStatus":     res.Status,
				"host":           req.Host,
				"remoteIP":       c.RealIP(),
				"uri":            req.URL.Path,
				"httpMethod":     req.Method,
				"size":           res.Size,
				"userAgent":      req.UserAgent(),
				"acceptEncoding": req.Header.Get("Accept-Encoding"),
				"referer":        req.Header.Get("Referer"),
			}

			if res.Status >= 400 {
				fields["nextErr"] = err
				met.BumpSum("request.err", 1, "path", c.Path(), "status", http.StatusText(res.Status))
			}

			cont, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				cont = ctx.Background()
			}
			cont.WithFields(fields).Info("response")
			return nil
		}
	}
}
