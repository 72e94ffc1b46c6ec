package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/anft-xyz/goapi/base/ctx"
)

type middlewareSuite struct {
	suite.Suite

	e *echo.Echo
	m *GoMiddleware
}

func TestMiddleware(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) SetupTest() {
	s.e = echo.New()
	s.m = InitMiddleware()
}

func (s *middlewareSuite) TestAddContextBindsSession() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderSessionId, "sid-1")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var got ctx.Ctx
	h := s.m.AddContext()(func(c echo.Context) error {
		got = c.Get("ctx").(ctx.Ctx)
		return nil
	})
	s.Require().NoError(h(c))
	s.Equal("sid-1", ctx.SessionId(got))
}

func (s *middlewareSuite) TestAddContextWithoutSession() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := s.e.NewContext(req, httptest.NewRecorder())

	var got ctx.Ctx
	h := s.m.AddContext()(func(c echo.Context) error {
		got = c.Get("ctx").(ctx.Ctx)
		return nil
	})
	s.Require().NoError(h(c))
	s.Empty(ctx.SessionId(got))
}

func (s *middlewareSuite) TestCORSExposesSessionHeader() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	h := s.m.CORS(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(h(c))
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Equal(HeaderSessionId, rec.Header().Get("Access-Control-Expose-Headers"))
}

func (s *middlewareSuite) TestResponseLoggerSwallowsHandlerError() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	h := s.m.ResponseLogger()(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "teapot")
	})
	s.Require().NoError(h(c))
	s.Equal(http.StatusTeapot, rec.Code)
}
