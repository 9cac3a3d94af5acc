package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"elliora-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RateLimiterTestSuite defines the test suite for the rate limiter middleware
type RateLimiterTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RateLimiterTestSuite) SetupTest() {
	s.echo = echo.New()
	visitors = make(map[string]*visitor)
}

func TestRateLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (s *RateLimiterTestSuite) do(handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(handler(c))
	return rec
}

func (s *RateLimiterTestSuite) TestRateLimiter_AllowsWithinBurst() {
	handler := RateLimiterWithConfig(20, 40)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 40; i++ {
		rec := s.do(handler, "10.0.0.1")
		s.Equal(http.StatusOK, rec.Code)
	}
}

func (s *RateLimiterTestSuite) TestRateLimiter_RejectsBeyondBurst() {
	handler := RateLimiterWithConfig(1, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	s.Equal(http.StatusOK, s.do(handler, "10.0.0.2").Code)
	s.Equal(http.StatusOK, s.do(handler, "10.0.0.2").Code)

	rec := s.do(handler, "10.0.0.2")
	s.Equal(http.StatusTooManyRequests, rec.Code)

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.SystemRateLimitExceeded), resp.Error.Code)
}

func (s *RateLimiterTestSuite) TestRateLimiter_TracksIPsIndependently() {
	handler := RateLimiterWithConfig(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		rec := s.do(handler, fmt.Sprintf("10.0.1.%d", i))
		s.Equal(http.StatusOK, rec.Code)
	}
}

func (s *RateLimiterTestSuite) TestGetIP_PrefersForwardedFor() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.Header.Set("X-Real-IP", "198.51.100.9")
	c := s.echo.NewContext(req, httptest.NewRecorder())

	s.Equal("203.0.113.7", getIP(c))
}
