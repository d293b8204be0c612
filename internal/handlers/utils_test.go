package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// UtilsSuite covers the request helpers shared by the handlers
type UtilsSuite struct {
	suite.Suite
	echo *echo.Echo
	got  string
}

// SetupTest runs before each test in the suite
func (s *UtilsSuite) SetupTest() {
	s.echo = echo.New()
	s.got = ""
	s.echo.GET("/api/account/:key/transactions", func(c echo.Context) error {
		s.got = getPathParam(c, "key")
		return c.NoContent(http.StatusNoContent)
	})
}

// TestUtilsSuite runs the test suite
func TestUtilsSuite(t *testing.T) {
	suite.Run(t, new(UtilsSuite))
}

// TestGetPathParam_DecodesOnce tests that escaped keys are decoded exactly once
func (s *UtilsSuite) TestGetPathParam_DecodesOnce() {
	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{"plain identifier", "/api/account/aid:A1/transactions", "aid:A1"},
		{"escaped space", "/api/account/name:Petty%20Cash/transactions", "name:Petty Cash"},
		{"escaped percent in identifier", "/api/account/aid:FEE%25AB/transactions", "aid:FEE%AB"},
		{"escaped percent in name", "/api/account/name:Scholarship%2050%25Ad/transactions", "name:Scholarship 50%Ad"},
		{"escaped slash", "/api/account/name:Fees%2FTrips/transactions", "name:Fees/Trips"},
		{"escaped slash and percent", "/api/account/name:Trips%2F10%25/transactions", "name:Trips/10%"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.got = ""
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			s.Equal(http.StatusNoContent, rec.Code)
			s.Equal(tc.expected, s.got)
		})
	}
}
