package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

// Serve builds a request for method and path and runs it through h.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	return ServeRequest(h, httptest.NewRequest(method, path, body))
}

// ServeRequest runs req through h and returns the recorded response.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus fails the test when the status differs, printing the body.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equalf(t, want, rr.Code, "unexpected status, body: %s", rr.Body.String())
}

// DecodeJSON unmarshals the response body into dest.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), dest), "decode body: %s", rr.Body.String())
}
