package forwarder

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

const mockJSONBody = `{"id":1,"tags":["a","b"],"nested":{"ok":true,"n":null}}`

type mockRoundTripper struct {
	base http.RoundTripper

	mu       sync.Mutex
	requests []*http.Request
}

func newMockRoundTripper() *mockRoundTripper {
	return &mockRoundTripper{
		base: http.DefaultTransport,
	}
}

func (c *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req.Clone(req.Context()))
	c.mu.Unlock()

	return c.base.RoundTrip(req)
}

func (c *mockRoundTripper) attempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

func (c *mockRoundTripper) lastRequest() *http.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		return nil
	}
	return c.requests[len(c.requests)-1]
}

func mockService(status int, contentType, body string) *httptest.Server {
	return httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if contentType != "" {
				w.Header().Set("Content-Type", contentType)
			}
			w.WriteHeader(status)
			w.Write([]byte(body))
		}),
	)
}

func mockJSONService() *httptest.Server {
	return mockService(http.StatusOK, "application/json", mockJSONBody)
}

func mockRedirectService(target *httptest.Server) *httptest.Server {
	return httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, target.URL, http.StatusMovedPermanently)
		}),
	)
}

// closedServerURL returns the address of a server that no longer listens.
func closedServerURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}
