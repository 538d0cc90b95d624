package bench

import (
	"net/http"
	"strconv"
	"time"
)

// MeteredTransport is an http.RoundTripper that feeds the package API
// request metrics. Wrap a service client's transport with it to get request
// counts and round trip times per HTTP method.
type MeteredTransport struct {
	// Transport performs the actual request. nil means
	// http.DefaultTransport.
	Transport http.RoundTripper
}

var _ http.RoundTripper = &MeteredTransport{}

func (t *MeteredTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	start := time.Now()
	resp, err := next.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		observeAPIRequest(req.Method, "error", elapsed)
		return resp, err
	}
	observeAPIRequest(req.Method, strconv.Itoa(resp.StatusCode), elapsed)
	return resp, nil
}
