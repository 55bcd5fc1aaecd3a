// internal/common/httpclient/client.go
package httpclient

import (
	"net/http"
	"time"
)

// Client is a thin wrapper around http.Client so outbound timeouts are
// configured in one place.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}
