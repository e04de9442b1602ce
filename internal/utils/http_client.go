package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "go-plant-keeper"

// HTTPClient is a resty.Client preconfigured for calls against the
// go-plant-keeper API. The embedded *resty.Client exposes the full resty API.
//
//	client := utils.NewHTTPClient(3 * time.Second)
//	resp, err := client.R().Get("http://127.0.0.1:8080/api/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client that sends JSON Accept and
// User-Agent headers and gives up after timeout. A zero timeout means no
// timeout. Requests are not retried.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent).
		SetRetryCount(0)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
