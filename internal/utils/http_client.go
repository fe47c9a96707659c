package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for the outbound API adapter. Embedding
// *resty.Client exposes the full resty API while leaving room for
// personahub-specific behavior on the wrapper.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent, default-configured client. The
// adapter sets the base URL and request timeout on it from
// [config.ClientAdapter]:
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("http://localhost:8080").SetTimeout(cfg.RequestTimeout)
//	resp, err := client.R().Get("/api/profile")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
