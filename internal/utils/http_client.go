package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies requests made by the bridge client.
const UserAgent = "import-web-api-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own resty.Client.
// Every request carries the [UserAgent] header.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
