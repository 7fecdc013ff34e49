package questsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the questboard service. Public endpoints hang off Client;
// Login returns a Session for the bearer-authenticated ones.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
