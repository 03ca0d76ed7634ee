package dotdigital

import (
	"net/http"

	"github.com/lindar-open/dotdigital-cli/api"
)

// Client talks to the dotdigital v2 API on behalf of one API user.
type Client struct {
	httpClient *http.Client

	account   *api.Account
	campaigns *api.Campaigns
}

func NewClient(username, password string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	return &Client{
		httpClient: httpClient,
		account:    api.NewAccountApi(cfg.baseUrl, username, password, httpClient, cfg.logger),
		campaigns:  api.NewCampaignsApi(cfg.baseUrl, username, password, httpClient, cfg.logger),
	}
}

func (c *Client) Account() *api.Account {
	return c.account
}

func (c *Client) Campaigns() *api.Campaigns {
	return c.campaigns
}
