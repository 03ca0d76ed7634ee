package dotdigital

import (
	"net/http"
	"time"

	"github.com/lindar-open/dotdigital-cli/api"
	"github.com/lindar-open/dotdigital-cli/logger"
)

type config struct {
	// baseUrl is the regional API host for the account.
	// dotdigital accounts live on numbered regions (r1, r2, r3)
	// and credentials only work against their own region.
	// default: api.DefaultBaseUrl (region 1)
	baseUrl string

	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if callers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 30 seconds
	timeout time.Duration

	// logger provides logging functionality for all internal
	// client operations
	// default: logger.Noop
	logger logger.Logger
}

func defaultConfig() *config {
	return &config{
		baseUrl:   api.DefaultBaseUrl,
		transport: http.DefaultTransport,
		timeout:   30 * time.Second,
		logger:    logger.Noop{},
	}
}

type ConfigOption func(c *config)

func WithBaseUrl(baseUrl string) ConfigOption {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}
