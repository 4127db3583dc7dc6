package images

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the Cloudflare API v4 root.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

var ErrMissingCredentials = errors.New("api key and account id are required")

// Credentials bind a client to one account.
type Credentials struct {
	APIKey    string
	AccountID string
}

// Client talks to the Cloudflare Images API of a single account. It keeps
// no per-call state and is safe for concurrent use.
type Client struct {
	baseURL       string
	creds         Credentials
	httpClient    *http.Client
	logger        logrus.FieldLogger
	logResponses  bool
	logErrors     bool
	requestLogger RequestLogger
}

// Option configures a Client.
type Option func(*Client) error

// WithHTTPClient replaces the transport. Timeouts are left to it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient == nil {
			return errors.New("http client is nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithBaseURL points the client at another API root, such as a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		trimmed := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
		parsed, err := url.Parse(trimmed)
		if err != nil {
			return fmt.Errorf("invalid base url: %w", err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
		}
		c.baseURL = trimmed
		return nil
	}
}

// WithLogger sets the logger used for response and error logging.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithResponseLogging logs every successful response at debug level.
func WithResponseLogging(enabled bool) Option {
	return func(c *Client) error {
		c.logResponses = enabled
		return nil
	}
}

// WithErrorLogging logs every failure at error level before returning it.
func WithErrorLogging(enabled bool) Option {
	return func(c *Client) error {
		c.logErrors = enabled
		return nil
	}
}

// WithRequestLogger receives a summary of every request sent.
func WithRequestLogger(logger RequestLogger) Option {
	return func(c *Client) error {
		c.requestLogger = logger
		return nil
	}
}

// New returns a client bound to creds.
func New(creds Credentials, opts ...Option) (*Client, error) {
	creds.APIKey = strings.TrimSpace(creds.APIKey)
	creds.AccountID = strings.TrimSpace(creds.AccountID)
	if creds.APIKey == "" || creds.AccountID == "" {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		creds:      creds,
		httpClient: &http.Client{},
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AccountID returns the account the client is bound to.
func (c *Client) AccountID() string {
	return c.creds.AccountID
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) logResponse(op Operation, status int, response any) {
	if !c.logResponses {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"operation": op.String(),
		"status":    status,
		"response":  response,
	}).Debug("cloudflare images response")
}

func (c *Client) logError(op Operation, err error) {
	if !c.logErrors {
		return
	}
	fields := logrus.Fields{"operation": op.String()}
	if apiErr, ok := AsError(err); ok {
		fields["status"] = apiErr.StatusCode
		fields["code"] = apiErr.Code
	}
	c.logger.WithFields(fields).WithError(err).Error("cloudflare images request failed")
}
