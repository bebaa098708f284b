package search

import (
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2"
)

// Config holds OpenSearch client connection parameters.
type Config struct {
	Addresses       []string
	Username        string
	Password        string
	InsecureSkipTLS bool
}

// Client wraps the official OpenSearch client with the CLI's two read-only
// operations.
type Client struct {
	os  *opensearch.Client
	log *slog.Logger
}

// Option configures client creation.
type Option func(*Client)

// WithLogger attaches a logger for debug-level request tracing. Nil loggers
// are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a new Client from cfg. It performs no network calls; errors
// surface on the first operation instead. Retries are disabled on the
// underlying client: a single manual invocation has no use for retry policy.
func New(cfg Config, opts ...Option) (*Client, error) {
	ocfg := opensearch.Config{
		Addresses:           cfg.Addresses,
		Username:            cfg.Username,
		Password:            cfg.Password,
		DisableRetry:        true,
		CompressRequestBody: true,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.InsecureSkipTLS},
		},
	}
	osc, err := opensearch.NewClient(ocfg)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	c := &Client{
		os:  osc,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// classifyStatus maps an error response from the cluster onto the package
// sentinels. Auth failures count as connection problems.
func classifyStatus(code int, status string) error {
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return errors.Join(ErrConnectionFailed, errors.New(status))
	}
	return errors.Join(ErrUnexpectedResponse, errors.New(status))
}
