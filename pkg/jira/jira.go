// Package jira provides a typed client for the JIRA REST API using
// session-cookie authentication. Every operation authenticates first,
// issues its own request, and maps the HTTP response to a (result, error)
// outcome using an operation-specific status table. The client holds no
// state beyond the in-memory session cookies.
package jira

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// DefaultTimeout is the request timeout applied when no HTTP client or
// timeout option is supplied.
const DefaultTimeout = 30 * time.Second

// Config holds the connection and credential settings for a Client.
// It is supplied once at construction and never mutated by the client.
type Config struct {
	Protocol   string `validate:"required,oneof=http https"`
	Host       string `validate:"required"`
	Port       string `validate:"omitempty,numeric"`
	Username   string `validate:"required"`
	Password   string `validate:"required"`
	APIVersion string `validate:"required"`
}

// Validate checks the configuration for missing or malformed fields.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return ErrConfig.MsgErr("invalid client configuration", err)
	}
	return nil
}

// Client is a JIRA REST API client. Operations are safe for concurrent
// use; each invocation performs its own login-then-request sequence and
// the shared session cookies are guarded internally (last successful
// login wins).
type Client struct {
	config     Config
	httpClient *http.Client
	logger     zerolog.Logger
	session    *session
}

// Option configures optional client behavior.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
}

// WithHTTPClient sets the underlying HTTP client. Useful for custom
// transports or test doubles.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout for the default HTTP client.
// Ignored when WithHTTPClient is also supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithLogger sets the logger used for per-request diagnostics. The
// logger is scoped to this client instance; the default discards all
// output.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// NewClient creates a JIRA client from the given configuration.
// Protocol defaults to https and APIVersion to 2 when unset.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Protocol == "" {
		cfg.Protocol = "https"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := clientOptions{
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		config:     cfg,
		httpClient: httpClient,
		logger:     options.logger,
		session:    &session{},
	}, nil
}
